package user

import (
	"errors"
	"github.com/dinerozz/user-registry/internal/model/request"
	"github.com/dinerozz/user-registry/internal/model/response/wrapper"
	"github.com/dinerozz/user-registry/internal/repository"
	"github.com/dinerozz/user-registry/internal/service/user"
	"github.com/dinerozz/user-registry/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"strconv"
)

const (
	msgUserAdded        = "User added successfully"
	msgUserDeleted      = "User deleted successfully"
	msgUsernameRequired = "Username is required"
	msgUsernameTaken    = "Username already exists"
	msgUserNotFound     = "User not found"
	msgInvalidBody      = "Invalid request body"
	msgInvalidUserID    = "Invalid user ID"
	msgInternal         = "Internal server error"
)

type UserHandler struct {
	srv *user.UserService
	log *zap.Logger
}

func NewUserHandler(srv *user.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		srv: srv,
		log: log,
	}
}

// AddUser godoc
// @Summary Add user
// @Description Create a user with a unique username
// @Tags users
// @Accept json
// @Produce json
// @Param user body request.CreateUser true "User object"
// @Success 201 {object} wrapper.MessageWrapper
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /add_user [post]
func (h *UserHandler) AddUser(c *gin.Context) {
	var userRequest request.CreateUser
	if err := c.ShouldBindJSON(&userRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: msgInvalidBody})
		return
	}

	_, err := h.srv.CreateUser(c.Request.Context(), &userRequest)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameRequired):
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: msgUsernameRequired})
		case errors.Is(err, repository.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: msgUsernameTaken})
		default:
			h.internalError(c, "add user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, wrapper.MessageWrapper{Message: msgUserAdded})
}

// GetUsers godoc
// @Summary List users
// @Description List every user ordered by id
// @Tags users
// @Produce json
// @Success 200 {array} entity.User
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /get_users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.srv.GetAllUsers(c.Request.Context())
	if err != nil {
		h.internalError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} wrapper.MessageWrapper
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /delete_user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	// unsigned digits only, so "+1" and "-1" are rejected
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: msgInvalidUserID})
		return
	}

	err = h.srv.DeleteUser(c.Request.Context(), int64(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: msgUserNotFound})
			return
		}
		h.internalError(c, "delete user", err)
		return
	}

	c.JSON(http.StatusOK, wrapper.MessageWrapper{Message: msgUserDeleted})
}

func (h *UserHandler) internalError(c *gin.Context, op string, err error) {
	h.log.Error("❌ Failed to "+op,
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: msgInternal})
}
