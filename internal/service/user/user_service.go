package user

import (
	"context"
	"errors"
	"github.com/dinerozz/user-registry/internal/entity"
	"github.com/dinerozz/user-registry/internal/model/request"
	"strings"
)

var ErrUsernameRequired = errors.New("username is required")

type Repository interface {
	Create(ctx context.Context, username string) (entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	Repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{Repo: repo}
}

// CreateUser stores the username exactly as submitted; whitespace-only names
// count as empty. Uniqueness is left to storage.
func (s *UserService) CreateUser(ctx context.Context, req *request.CreateUser) (entity.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return entity.User{}, ErrUsernameRequired
	}

	return s.Repo.Create(ctx, req.Username)
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
