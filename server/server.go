package server

import (
	"context"
	"errors"
	"github.com/dinerozz/user-registry/config"
	"github.com/dinerozz/user-registry/docs"
	pageHandler "github.com/dinerozz/user-registry/internal/handler/page"
	userHandler "github.com/dinerozz/user-registry/internal/handler/user"
	"github.com/dinerozz/user-registry/internal/repository"
	"github.com/dinerozz/user-registry/internal/service/user"
	"github.com/dinerozz/user-registry/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterHandler struct {
	userHandler *userHandler.UserHandler
	pageHandler *pageHandler.PageHandler
}

func newRouterHandler(db *sqlx.DB, log *zap.Logger) *RouterHandler {
	userRepo := repository.NewUserRepository(db)
	userSrv := user.NewUserService(userRepo)

	return &RouterHandler{
		userHandler: userHandler.NewUserHandler(userSrv, log),
		pageHandler: pageHandler.NewPageHandler(),
	}
}

// RunServer opens storage, initializes the schema and serves until SIGINT or
// SIGTERM.
func RunServer(cfg *config.Config, log *zap.Logger) error {
	switch cfg.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Info("🚀 Starting server in PRODUCTION mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Info("🔧 Starting server in DEVELOPMENT mode", zap.String("env", cfg.Env))
	}

	db, err := repository.NewRepository(cfg.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(db, false); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	r := setupRouter(newRouterHandler(db, log), cfg.Server, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return gracefulShutdown(srv, errCh, cfg.Server.ShutdownTimeout, log)
}

func gracefulShutdown(srv *http.Server, errCh <-chan error, timeout time.Duration, log *zap.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		log.Error("❌ Failed to start server", zap.Error(err))
		return err
	case <-quit:
	}

	log.Info("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("❌ Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("✅ Server gracefully stopped")
	return nil
}

func setupRouter(routerHandler *RouterHandler, cfg config.ServerConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "user-registry",
		})
	})

	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
		docs.SwaggerInfo.Host = u.Host
	}
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "User registry API"
	docs.SwaggerInfo.Description = "Create, list and delete users"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", routerHandler.pageHandler.Index)
	r.POST("/add_user", routerHandler.userHandler.AddUser)
	r.GET("/get_users", routerHandler.userHandler.GetUsers)
	r.DELETE("/delete_user/:id", routerHandler.userHandler.DeleteUser)

	return r
}
