package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/taskbuster/backend/config"
	"github.com/taskbuster/backend/internal/api"
	"github.com/taskbuster/backend/internal/middleware"
	"github.com/taskbuster/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. redisClient may be nil, in which case
// the anonymous form endpoints run without rate limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)

	var registerLimiter, loginLimiter *middleware.RateLimiter
	if redisClient != nil {
		registerLimiter = middleware.NewRegistrationRateLimiter(redisClient)
		loginLimiter = middleware.NewLoginRateLimiter(redisClient)
	}

	api.RegisterRoutes(router, authService, profileService, registerLimiter, loginLimiter)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
