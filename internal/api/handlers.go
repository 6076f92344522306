package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskbuster/backend/internal/middleware"
	"github.com/taskbuster/backend/internal/service"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "TaskBuster accounts API is running",
	})
}

// RegisterRoutes registers all application routes. The rate limiters are
// optional: when Redis is unavailable the anonymous form endpoints run
// unthrottled.
func RegisterRoutes(
	router *gin.Engine,
	authService service.IAuthService,
	profileService service.IProfileService,
	registerLimiter *middleware.RateLimiter,
	loginLimiter *middleware.RateLimiter,
) {
	router.GET("/health", HealthCheck)

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)

	// Every flow resolves the requesting account if a session token is
	// present; none of them require one up front. The register/login
	// handlers use the identity for their redirect short-circuit, the
	// profile handler for its self-only check.
	session := router.Group("")
	session.Use(middleware.CurrentAccount(authService))
	{
		session.GET("/home/", HomePage)
		session.GET("/users/:username", profileHandler.Show)

		session.GET("/register", authHandler.RegisterForm)
		session.GET("/login", authHandler.LoginForm)

		registerPost := []gin.HandlerFunc{authHandler.Register}
		if registerLimiter != nil {
			registerPost = append([]gin.HandlerFunc{registerLimiter.RateLimitMiddleware()}, registerPost...)
		}
		session.POST("/register", registerPost...)

		loginPost := []gin.HandlerFunc{authHandler.Login}
		if loginLimiter != nil {
			loginPost = append([]gin.HandlerFunc{loginLimiter.RateLimitMiddleware()}, loginPost...)
		}
		session.POST("/login", loginPost...)
	}
}
