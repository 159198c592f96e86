package routes

import (
	"github.com/gin-gonic/gin"

	"litreview/internal/interfaces/http/handlers"
	"litreview/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	AuthRateLimit  gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup", cfg.AuthRateLimit, cfg.AuthHandler.SignUp)
		auth.POST("/signin", cfg.AuthRateLimit, cfg.AuthHandler.SignIn)

		auth.POST("/signout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.SignOut)
		auth.POST("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
