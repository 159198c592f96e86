package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"litreview/internal/infrastructure/config"
	"litreview/internal/infrastructure/ratelimit"
	"litreview/internal/interfaces/http/middleware"
	"litreview/internal/interfaces/http/routes"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(db, redisClient, cfg, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	cfg := r.cfg

	r.engine.MaxMultipartMemory = int64(cfg.Media.MaxUploadMB+1) << 20

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "route not found")
	})

	r.engine.GET("/health", r.hdlrs.healthHandler.Health)
	r.engine.Static(cfg.Media.URLPrefix, cfg.Media.Root)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		AuthRateLimit: middleware.RateLimit(
			r.svcs.rateLimiter,
			"auth",
			ratelimit.Limits{RequestsPerMinute: cfg.RateLimit.AuthRequestsPerMinute},
			r.log,
		),
	})

	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		FeedHandler:         r.hdlrs.feedHandler,
		TicketHandler:       r.hdlrs.ticketHandler,
		ReviewHandler:       r.hdlrs.reviewHandler,
		SubscriptionHandler: r.hdlrs.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Server builds the HTTP server for addr with the timeouts used in production.
func (r *Router) Server(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
