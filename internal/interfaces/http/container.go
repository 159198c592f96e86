package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"litreview/internal/infrastructure/config"
	"litreview/internal/interfaces/http/middleware"
	"litreview/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	// redis is nil when redis is disabled; rate limiting then lets every
	// request through.
	redis *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.repos = newRepositories(db)
	c.initServices()
	c.initUseCases()
	c.initHandlers()

	return c
}

// Shutdown releases the resources owned by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
