package http

import (
	"litreview/internal/application/content"
	"litreview/internal/infrastructure/auth"
	"litreview/internal/infrastructure/ratelimit"
	"litreview/internal/infrastructure/storage"
	"litreview/internal/shared/db"
	"litreview/internal/shared/services/markdown"
)

// services holds infrastructure services shared by several use cases.
type services struct {
	txMgr       *db.TransactionManager
	hasher      *auth.BcryptPasswordHasher
	jwtSvc      *auth.JWTService
	media       *storage.LocalMediaStore
	assembler   *content.Assembler
	rateLimiter ratelimit.RateLimiter
}

func (c *Container) initServices() {
	media := storage.NewLocalMediaStore(
		c.cfg.Media.Root,
		c.cfg.Media.URLPrefix,
		c.cfg.Media.MaxUploadMB,
		c.log.Named("media"),
	)

	var limiter ratelimit.RateLimiter = ratelimit.NoopRateLimiter{}
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}

	c.svcs = &services{
		txMgr:  db.NewTransactionManager(c.db),
		hasher: auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwtSvc: auth.NewJWTService(c.cfg.Auth.JWT.Secret),
		media:  media,
		assembler: content.NewAssembler(
			c.repos.userRepo,
			c.repos.ticketRepo,
			c.repos.reviewRepo,
			markdown.NewRenderer(),
			media,
			c.log.Named("assembler"),
		),
		rateLimiter: limiter,
	}
}
