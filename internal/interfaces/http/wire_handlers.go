package http

import (
	"litreview/internal/interfaces/http/handlers"
	reviewHandlers "litreview/internal/interfaces/http/handlers/review"
	ticketHandlers "litreview/internal/interfaces/http/handlers/ticket"
	"litreview/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	feedHandler         *handlers.FeedHandler
	ticketHandler       *ticketHandlers.TicketHandler
	reviewHandler       *reviewHandlers.ReviewHandler
	subscriptionHandler *handlers.SubscriptionHandler
	userHandler         *handlers.UserHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			u.signUpUC, u.signInUC, u.signOutUC, u.changePasswordUC, u.getProfileUC,
			c.cfg.Auth.Cookie, log,
		),
		feedHandler: handlers.NewFeedHandler(u.getFeedUC, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC, u.getTicketUC, u.getOwnTicketUC, u.updateTicketUC, u.deleteTicketUC, log,
		),
		reviewHandler: reviewHandlers.NewReviewHandler(
			u.createReviewUC, u.createFullReviewUC, u.getOwnReviewUC, u.updateReviewUC, u.deleteReviewUC, log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(u.applySubscriptionUC, u.listSubscriptionsUC, log),
		userHandler:         handlers.NewUserHandler(u.listUsersUC, log),
		healthHandler:       handlers.NewHealthHandler(pinger, log),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(u.validateSessionUC, log.Named("auth"))
}
