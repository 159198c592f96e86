package routes

import (
	"github.com/gin-gonic/gin"

	"litreview/internal/interfaces/http/handlers"
	reviewhandlers "litreview/internal/interfaces/http/handlers/review"
	tickethandlers "litreview/internal/interfaces/http/handlers/ticket"
	"litreview/internal/interfaces/http/middleware"
)

type ReviewRouteConfig struct {
	FeedHandler         *handlers.FeedHandler
	TicketHandler       *tickethandlers.TicketHandler
	ReviewHandler       *reviewhandlers.ReviewHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupReviewRoutes configures feeds, tickets, reviews and subscriptions.
// Every route requires a signed-in user.
func SetupReviewRoutes(engine *gin.Engine, config *ReviewRouteConfig) {
	reviews := engine.Group("/reviews")
	reviews.Use(config.AuthMiddleware.RequireAuth())
	{
		reviews.GET("/feeds", config.FeedHandler.Feeds)
		reviews.GET("/posts", config.FeedHandler.Posts)

		reviews.POST("/tickets", config.TicketHandler.CreateTicket)
		reviews.GET("/tickets/:id/edit", config.TicketHandler.GetOwnTicket)
		reviews.POST("/tickets/:id/review", config.ReviewHandler.CreateReview)
		reviews.GET("/tickets/:id", config.TicketHandler.GetTicket)
		reviews.PUT("/tickets/:id", config.TicketHandler.UpdateTicket)
		reviews.DELETE("/tickets/:id", config.TicketHandler.DeleteTicket)

		reviews.POST("/full", config.ReviewHandler.CreateFullReview)
		reviews.GET("/reviews/:id/edit", config.ReviewHandler.GetOwnReview)
		reviews.PUT("/reviews/:id", config.ReviewHandler.UpdateReview)
		reviews.DELETE("/reviews/:id", config.ReviewHandler.DeleteReview)

		reviews.GET("/subscriptions", config.SubscriptionHandler.ListSubscriptions)
		reviews.POST("/subscriptions", config.SubscriptionHandler.ApplySubscription)
	}
}
