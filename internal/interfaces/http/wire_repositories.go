package http

import (
	"gorm.io/gorm"

	"litreview/internal/domain/follow"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	"litreview/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	ticketRepo  ticket.Repository
	reviewRepo  review.Repository
	followRepo  follow.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db),
		sessionRepo: repository.NewSessionRepository(db),
		ticketRepo:  repository.NewTicketRepository(db),
		reviewRepo:  repository.NewReviewRepository(db),
		followRepo:  repository.NewFollowRepository(db),
	}
}
