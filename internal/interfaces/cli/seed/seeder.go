package seed

import (
	"context"
	"fmt"

	reviewUsecases "litreview/internal/application/review/usecases"
	subscriptionUsecases "litreview/internal/application/subscription/usecases"
	ticketUsecases "litreview/internal/application/ticket/usecases"
	userUsecases "litreview/internal/application/user/usecases"
	"litreview/internal/domain/user"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// Summary counts what a seed run created.
type Summary struct {
	Users   int
	Follows int
	Tickets int
	Reviews int
}

// Seeder loads a fixture through the same use cases the HTTP API uses, so
// every business rule applies to seeded data too.
type Seeder struct {
	userRepo     user.Repository
	signUp       *userUsecases.SignUpUseCase
	subscribe    *subscriptionUsecases.ApplySubscriptionUseCase
	createTicket *ticketUsecases.CreateTicketUseCase
	createReview *reviewUsecases.CreateReviewUseCase
	logger       logger.Interface
}

func NewSeeder(
	userRepo user.Repository,
	signUp *userUsecases.SignUpUseCase,
	subscribe *subscriptionUsecases.ApplySubscriptionUseCase,
	createTicket *ticketUsecases.CreateTicketUseCase,
	createReview *reviewUsecases.CreateReviewUseCase,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		signUp:       signUp,
		subscribe:    subscribe,
		createTicket: createTicket,
		createReview: createReview,
		logger:       log,
	}
}

// Run applies the fixture in order: users, follows, tickets, reviews. Users
// that already exist are reused; anything else that fails stops the run.
func (s *Seeder) Run(ctx context.Context, fx *Fixture) (*Summary, error) {
	summary := &Summary{}
	userIDs := make(map[string]uint, len(fx.Users))

	for _, u := range fx.Users {
		created, err := s.signUp.Execute(ctx, userUsecases.SignUpCommand{
			Username:        u.Username,
			Password:        u.Password,
			PasswordConfirm: u.Password,
		})
		if err == nil {
			userIDs[u.Username] = created.ID
			summary.Users++
			continue
		}
		if !errors.IsConflictError(err) {
			return summary, fmt.Errorf("user %q: %w", u.Username, err)
		}
		existing, lookupErr := s.userRepo.GetByUsername(ctx, u.Username)
		if lookupErr != nil {
			return summary, fmt.Errorf("user %q: %w", u.Username, lookupErr)
		}
		s.logger.Infow("user already exists, reusing", "username", u.Username)
		userIDs[u.Username] = existing.ID()
	}

	lookup := func(username string) (uint, error) {
		if id, ok := userIDs[username]; ok {
			return id, nil
		}
		existing, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return 0, fmt.Errorf("unknown user %q: %w", username, err)
		}
		userIDs[username] = existing.ID()
		return existing.ID(), nil
	}

	for _, f := range fx.Follows {
		followerID, err := lookup(f.Follower)
		if err != nil {
			return summary, err
		}
		outcome, err := s.subscribe.Execute(ctx, subscriptionUsecases.ApplySubscriptionCommand{
			ActorID:        followerID,
			TargetUsername: f.Followee,
			Action:         subscriptionUsecases.ActionSubscribe,
		})
		if err != nil {
			return summary, fmt.Errorf("follow %s -> %s: %w", f.Follower, f.Followee, err)
		}
		if outcome.Failure != nil {
			if errors.IsSelfReferenceError(outcome.Failure) {
				s.logger.Warnw("fixture follows itself, skipped", "username", f.Follower)
			} else {
				s.logger.Infow("follow skipped", "follower", f.Follower, "followee", f.Followee, "reason", outcome.Message)
			}
			continue
		}
		summary.Follows++
	}

	ticketIDs := make(map[string]uint, len(fx.Tickets))
	for _, t := range fx.Tickets {
		ownerID, err := lookup(t.Owner)
		if err != nil {
			return summary, err
		}
		created, err := s.createTicket.Execute(ctx, ticketUsecases.CreateTicketCommand{
			ActorID:     ownerID,
			Title:       t.Title,
			Description: t.Description,
		})
		if err != nil {
			return summary, fmt.Errorf("ticket %q: %w", t.Title, err)
		}
		key := t.Key
		if key == "" {
			key = t.Title
		}
		ticketIDs[key] = created.ID
		summary.Tickets++
	}

	for _, r := range fx.Reviews {
		ticketID, ok := ticketIDs[r.Ticket]
		if !ok {
			return summary, fmt.Errorf("review by %s references unknown ticket %q", r.Author, r.Ticket)
		}
		authorID, err := lookup(r.Author)
		if err != nil {
			return summary, err
		}
		if _, err := s.createReview.Execute(ctx, reviewUsecases.CreateReviewCommand{
			ActorID:  authorID,
			TicketID: ticketID,
			Rating:   r.Rating,
			Headline: r.Headline,
			Body:     r.Body,
		}); err != nil {
			return summary, fmt.Errorf("review of %q by %s: %w", r.Ticket, r.Author, err)
		}
		summary.Reviews++
	}

	return summary, nil
}
