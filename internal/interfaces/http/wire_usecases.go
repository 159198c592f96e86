package http

import (
	feedUsecases "litreview/internal/application/feed/usecases"
	reviewUsecases "litreview/internal/application/review/usecases"
	subscriptionUsecases "litreview/internal/application/subscription/usecases"
	ticketUsecases "litreview/internal/application/ticket/usecases"
	"litreview/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	signUpUC          *usecases.SignUpUseCase
	signInUC          *usecases.SignInUseCase
	signOutUC         *usecases.SignOutUseCase
	changePasswordUC  *usecases.ChangePasswordUseCase
	getProfileUC      *usecases.GetProfileUseCase
	validateSessionUC *usecases.ValidateSessionUseCase

	// Tickets
	createTicketUC *ticketUsecases.CreateTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	getOwnTicketUC *ticketUsecases.GetOwnTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase

	// Reviews
	createReviewUC     *reviewUsecases.CreateReviewUseCase
	createFullReviewUC *reviewUsecases.CreateFullReviewUseCase
	getOwnReviewUC     *reviewUsecases.GetOwnReviewUseCase
	updateReviewUC     *reviewUsecases.UpdateReviewUseCase
	deleteReviewUC     *reviewUsecases.DeleteReviewUseCase

	// Feed
	getFeedUC *feedUsecases.GetFeedUseCase

	// Subscriptions
	applySubscriptionUC *subscriptionUsecases.ApplySubscriptionUseCase
	listSubscriptionsUC *subscriptionUsecases.ListSubscriptionsUseCase
	listUsersUC         *subscriptionUsecases.ListUsersUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs
	log := c.log

	c.ucs = &allUseCases{
		signUpUC:          usecases.NewSignUpUseCase(r.userRepo, s.hasher, log),
		signInUC:          usecases.NewSignInUseCase(r.userRepo, r.sessionRepo, s.hasher, s.jwtSvc, c.cfg.Auth.Session, log),
		signOutUC:         usecases.NewSignOutUseCase(r.sessionRepo, log),
		changePasswordUC:  usecases.NewChangePasswordUseCase(r.userRepo, r.sessionRepo, s.hasher, s.txMgr, log),
		getProfileUC:      usecases.NewGetProfileUseCase(r.userRepo, r.followRepo, log),
		validateSessionUC: usecases.NewValidateSessionUseCase(r.userRepo, r.sessionRepo, s.jwtSvc, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, s.media, s.assembler, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, s.assembler, log),
		getOwnTicketUC: ticketUsecases.NewGetOwnTicketUseCase(r.ticketRepo, s.assembler, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, s.media, s.assembler, log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, s.media, log),

		createReviewUC:     reviewUsecases.NewCreateReviewUseCase(r.ticketRepo, r.reviewRepo, s.txMgr, s.assembler, log),
		createFullReviewUC: reviewUsecases.NewCreateFullReviewUseCase(r.ticketRepo, r.reviewRepo, s.txMgr, s.media, s.assembler, log),
		getOwnReviewUC:     reviewUsecases.NewGetOwnReviewUseCase(r.reviewRepo, s.assembler, log),
		updateReviewUC:     reviewUsecases.NewUpdateReviewUseCase(r.reviewRepo, s.assembler, log),
		deleteReviewUC:     reviewUsecases.NewDeleteReviewUseCase(r.reviewRepo, log),

		getFeedUC: feedUsecases.NewGetFeedUseCase(
			r.ticketRepo,
			r.reviewRepo,
			r.followRepo,
			s.assembler,
			feedUsecases.Limits{
				DefaultPageSize: c.cfg.Feed.PageSize,
				MaxPageSize:     c.cfg.Feed.MaxPageSize,
			},
			log,
		),

		applySubscriptionUC: subscriptionUsecases.NewApplySubscriptionUseCase(r.userRepo, r.followRepo, s.txMgr, log),
		listSubscriptionsUC: subscriptionUsecases.NewListSubscriptionsUseCase(r.followRepo, log),
		listUsersUC:         subscriptionUsecases.NewListUsersUseCase(r.userRepo, r.followRepo, log),
	}
}
