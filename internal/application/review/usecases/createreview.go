package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// CreateReviewCommand answers an existing ticket. The ticket may belong to
// anyone, the actor included.
type CreateReviewCommand struct {
	ActorID  uint
	TicketID uint
	Rating   int
	Headline string
	Body     string
}

type CreateReviewUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txMgr      db.Transactor
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txMgr db.Transactor,
	assembler *content.Assembler,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txMgr:      txMgr,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing create review use case", "ticket_id", cmd.TicketID, "user_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if err := review.ValidateInput(cmd.Rating, cmd.Headline, cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created *review.Review
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		answered, err := uc.reviewRepo.ExistsForTicket(txCtx, t.ID())
		if err != nil {
			return err
		}
		if answered {
			return errors.NewConflictError("ticket already has a review")
		}

		rv, err := review.NewReview(t.ID(), cmd.ActorID, cmd.Rating, cmd.Headline, cmd.Body)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.reviewRepo.Save(txCtx, rv); err != nil {
			// Lost a race with a concurrent reviewer.
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("ticket already has a review")
			}
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create review", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("review created successfully", "review_id", created.ID(), "ticket_id", cmd.TicketID)

	return uc.assembler.Review(ctx, created)
}
