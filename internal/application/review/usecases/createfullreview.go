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

// CreateFullReviewCommand creates a ticket and the actor's review of it in
// one step.
type CreateFullReviewCommand struct {
	ActorID     uint
	Title       string
	Description string
	Image       *content.ImageUpload
	Rating      int
	Headline    string
	Body        string
}

type CreateFullReviewUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txMgr      db.Transactor
	images     content.ImageStore
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewCreateFullReviewUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txMgr db.Transactor,
	images content.ImageStore,
	assembler *content.Assembler,
	logger logger.Interface,
) *CreateFullReviewUseCase {
	return &CreateFullReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txMgr:      txMgr,
		images:     images,
		assembler:  assembler,
		logger:     logger,
	}
}

// Execute persists either both rows or neither.
func (uc *CreateFullReviewUseCase) Execute(ctx context.Context, cmd CreateFullReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing create full review use case", "user_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.ActorID, "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := review.ValidateInput(cmd.Rating, cmd.Headline, cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Image != nil {
		path, err := uc.images.Save(ctx, cmd.Image.Filename, cmd.Image.Content)
		if err != nil {
			return nil, err
		}
		newTicket.ReplaceImage(path)
	}

	var created *review.Review
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		rv, err := review.NewReview(newTicket.ID(), cmd.ActorID, cmd.Rating, cmd.Headline, cmd.Body)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.reviewRepo.Save(txCtx, rv); err != nil {
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create full review", "user_id", cmd.ActorID, "error", err)
		content.DiscardImage(ctx, uc.images, uc.logger, newTicket.ImagePath())
		return nil, err
	}

	uc.logger.Infow("full review created successfully",
		"review_id", created.ID(),
		"ticket_id", newTicket.ID(),
	)

	return uc.assembler.Review(ctx, created)
}
