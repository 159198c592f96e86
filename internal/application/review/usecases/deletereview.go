package usecases

import (
	"context"

	"litreview/internal/domain/review"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ActorID  uint
	ReviewID uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewDeleteReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Execute deletes an owned review, which reopens the ticket it answered.
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	uc.logger.Infow("executing delete review use case", "review_id", cmd.ReviewID, "user_id", cmd.ActorID)

	if cmd.ReviewID == 0 {
		return errors.NewValidationError("review ID is required")
	}

	rv, err := uc.reviewRepo.GetByIDForOwner(ctx, cmd.ReviewID, cmd.ActorID)
	if err != nil {
		return err
	}

	if err := uc.reviewRepo.Delete(ctx, rv.ID()); err != nil {
		uc.logger.Errorw("failed to delete review", "review_id", rv.ID(), "error", err)
		return err
	}

	uc.logger.Infow("review deleted successfully", "review_id", rv.ID())
	return nil
}
