package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/review"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ActorID  uint
	ReviewID uint
	Rating   int
	Headline string
	Body     string
}

type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	assembler *content.Assembler,
	logger logger.Interface,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing update review use case", "review_id", cmd.ReviewID, "user_id", cmd.ActorID)

	if cmd.ReviewID == 0 {
		return nil, errors.NewValidationError("review ID is required")
	}

	rv, err := uc.reviewRepo.GetByIDForOwner(ctx, cmd.ReviewID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := rv.Update(cmd.Rating, cmd.Headline, cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, rv); err != nil {
		uc.logger.Errorw("failed to update review", "review_id", rv.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("review updated successfully", "review_id", rv.ID())

	return uc.assembler.Review(ctx, rv)
}
