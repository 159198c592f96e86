package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/review"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// GetOwnReviewQuery loads a review by its own ID for editing. Reviews of
// other users are reported as not found.
type GetOwnReviewQuery struct {
	ActorID  uint
	ReviewID uint
}

type GetOwnReviewUseCase struct {
	reviewRepo review.Repository
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewGetOwnReviewUseCase(
	reviewRepo review.Repository,
	assembler *content.Assembler,
	logger logger.Interface,
) *GetOwnReviewUseCase {
	return &GetOwnReviewUseCase{
		reviewRepo: reviewRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *GetOwnReviewUseCase) Execute(ctx context.Context, query GetOwnReviewQuery) (*dto.ReviewDTO, error) {
	if query.ReviewID == 0 {
		return nil, errors.NewValidationError("review ID is required")
	}

	rv, err := uc.reviewRepo.GetByIDForOwner(ctx, query.ReviewID, query.ActorID)
	if err != nil {
		return nil, err
	}

	return uc.assembler.Review(ctx, rv)
}
