package usecases

import (
	"context"

	"litreview/internal/application/content/dto"
)

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*dto.ReviewDTO, error)
}

type CreateFullReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateFullReviewCommand) (*dto.ReviewDTO, error)
}

type GetOwnReviewExecutor interface {
	Execute(ctx context.Context, query GetOwnReviewQuery) (*dto.ReviewDTO, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*dto.ReviewDTO, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) error
}
