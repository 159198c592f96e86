package usecases

import (
	"context"

	"litreview/internal/application/subscription/dto"
)

type ApplySubscriptionExecutor interface {
	Execute(ctx context.Context, cmd ApplySubscriptionCommand) (*dto.OutcomeDTO, error)
}

type ListSubscriptionsExecutor interface {
	Execute(ctx context.Context, query ListSubscriptionsQuery) (*dto.SubscriptionsDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}
