package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/subscription/dto"
	"litreview/internal/domain/follow"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/mapper"
)

type ListSubscriptionsQuery struct {
	ActorID uint
}

type ListSubscriptionsUseCase struct {
	followRepo follow.Repository
	logger     logger.Interface
}

func NewListSubscriptionsUseCase(followRepo follow.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

// Execute lists who the actor follows and who follows the actor, each
// ordered by username.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*dto.SubscriptionsDTO, error) {
	following, err := uc.followRepo.ListFollowing(ctx, query.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	followers, err := uc.followRepo.ListFollowers(ctx, query.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return &dto.SubscriptionsDTO{
		Following: toRelatedDTOs(following),
		Followers: toRelatedDTOs(followers),
	}, nil
}

func toRelatedDTOs(relations []follow.Relation) []dto.RelatedDTO {
	if relations == nil {
		return []dto.RelatedDTO{}
	}
	return mapper.MapSlice(relations, func(r follow.Relation) dto.RelatedDTO {
		since := r.Since
		return dto.RelatedDTO{
			ID:       r.UserID,
			Username: r.Username,
			Since:    &since,
		}
	})
}
