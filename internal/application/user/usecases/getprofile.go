package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/user/dto"
	"litreview/internal/domain/follow"
	"litreview/internal/domain/user"
	"litreview/internal/shared/logger"
)

type GetProfileQuery struct {
	ActorID uint
}

type GetProfileUseCase struct {
	userRepo   user.Repository
	followRepo follow.Repository
	logger     logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	followRepo follow.Repository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, err
	}

	following, err := uc.followRepo.CountFollowing(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}
	followers, err := uc.followRepo.CountFollowers(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	return &dto.ProfileDTO{
		UserDTO:        *toUserDTO(u),
		FollowingCount: following,
		FollowersCount: followers,
	}, nil
}
