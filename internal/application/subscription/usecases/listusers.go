package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/subscription/dto"
	"litreview/internal/domain/follow"
	"litreview/internal/domain/user"
	"litreview/internal/shared/logger"
)

// ListUsersQuery searches other users to follow. The actor is never listed.
type ListUsersQuery struct {
	ActorID  uint
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []dto.UserListItemDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo   user.Repository
	followRepo follow.Repository
	logger     logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	followRepo follow.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Search:    query.Search,
		ExcludeID: query.ActorID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	followed, err := uc.followRepo.FollowedUserIDs(ctx, query.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load followed users: %w", err)
	}
	following := make(map[uint]bool, len(followed))
	for _, id := range followed {
		following[id] = true
	}

	items := make([]dto.UserListItemDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserListItemDTO{
			ID:          u.ID(),
			Username:    u.Username(),
			IsFollowing: following[u.ID()],
		})
	}

	return &ListUsersResult{Users: items, Total: total}, nil
}
