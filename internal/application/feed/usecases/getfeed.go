package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/feed"
	"litreview/internal/domain/follow"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/constants"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type Scope string

const (
	// ScopeFeeds covers the actor and everyone the actor follows.
	ScopeFeeds Scope = "feeds"
	// ScopePosts covers the actor alone.
	ScopePosts Scope = "posts"
)

// GetFeedQuery asks for one page of a feed. Page is clamped against the
// actual page count: anything below 1 or past the end serves the last page,
// so callers pass 1 when no page was asked for. PageSize 0 means the default.
type GetFeedQuery struct {
	ActorID  uint
	Scope    Scope
	Page     int
	PageSize int
}

type GetFeedExecutor interface {
	Execute(ctx context.Context, query GetFeedQuery) (*dto.FeedPageDTO, error)
}

type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

type GetFeedUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	followRepo follow.Repository
	assembler  *content.Assembler
	limits     Limits
	logger     logger.Interface
}

func NewGetFeedUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	followRepo follow.Repository,
	assembler *content.Assembler,
	limits Limits,
	logger logger.Interface,
) *GetFeedUseCase {
	if limits.DefaultPageSize < 1 {
		limits.DefaultPageSize = constants.DefaultFeedPageSize
	}
	if limits.MaxPageSize < limits.DefaultPageSize {
		limits.MaxPageSize = max(constants.MaxFeedPageSize, limits.DefaultPageSize)
	}
	return &GetFeedUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		followRepo: followRepo,
		assembler:  assembler,
		limits:     limits,
		logger:     logger,
	}
}

func (uc *GetFeedUseCase) Execute(ctx context.Context, query GetFeedQuery) (*dto.FeedPageDTO, error) {
	if query.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	subjects, err := uc.subjects(ctx, query)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByOwners(ctx, subjects)
	if err != nil {
		uc.logger.Errorw("failed to load feed reviews", "user_id", query.ActorID, "error", err)
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	tickets, err := uc.ticketRepo.ListByOwners(ctx, subjects)
	if err != nil {
		uc.logger.Errorw("failed to load feed tickets", "user_id", query.ActorID, "error", err)
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	page := feed.Paginate(feed.Merge(reviews, tickets), query.Page, uc.pageSize(query.PageSize))

	return uc.assembler.FeedPage(ctx, page)
}

func (uc *GetFeedUseCase) subjects(ctx context.Context, query GetFeedQuery) ([]uint, error) {
	switch query.Scope {
	case ScopePosts:
		return []uint{query.ActorID}, nil
	case ScopeFeeds, "":
		followed, err := uc.followRepo.FollowedUserIDs(ctx, query.ActorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load followed users: %w", err)
		}
		return append([]uint{query.ActorID}, followed...), nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown feed scope %q", query.Scope))
	}
}

func (uc *GetFeedUseCase) pageSize(requested int) int {
	switch {
	case requested < 1:
		return uc.limits.DefaultPageSize
	case requested > uc.limits.MaxPageSize:
		return uc.limits.MaxPageSize
	default:
		return requested
	}
}
