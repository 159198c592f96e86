package follow

import (
	"context"
	"time"
)

// Repository stores follow edges. Create reports a duplicate pair with an
// error for which shared/errors.IsDuplicateError holds.
type Repository interface {
	Create(ctx context.Context, edge *Edge) error
	// Delete removes the edge and reports whether one existed.
	Delete(ctx context.Context, followerID, followedUserID uint) (bool, error)
	Exists(ctx context.Context, followerID, followedUserID uint) (bool, error)
	// FollowedUserIDs lists everyone userID follows.
	FollowedUserIDs(ctx context.Context, userID uint) ([]uint, error)
	// ListFollowing returns users followed by userID, ordered by username.
	ListFollowing(ctx context.Context, userID uint) ([]Relation, error)
	// ListFollowers returns users following userID, ordered by username.
	ListFollowers(ctx context.Context, userID uint) ([]Relation, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
}

// Relation is the other side of an edge as seen from one user.
type Relation struct {
	UserID   uint
	Username string
	Since    time.Time
}
