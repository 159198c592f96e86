// Package follow models the directed "user A follows user B" graph.
package follow

import (
	"errors"
	"time"

	"litreview/internal/shared/biztime"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("a user cannot follow themselves")

// ErrInvalidUser is returned when either side of an edge is missing.
var ErrInvalidUser = errors.New("follower and followed user are required")

// Edge is a single follow relationship. At most one edge exists per ordered
// (follower, followed) pair.
type Edge struct {
	ID             uint
	FollowerID     uint
	FollowedUserID uint
	CreatedAt      time.Time
}

func NewEdge(followerID, followedUserID uint) (*Edge, error) {
	if followerID == 0 || followedUserID == 0 {
		return nil, ErrInvalidUser
	}
	if followerID == followedUserID {
		return nil, ErrSelfFollow
	}

	return &Edge{
		FollowerID:     followerID,
		FollowedUserID: followedUserID,
		CreatedAt:      biztime.NowUTC(),
	}, nil
}
