package dto

import "time"

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileDTO is the signed-in user's own view of their account.
type ProfileDTO struct {
	UserDTO
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
}

type SignInResultDTO struct {
	User      UserDTO   `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Principal identifies the actor behind a validated session token.
type Principal struct {
	UserID    uint
	SessionID string
	Username  string
}
