package user

import (
	"context"
	"fmt"
	"time"

	"litreview/internal/shared/biztime"
	"litreview/internal/shared/id"
)

// Session is a signed-in browser or client. The session token only carries
// the session ID; signing out deletes the row.
type Session struct {
	ID        string
	UserID    uint
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	sid, err := id.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	return &Session{
		ID:        sid,
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: biztime.NowUTC(),
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteOtherSessions removes every session of userID except keepID.
	DeleteOtherSessions(ctx context.Context, userID uint, keepID string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
