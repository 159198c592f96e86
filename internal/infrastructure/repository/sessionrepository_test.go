package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/domain/user"
	"litreview/internal/shared/biztime"
	"litreview/internal/shared/errors"
)

func TestSessionRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()
	alice := createTestUser(t, gdb, "alice")

	newSession := func(expiresIn time.Duration) *user.Session {
		s, err := user.NewSession(alice.ID(), "127.0.0.1", "go-test", biztime.NowUTC().Add(expiresIn))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	current := newSession(time.Hour)
	other := newSession(time.Hour)
	expired := newSession(-time.Hour)

	found, err := repo.GetByID(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID(), found.UserID)
	assert.False(t, found.IsExpired())

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	_, err = repo.GetByID(ctx, expired.ID)
	assert.True(t, errors.IsNotFoundError(err))

	revoked, err := repo.DeleteOtherSessions(ctx, alice.ID(), current.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revoked)
	_, err = repo.GetByID(ctx, other.ID)
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, repo.Delete(ctx, current.ID))
	_, err = repo.GetByID(ctx, current.ID)
	assert.True(t, errors.IsNotFoundError(err))
}
