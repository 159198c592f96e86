package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/infrastructure/persistence/testutil"
	"litreview/internal/shared/biztime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.OpenSQLite(t, models.All()...)
}

// stepClock advances biztime by one second per call so rows get distinct,
// increasing creation times.
func stepClock(t *testing.T) {
	t.Helper()
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	})
	t.Cleanup(restore)
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) *user.User {
	t.Helper()
	name, err := vo.NewUsername(username)
	require.NoError(t, err)
	u, err := user.NewUser(name, "hash-"+username)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(gdb).Create(context.Background(), u))
	return u
}

func createTestTicket(t *testing.T, gdb *gorm.DB, ownerID uint, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "description of "+title, ownerID, "")
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(gdb).Save(context.Background(), tk))
	return tk
}

func createTestReview(t *testing.T, gdb *gorm.DB, ticketID, ownerID uint, rating int) *review.Review {
	t.Helper()
	rv, err := review.NewReview(ticketID, ownerID, rating, "headline", "body")
	require.NoError(t, err)
	require.NoError(t, NewReviewRepository(gdb).Save(context.Background(), rv))
	return rv
}
