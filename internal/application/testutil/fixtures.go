package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"litreview/internal/domain/follow"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/shared/biztime"
)

// AddUser stores a user whose password hash is "hashed:<username>".
func (s *Store) AddUser(t testing.TB, username string) *user.User {
	t.Helper()
	name, err := vo.NewUsername(username)
	require.NoError(t, err)
	u, err := user.NewUser(name, "hashed:"+username)
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func (s *Store) AddTicket(t testing.TB, ownerID uint, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "", ownerID, "")
	require.NoError(t, err)
	require.NoError(t, s.Tickets().Save(context.Background(), tk))
	return tk
}

func (s *Store) AddReview(t testing.TB, ticketID, ownerID uint, rating int) *review.Review {
	t.Helper()
	rv, err := review.NewReview(ticketID, ownerID, rating, fmt.Sprintf("review of %d", ticketID), "")
	require.NoError(t, err)
	require.NoError(t, s.Reviews().Save(context.Background(), rv))
	return rv
}

func (s *Store) AddFollow(t testing.TB, followerID, followedUserID uint) {
	t.Helper()
	edge, err := follow.NewEdge(followerID, followedUserID)
	require.NoError(t, err)
	require.NoError(t, s.Follows().Create(context.Background(), edge))
}

// TickingClock makes biztime advance one second per read for the rest of the
// test, so entities get distinct, increasing timestamps.
func TickingClock(t testing.TB) {
	t.Helper()
	var mu sync.Mutex
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	})
	t.Cleanup(restore)
}

// FakeHasher "hashes" by prefixing. Verify mirrors bcrypt's behaviour of
// failing on any mismatch.
type FakeHasher struct {
	HashErr error
}

func (h *FakeHasher) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return "hashed:" + password, nil
}

func (h *FakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// FakeTokens issues tokens of the form "<userID>.<sessionID>".
type FakeTokens struct{}

func (FakeTokens) Generate(userID uint, sessionID string, expiresAt time.Time) (string, error) {
	return fmt.Sprintf("%d.%s", userID, sessionID), nil
}

func (FakeTokens) Verify(token string) (uint, string, error) {
	var userID uint
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid token")
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &userID); err != nil {
		return 0, "", fmt.Errorf("invalid token")
	}
	return userID, parts[1], nil
}

// FakeImageStore records saved and deleted media paths.
type FakeImageStore struct {
	mu      sync.Mutex
	Saved   []string
	Deleted []string
	SaveErr error
}

func (f *FakeImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if f.SaveErr != nil {
		return "", f.SaveErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	path := fmt.Sprintf("img/reviews/%d-%s", len(f.Saved)+1, filename)
	f.Saved = append(f.Saved, path)
	return path, nil
}

func (f *FakeImageStore) Delete(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, path)
	return nil
}

func (f *FakeImageStore) URL(path string) string {
	return "/media/" + path
}
