package seed

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/infrastructure/config"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/infrastructure/persistence/testutil"
	sharedConfig "litreview/internal/shared/config"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

const fixtureYAML = `
users:
  - username: alice
    password: correct-horse-1
  - username: bob
    password: correct-horse-2
follows:
  - follower: bob
    followee: alice
  - follower: bob
    followee: alice
tickets:
  - key: dune
    owner: alice
    title: Dune
    description: Looking for opinions
reviews:
  - ticket: dune
    author: bob
    rating: 4
    headline: Worth it
    body: "**Great** world building"
`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newTestSeeder(t *testing.T) *Seeder {
	t.Helper()

	gdb := testutil.OpenSQLite(t, models.All()...)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		Auth:  sharedConfig.AuthConfig{Password: sharedConfig.PasswordConfig{BcryptCost: 4}},
		Media: sharedConfig.MediaConfig{Root: t.TempDir(), URLPrefix: "/media", MaxUploadMB: 1},
	}
	return BuildSeeder(gdb, cfg, logger.NewNopLogger())
}

func TestLoadFixture(t *testing.T) {
	fx, err := LoadFixture(writeFixture(t, fixtureYAML))
	require.NoError(t, err)

	assert.Len(t, fx.Users, 2)
	assert.Len(t, fx.Follows, 2)
	require.Len(t, fx.Reviews, 1)
	assert.Equal(t, 4, fx.Reviews[0].Rating)
	assert.Equal(t, "dune", fx.Tickets[0].Key)
}

func TestLoadFixture_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFixture(writeFixture(t, "users:\n  - username: a\n    nickname: b\n"))
	assert.Error(t, err)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	fx, err := LoadFixture(writeFixture(t, fixtureYAML))
	require.NoError(t, err)

	seeder := newTestSeeder(t)
	summary, err := seeder.Run(context.Background(), fx)
	require.NoError(t, err)

	// The duplicate follow is reported as an outcome, not an error.
	assert.Equal(t, &Summary{Users: 2, Follows: 1, Tickets: 1, Reviews: 1}, summary)

	// Users are reused on a second run; the ticket is created again.
	fx.Reviews = nil
	fx.Follows = nil
	summary, err = seeder.Run(context.Background(), fx)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Tickets: 1}, summary)
}

func TestSeeder_Run_UnknownTicket(t *testing.T) {
	seeder := newTestSeeder(t)

	_, err := seeder.Run(context.Background(), &Fixture{
		Users:   []UserFixture{{Username: "carol", Password: "correct-horse-3"}},
		Reviews: []ReviewFixture{{Ticket: "nope", Author: "carol", Rating: 3, Headline: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ticket")
}

func TestSeeder_Run_InvalidRating(t *testing.T) {
	seeder := newTestSeeder(t)

	_, err := seeder.Run(context.Background(), &Fixture{
		Users:   []UserFixture{{Username: "dave", Password: "correct-horse-4"}},
		Tickets: []TicketFixture{{Key: "t", Owner: "dave", Title: "Title"}},
		Reviews: []ReviewFixture{{Ticket: "t", Author: "dave", Rating: 9, Headline: "x"}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "fixture entry rejected, fix it and rerun", failureHint(err))
}

func TestSeeder_Run_SelfFollowIsSkipped(t *testing.T) {
	seeder := newTestSeeder(t)

	summary, err := seeder.Run(context.Background(), &Fixture{
		Users:   []UserFixture{{Username: "erin", Password: "correct-horse-5"}},
		Follows: []FollowFixture{{Follower: "erin", Followee: "erin"}},
	})
	require.NoError(t, err)
	assert.Equal(t, &Summary{Users: 1}, summary)
}

func TestLoadFixture_RejectsMissingNames(t *testing.T) {
	_, err := LoadFixture(writeFixture(t, "tickets:\n  - key: t\n    title: Dune\n"))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "owner is required")
}

func TestFailureHint(t *testing.T) {
	assert.Equal(t, "fixture references a missing user or ticket", failureHint(errors.NewNotFoundError("user not found")))
	assert.Equal(t, "check the database and rerun", failureHint(stderrors.New("connection refused")))
}
