package testutil

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/domain/follow"
	"litreview/internal/domain/review"
	"litreview/internal/shared/errors"
)

func TestStore_RollsBackFailedTransaction(t *testing.T) {
	store := NewStore()
	alice := store.AddUser(t, "alice")

	boom := stderrors.New("boom")
	err := store.RunInTransaction(context.Background(), func(ctx context.Context) error {
		store.AddTicket(t, alice.ID(), "discarded")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, tickets, _, _ := store.Counts()
	assert.Equal(t, 0, tickets)
	assert.Equal(t, 1, store.TxCount)
}

func TestStore_EnforcesUniqueness(t *testing.T) {
	store := NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	tk := store.AddTicket(t, alice.ID(), "Dune")
	store.AddReview(t, tk.ID(), bob.ID(), 3)
	store.AddFollow(t, alice.ID(), bob.ID())

	_, err := store.Users().GetByUsername(context.Background(), "ａｌｉｃｅ")
	require.NoError(t, err)

	dup, err := review.NewReview(tk.ID(), alice.ID(), 5, "again", "")
	require.NoError(t, err)
	assert.True(t, errors.IsDuplicateError(store.Reviews().Save(context.Background(), dup)))

	edge, err := follow.NewEdge(alice.ID(), bob.ID())
	require.NoError(t, err)
	assert.True(t, errors.IsDuplicateError(store.Follows().Create(context.Background(), edge)))

	users, tickets, reviews, follows := store.Counts()
	assert.Equal(t, []int{2, 1, 1, 1}, []int{users, tickets, reviews, follows})

	_, err = store.Tickets().GetByIDForOwner(context.Background(), tk.ID(), bob.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
