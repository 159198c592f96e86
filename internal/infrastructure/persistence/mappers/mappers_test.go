package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	"litreview/internal/infrastructure/persistence/models"
)

var stamp = time.Date(2024, 2, 10, 8, 30, 15, int(500*time.Millisecond), time.UTC)

func TestTicketMapper(t *testing.T) {
	m := NewTicketMapper()

	tk, err := ticket.ReconstructTicket(5, "Title", "Desc", 2, "img/reviews/x.png", stamp, stamp)
	require.NoError(t, err)

	model := m.ToModel(tk)
	assert.Equal(t, uint(2), model.UserID)
	assert.Equal(t, "img/reviews/x.png", model.Image)
	assert.Equal(t, stamp.UnixMilli(), model.CreatedAt)

	back, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, tk.Title(), back.Title())
	assert.True(t, stamp.Equal(back.CreatedAt()))

	_, err = m.ToDomain(&models.TicketModel{ID: 1})
	assert.Error(t, err, "owner is required")
}

func TestReviewMapper(t *testing.T) {
	m := NewReviewMapper()

	r, err := review.ReconstructReview(9, 5, 2, 4, "Head", "Body", stamp, stamp)
	require.NoError(t, err)

	model := m.ToModel(r)
	assert.Equal(t, 4, model.Rating)
	assert.Equal(t, uint(5), model.TicketID)

	list, err := m.ToDomainList([]models.ReviewModel{*model})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, review.Rating(4), list[0].Rating())

	model.Rating = 0
	_, err = m.ToDomain(model)
	assert.Error(t, err)
}

func TestUserAndSessionMapper(t *testing.T) {
	um := NewUserMapper()
	u, err := user.ReconstructUser(1, "alice", "hash", stamp, stamp)
	require.NoError(t, err)

	back, err := um.ToDomain(um.ToModel(u))
	require.NoError(t, err)
	assert.Equal(t, "alice", back.Username())

	sm := NewSessionMapper()
	s := &user.Session{ID: "abc", UserID: 1, ExpiresAt: stamp, CreatedAt: stamp}
	sb := sm.ToDomain(sm.ToModel(s))
	assert.Equal(t, "abc", sb.ID)
	assert.True(t, stamp.Equal(sb.ExpiresAt))
	assert.Nil(t, sm.ToModel(nil))
}
