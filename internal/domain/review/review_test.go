package review

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 5} {
		r, err := NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Int())
	}

	for _, v := range []int{-1, 0, 6, 100} {
		_, err := NewRating(v)
		assert.Error(t, err, "rating %d", v)
	}
}

func TestNewReview_ValidInput(t *testing.T) {
	r, err := NewReview(3, 7, 4, "  Loved it ", "Great pacing.")
	require.NoError(t, err)

	assert.Equal(t, uint(3), r.TicketID())
	assert.Equal(t, uint(7), r.OwnerID())
	assert.Equal(t, Rating(4), r.Rating())
	assert.Equal(t, "Loved it", r.Headline())
	assert.Equal(t, "Great pacing.", r.Body())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestNewReview_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		ownerID  uint
		rating   int
		headline string
		body     string
		wantErr  string
	}{
		{"missing ticket", 0, 1, 3, "h", "", "ticket ID is required"},
		{"missing owner", 1, 0, 3, "h", "", "owner ID is required"},
		{"rating too low", 1, 1, 0, "h", "", "rating must be between"},
		{"rating too high", 1, 1, 6, "h", "", "rating must be between"},
		{"empty headline", 1, 1, 3, " ", "", "headline is required"},
		{"headline too long", 1, 1, 3, strings.Repeat("h", MaxHeadlineLength+1), "", "headline exceeds"},
		{"body too long", 1, 1, 3, "h", strings.Repeat("b", MaxBodyLength+1), "body exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(tt.ticketID, tt.ownerID, tt.rating, tt.headline, tt.body)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReview_Update(t *testing.T) {
	r, err := NewReview(1, 1, 2, "Meh", "")
	require.NoError(t, err)

	require.NoError(t, r.Update(5, "Changed my mind", "It grows on you"))
	assert.Equal(t, Rating(5), r.Rating())
	assert.Equal(t, "Changed my mind", r.Headline())

	err = r.Update(9, "Nope", "")
	require.Error(t, err)
	assert.Equal(t, Rating(5), r.Rating())
	assert.Equal(t, "Changed my mind", r.Headline())
}

func TestReview_OwnershipAndID(t *testing.T) {
	r, err := NewReview(1, 4, 3, "ok", "")
	require.NoError(t, err)

	assert.Equal(t, uint(4), r.OwnerID())

	require.NoError(t, r.SetID(2))
	assert.Error(t, r.SetID(3))
}

func TestReconstructReview(t *testing.T) {
	now := time.Now().UTC()

	r, err := ReconstructReview(1, 2, 3, 5, "h", "b", now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(1), r.ID())

	_, err = ReconstructReview(0, 2, 3, 5, "h", "b", now, now)
	assert.Error(t, err)

	_, err = ReconstructReview(1, 2, 3, 7, "h", "b", now, now)
	assert.Error(t, err)
}

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput(3, "Fine", ""))
	assert.Error(t, ValidateInput(6, "Fine", ""))
	assert.Error(t, ValidateInput(3, "  ", ""))
}
