package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testTicket(t *testing.T, id, owner uint, created time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, fmt.Sprintf("ticket %d", id), "", owner, "", created, created)
	require.NoError(t, err)
	return tk
}

func testReview(t *testing.T, id, owner uint, created time.Time) *review.Review {
	t.Helper()
	r, err := review.ReconstructReview(id, id+100, owner, 3, fmt.Sprintf("review %d", id), "", created, created)
	require.NoError(t, err)
	return r
}

func makeItems(t *testing.T, n int) []Item {
	t.Helper()
	tickets := make([]*ticket.Ticket, 0, n)
	for i := 0; i < n; i++ {
		tickets = append(tickets, testTicket(t, uint(i+1), 1, base.Add(time.Duration(i)*time.Minute)))
	}
	return Merge(nil, tickets)
}

func TestMerge_OrdersNewestFirst(t *testing.T) {
	reviews := []*review.Review{
		testReview(t, 1, 2, base.Add(1*time.Hour)),
		testReview(t, 2, 2, base.Add(3*time.Hour)),
	}
	tickets := []*ticket.Ticket{
		testTicket(t, 1, 1, base.Add(2*time.Hour)),
		testTicket(t, 2, 1, base),
	}

	items := Merge(reviews, tickets)
	require.Len(t, items, 4)

	assert.Equal(t, ContentTypeReview, items[0].ContentType)
	assert.Equal(t, uint(2), items[0].Review.ID())
	assert.Equal(t, ContentTypeTicket, items[1].ContentType)
	assert.Equal(t, uint(1), items[1].Ticket.ID())
	assert.Equal(t, ContentTypeReview, items[2].ContentType)
	assert.Equal(t, ContentTypeTicket, items[3].ContentType)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].TimeCreated.After(items[i-1].TimeCreated), "item %d is newer than item %d", i, i-1)
	}
}

func TestMerge_TiesKeepReviewsFirst(t *testing.T) {
	items := Merge(
		[]*review.Review{testReview(t, 1, 1, base), testReview(t, 2, 1, base)},
		[]*ticket.Ticket{testTicket(t, 9, 1, base)},
	)

	require.Len(t, items, 3)
	assert.Equal(t, uint(1), items[0].Review.ID())
	assert.Equal(t, uint(2), items[1].Review.ID())
	assert.Equal(t, uint(9), items[2].Ticket.ID())
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
}

func TestPaginate(t *testing.T) {
	items := makeItems(t, 12)

	tests := []struct {
		name       string
		requested  int
		wantNumber int
		wantLen    int
		wantNext   bool
		wantPrev   bool
	}{
		{"first page", 1, 1, 5, true, false},
		{"middle page", 2, 2, 5, true, true},
		{"last partial page", 3, 3, 2, false, true},
		{"past the end clamps to last", 4, 3, 2, false, true},
		{"far past the end", 999, 3, 2, false, true},
		{"zero clamps to last", 0, 3, 2, false, true},
		{"negative clamps to last", -3, 3, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.requested, 5)

			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, 12, page.Total)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.wantNext, page.HasNext)
			assert.Equal(t, tt.wantPrev, page.HasPrevious)
		})
	}
}

func TestPaginate_ClampedPageMatchesLastPage(t *testing.T) {
	items := makeItems(t, 12)

	assert.Equal(t, Paginate(items, 3, 5).Items, Paginate(items, 4, 5).Items)
}

func TestPaginate_EmptyFeedHasOnePage(t *testing.T) {
	page := Paginate(nil, 7, 5)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginate_PagesCoverEveryItemOnce(t *testing.T) {
	items := makeItems(t, 23)
	seen := make(map[uint]int)

	first := Paginate(items, 1, 5)
	for n := 1; n <= first.TotalPages; n++ {
		for _, it := range Paginate(items, n, 5).Items {
			seen[it.Ticket.ID()]++
		}
	}

	assert.Len(t, seen, 23)
	for id, count := range seen {
		assert.Equal(t, 1, count, "ticket %d", id)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 0))
	assert.Equal(t, 2, ClampPage(2, 4))
	assert.Equal(t, 4, ClampPage(5, 4))
	assert.Equal(t, 4, ClampPage(0, 4))
	assert.Equal(t, 4, ClampPage(-1, 4))
}
