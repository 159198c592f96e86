// Package feed merges tickets and reviews into one reverse-chronological
// sequence and slices it into pages.
package feed

import (
	"sort"
	"time"

	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
)

type ContentType string

const (
	ContentTypeTicket ContentType = "TICKET"
	ContentTypeReview ContentType = "REVIEW"
)

// Item is one feed entry. Exactly one of Ticket and Review is set, matching
// ContentType.
type Item struct {
	ContentType ContentType
	Ticket      *ticket.Ticket
	Review      *review.Review
	TimeCreated time.Time
}

// Merge tags reviews and tickets, concatenates them reviews first and sorts
// the result by creation time, newest first. Items created at the same
// instant keep the concatenation order.
func Merge(reviews []*review.Review, tickets []*ticket.Ticket) []Item {
	items := make([]Item, 0, len(reviews)+len(tickets))

	for _, r := range reviews {
		items = append(items, Item{
			ContentType: ContentTypeReview,
			Review:      r,
			TimeCreated: r.CreatedAt(),
		})
	}
	for _, t := range tickets {
		items = append(items, Item{
			ContentType: ContentTypeTicket,
			Ticket:      t,
			TimeCreated: t.CreatedAt(),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimeCreated.After(items[j].TimeCreated)
	})

	return items
}
