package review

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"litreview/internal/shared/biztime"
)

const (
	MaxHeadlineLength = 128
	MaxBodyLength     = 8192
)

// Review answers exactly one ticket. The ticket may belong to anyone,
// including the reviewer.
type Review struct {
	id        uint
	ticketID  uint
	ownerID   uint
	rating    Rating
	headline  string
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(ticketID, ownerID uint, rating int, headline, body string) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	headline = strings.TrimSpace(headline)
	if err := validateContent(headline, body); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Review{
		ticketID:  ticketID,
		ownerID:   ownerID,
		rating:    r,
		headline:  headline,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReview rebuilds a review from persistence.
func ReconstructReview(
	id, ticketID, ownerID uint,
	rating int,
	headline, body string,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	r, err := NewRating(rating)
	if err != nil {
		return nil, fmt.Errorf("invalid stored rating: %w", err)
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		ownerID:   ownerID,
		rating:    r,
		headline:  headline,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ValidateInput checks review fields before a ticket exists to attach them
// to, so a ticket and its review can be validated together.
func ValidateInput(rating int, headline, body string) error {
	if _, err := NewRating(rating); err != nil {
		return err
	}
	return validateContent(strings.TrimSpace(headline), body)
}

func validateContent(headline, body string) error {
	if headline == "" {
		return fmt.Errorf("headline is required")
	}
	if utf8.RuneCountInString(headline) > MaxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", MaxHeadlineLength)
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	return nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) OwnerID() uint {
	return r.ownerID
}

func (r *Review) Rating() Rating {
	return r.rating
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// Update replaces rating, headline and body. Nothing changes on error.
func (r *Review) Update(rating int, headline, body string) error {
	newRating, err := NewRating(rating)
	if err != nil {
		return err
	}
	headline = strings.TrimSpace(headline)
	if err := validateContent(headline, body); err != nil {
		return err
	}

	r.rating = newRating
	r.headline = headline
	r.body = body
	r.updatedAt = biztime.NowUTC()
	return nil
}
