package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"litreview/internal/shared/biztime"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

// Ticket is a request for a review of a book or article. A ticket is closed
// once a review answers it; that state lives with the review, not here.
type Ticket struct {
	id          uint
	title       string
	description string
	ownerID     uint
	imagePath   string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket owned by ownerID. imagePath is a media-relative
// path and may be empty.
func NewTicket(title, description string, ownerID uint, imagePath string) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if err := validateContent(title, description); err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		ownerID:     ownerID,
		imagePath:   imagePath,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	ownerID uint,
	imagePath string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		ownerID:     ownerID,
		imagePath:   imagePath,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateContent(title, description string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) ImagePath() string {
	return t.imagePath
}

func (t *Ticket) HasImage() bool {
	return t.imagePath != ""
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateContent replaces title and description. Creation time is kept so the
// ticket keeps its place in feeds.
func (t *Ticket) UpdateContent(title, description string) error {
	title = strings.TrimSpace(title)
	if err := validateContent(title, description); err != nil {
		return err
	}
	t.title = title
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceImage sets a new image path and returns the previous one so the
// caller can remove the old file. An empty path clears the image.
func (t *Ticket) ReplaceImage(path string) string {
	previous := t.imagePath
	t.imagePath = path
	t.updatedAt = biztime.NowUTC()
	return previous
}
