package models

import "litreview/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:128;not null"`
	Description string `gorm:"type:text;not null"`
	UserID      uint   `gorm:"not null;index:idx_tickets_user_created,priority:1"`
	Image       string `gorm:"size:255;not null;default:''"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index:idx_tickets_user_created,priority:2"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key associations here. The schema migrations declare
	// the constraints; repositories never rely on gorm preloading.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:uk_reviews_ticket_id"`
	UserID    uint   `gorm:"not null;index:idx_reviews_user_created,priority:1"`
	Rating    int    `gorm:"not null"`
	Headline  string `gorm:"size:128;not null"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index:idx_reviews_user_created,priority:2"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return constants.TableReviews
}
