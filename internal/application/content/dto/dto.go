// Package dto holds the read models returned for tickets, reviews and feeds.
package dto

import "time"

type UserRefDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type TicketDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url,omitempty"`
	Owner       UserRefDTO `json:"owner"`
	IsClosed    bool       `json:"is_closed"`
	TimeCreated time.Time  `json:"time_created"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReviewDTO struct {
	ID          uint       `json:"id"`
	Rating      int        `json:"rating"`
	Headline    string     `json:"headline"`
	Body        string     `json:"body"`
	BodyHTML    string     `json:"body_html"`
	Owner       UserRefDTO `json:"owner"`
	Ticket      *TicketDTO `json:"ticket"`
	TimeCreated time.Time  `json:"time_created"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FeedItemDTO carries either a ticket or a review, as named by ContentType.
type FeedItemDTO struct {
	ContentType string     `json:"content_type"`
	TimeCreated time.Time  `json:"time_created"`
	Ticket      *TicketDTO `json:"ticket,omitempty"`
	Review      *ReviewDTO `json:"review,omitempty"`
}

type FeedPageDTO struct {
	Items       []FeedItemDTO `json:"items"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}
