package review

import (
	"litreview/internal/application/content"
	"litreview/internal/application/review/usecases"
)

// ReviewRequest carries the review fields. Rating range is enforced by the
// domain so clients get the same message whatever the transport.
type ReviewRequest struct {
	Rating   int    `json:"rating" form:"rating"`
	Headline string `json:"headline" form:"headline" binding:"required,max=128"`
	Body     string `json:"body" form:"body" binding:"max=8192"`
}

func (r *ReviewRequest) ToCreateCommand(actorID, ticketID uint) usecases.CreateReviewCommand {
	return usecases.CreateReviewCommand{
		ActorID:  actorID,
		TicketID: ticketID,
		Rating:   r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
	}
}

func (r *ReviewRequest) ToUpdateCommand(actorID, reviewID uint) usecases.UpdateReviewCommand {
	return usecases.UpdateReviewCommand{
		ActorID:  actorID,
		ReviewID: reviewID,
		Rating:   r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
	}
}

// FullReviewRequest creates a ticket and its review together. As a multipart
// form it may carry the ticket "image" file.
type FullReviewRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=128"`
	Description string `json:"description" form:"description" binding:"max=2048"`
	ReviewRequest
}

func (r *FullReviewRequest) ToCommand(actorID uint, image *content.ImageUpload) usecases.CreateFullReviewCommand {
	return usecases.CreateFullReviewCommand{
		ActorID:     actorID,
		Title:       r.Title,
		Description: r.Description,
		Image:       image,
		Rating:      r.Rating,
		Headline:    r.Headline,
		Body:        r.Body,
	}
}
