package ticket

import (
	"litreview/internal/application/content"
	"litreview/internal/application/ticket/usecases"
)

// TicketRequest is accepted as JSON or as a multipart form; the multipart
// form may also carry an "image" file.
type TicketRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=128"`
	Description string `json:"description" form:"description" binding:"max=2048"`
}

func (r *TicketRequest) ToCreateCommand(actorID uint, image *content.ImageUpload) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ActorID:     actorID,
		Title:       r.Title,
		Description: r.Description,
		Image:       image,
	}
}

type UpdateTicketRequest struct {
	TicketRequest
	RemoveImage bool `json:"remove_image" form:"remove_image"`
}

func (r *UpdateTicketRequest) ToCommand(actorID, ticketID uint, image *content.ImageUpload) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		ActorID:     actorID,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Image:       image,
		RemoveImage: r.RemoveImage,
	}
}
