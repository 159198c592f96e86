package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// UpdateTicketCommand edits an owned ticket. A new Image replaces the old
// one; RemoveImage clears it. Image wins when both are set.
type UpdateTicketCommand struct {
	ActorID     uint
	TicketID    uint
	Title       string
	Description string
	Image       *content.ImageUpload
	RemoveImage bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	images     content.ImageStore
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	images content.ImageStore,
	assembler *content.Assembler,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		images:     images,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByIDForOwner(ctx, cmd.TicketID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateContent(cmd.Title, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var stale, fresh string
	switch {
	case cmd.Image != nil:
		fresh, err = uc.images.Save(ctx, cmd.Image.Filename, cmd.Image.Content)
		if err != nil {
			return nil, err
		}
		stale = t.ReplaceImage(fresh)
	case cmd.RemoveImage:
		stale = t.ReplaceImage("")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		content.DiscardImage(ctx, uc.images, uc.logger, fresh)
		return nil, err
	}
	content.DiscardImage(ctx, uc.images, uc.logger, stale)

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())

	return uc.assembler.Ticket(ctx, t)
}
