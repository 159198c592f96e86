package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type CreateTicketCommand struct {
	ActorID     uint
	Title       string
	Description string
	Image       *content.ImageUpload
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	images     content.ImageStore
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	images content.ImageStore,
	assembler *content.Assembler,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		images:     images,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	// Validate before touching storage so a rejected ticket leaves no file behind.
	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.ActorID, "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Image != nil {
		path, err := uc.images.Save(ctx, cmd.Image.Filename, cmd.Image.Content)
		if err != nil {
			uc.logger.Warnw("failed to store ticket image", "user_id", cmd.ActorID, "error", err)
			return nil, err
		}
		newTicket.ReplaceImage(path)
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "user_id", cmd.ActorID, "error", err)
		content.DiscardImage(ctx, uc.images, uc.logger, newTicket.ImagePath())
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "user_id", cmd.ActorID)

	return uc.assembler.Ticket(ctx, newTicket)
}
