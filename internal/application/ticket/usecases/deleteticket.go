package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type DeleteTicketCommand struct {
	ActorID  uint
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	images     content.ImageStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	images content.ImageStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		images:     images,
		logger:     logger,
	}
}

// Execute deletes an owned ticket along with the review answering it.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByIDForOwner(ctx, cmd.TicketID, cmd.ActorID)
	if err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return err
	}
	content.DiscardImage(ctx, uc.images, uc.logger, t.ImagePath())

	uc.logger.Infow("ticket deleted successfully", "ticket_id", t.ID())
	return nil
}
