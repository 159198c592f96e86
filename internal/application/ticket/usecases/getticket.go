package usecases

import (
	"context"

	"litreview/internal/application/content"
	"litreview/internal/application/content/dto"
	"litreview/internal/domain/ticket"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// GetTicketQuery loads any user's ticket, e.g. to answer it with a review.
type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	assembler *content.Assembler,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	return uc.assembler.Ticket(ctx, t)
}

// GetOwnTicketQuery loads a ticket for editing. Tickets of other users are
// reported as not found.
type GetOwnTicketQuery struct {
	ActorID  uint
	TicketID uint
}

type GetOwnTicketUseCase struct {
	ticketRepo ticket.Repository
	assembler  *content.Assembler
	logger     logger.Interface
}

func NewGetOwnTicketUseCase(
	ticketRepo ticket.Repository,
	assembler *content.Assembler,
	logger logger.Interface,
) *GetOwnTicketUseCase {
	return &GetOwnTicketUseCase{
		ticketRepo: ticketRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

func (uc *GetOwnTicketUseCase) Execute(ctx context.Context, query GetOwnTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByIDForOwner(ctx, query.TicketID, query.ActorID)
	if err != nil {
		return nil, err
	}

	return uc.assembler.Ticket(ctx, t)
}
