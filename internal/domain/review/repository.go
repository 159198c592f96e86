package review

import "context"

// Repository persists reviews. The store enforces one review per ticket.
type Repository interface {
	Save(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*Review, error)
	ExistsForTicket(ctx context.Context, ticketID uint) (bool, error)
	// ReviewedTicketIDs returns the subset of ticketIDs that already have a review.
	ReviewedTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]bool, error)
	ListByOwners(ctx context.Context, ownerIDs []uint) ([]*Review, error)
}
