package ticket

import "context"

// Repository persists tickets. Lookups that find nothing return a not-found
// AppError; owner-scoped lookups treat a foreign ticket the same way.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*Ticket, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Ticket, error)
	ListByOwners(ctx context.Context, ownerIDs []uint) ([]*Ticket, error)
}
