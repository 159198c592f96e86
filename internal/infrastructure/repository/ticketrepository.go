package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litreview/internal/domain/ticket"
	"litreview/internal/infrastructure/persistence/mappers"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// A map keeps empty values such as a cleared image.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"image":       model.Image,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	// Matched rows, not changed ones: the mysql DSN sets clientFoundRows.
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

// Delete removes the ticket together with the review answering it.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.ReviewModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket review: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByIDForOwner finds a ticket only if ownerID owns it.
func (r *TicketRepository) GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

// ListByOwners returns every ticket created by one of ownerIDs, newest first.
func (r *TicketRepository) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	ownerIDs = uniqueIDs(ownerIDs)
	if len(ownerIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id IN ?", ownerIDs).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}
