package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litreview/internal/domain/review"
	"litreview/internal/infrastructure/persistence/mappers"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

// Save inserts a review. A second review for the same ticket violates the
// unique index and yields an error matched by errors.IsDuplicateError.
func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	return rv.SetID(model.ID)
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"rating":     model.Rating,
			"headline":   model.Headline,
			"body":       model.Body,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	// Matched rows, not changed ones: the mysql DSN sets clientFoundRows.
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByIDForOwner looks the review up by its own ID and owner.
func (r *ReviewRepository) GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket review: %w", err)
	}

	return count > 0, nil
}

func (r *ReviewRepository) ReviewedTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]bool, error) {
	reviewed := make(map[uint]bool)
	ticketIDs = uniqueIDs(ticketIDs)
	if len(ticketIDs) == 0 {
		return reviewed, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("ticket_id IN ?", ticketIDs).
		Pluck("ticket_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviewed tickets: %w", err)
	}

	for _, id := range ids {
		reviewed[id] = true
	}
	return reviewed, nil
}

// ListByOwners returns every review written by one of ownerIDs, newest first.
func (r *ReviewRepository) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	ownerIDs = uniqueIDs(ownerIDs)
	if len(ownerIDs) == 0 {
		return []*review.Review{}, nil
	}

	var list []models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id IN ?", ownerIDs).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return r.mapper.ToDomainList(list)
}
