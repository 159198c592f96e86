package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litreview/internal/domain/user"
	"litreview/internal/infrastructure/persistence/mappers"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/biztime"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteOtherSessions(ctx context.Context, userID uint, keepID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("user_id = ? AND id <> ?", userID, keepID).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("expires_at < ?", biztime.NowUTC().UnixMilli()).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
