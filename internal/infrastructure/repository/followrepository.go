package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litreview/internal/domain/follow"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/biztime"
	"litreview/internal/shared/db"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Create(ctx context.Context, edge *follow.Edge) error {
	model := &models.UserFollowModel{
		UserID:         edge.FollowerID,
		FollowedUserID: edge.FollowedUserID,
		CreatedAt:      biztime.ToMillis(edge.CreatedAt),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create follow edge: %w", err)
	}

	edge.ID = model.ID
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followedUserID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("user_id = ? AND followed_user_id = ?", followerID, followedUserID).
		Delete(&models.UserFollowModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedUserID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserFollowModel{}).
		Where("user_id = ? AND followed_user_id = ?", followerID, followedUserID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) FollowedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserFollowModel{}).
		Where("user_id = ?", userID).
		Pluck("followed_user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}
	return ids, nil
}

type relationRow struct {
	UserID    uint
	Username  string
	CreatedAt int64
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uint) ([]follow.Relation, error) {
	return r.listRelations(ctx, "f.followed_user_id", "f.user_id", userID)
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uint) ([]follow.Relation, error) {
	return r.listRelations(ctx, "f.user_id", "f.followed_user_id", userID)
}

// listRelations joins the edge table with users on otherCol and filters by
// selfCol. Both column names are fixed strings, never user input.
func (r *FollowRepository) listRelations(ctx context.Context, otherCol, selfCol string, userID uint) ([]follow.Relation, error) {
	var rows []relationRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Table("user_follows AS f").
		Select("u.id AS user_id, u.username AS username, f.created_at AS created_at").
		Joins("JOIN users AS u ON u.id = "+otherCol).
		Where(selfCol+" = ?", userID).
		Order("u.username ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list follow relations: %w", err)
	}

	relations := make([]follow.Relation, 0, len(rows))
	for _, row := range rows {
		relations = append(relations, follow.Relation{
			UserID:   row.UserID,
			Username: row.Username,
			Since:    biztime.FromMillis(row.CreatedAt),
		})
	}
	return relations, nil
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_id = ?", userID)
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "followed_user_id = ?", userID)
}

func (r *FollowRepository) count(ctx context.Context, where string, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserFollowModel{}).
		Where(where, userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count follow edges: %w", err)
	}
	return count, nil
}
