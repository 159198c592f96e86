package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/infrastructure/persistence/mappers"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/mapper"
	pagequery "litreview/internal/shared/query"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("username = ?", vo.NormalizeUsername(username)).
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var list []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return r.toDomainList(list)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("username = ?", vo.NormalizeUsername(username)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"password_hash": u.PasswordHash(),
			"updated_at":    u.UpdatedAt().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

// List returns users ordered by username. Search is a case-insensitive
// substring match.
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(username) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(vo.NormalizeUsername(search)))+"%")
	}
	if filter.ExcludeID != 0 {
		query = query.Where("id <> ?", filter.ExcludeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	paging := pagequery.PageFilter{Page: filter.Page, PageSize: filter.PageSize}

	var list []models.UserModel
	if err := query.
		Order("username ASC").
		Offset(paging.Offset()).
		Limit(paging.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.toDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) toDomainList(list []models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(list, func(m models.UserModel) (*user.User, error) {
		return r.mapper.ToDomain(&m)
	})
}

// escapeLike neutralizes LIKE wildcards in user input. Usernames may contain
// "_" which would otherwise match any character. The escape character is "!"
// so the same clause works on MySQL and SQLite.
func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}
