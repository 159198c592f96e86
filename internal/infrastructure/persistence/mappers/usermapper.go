package mappers

import (
	"fmt"

	"litreview/internal/domain/user"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/biztime"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    biztime.ToMillis(u.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(entity *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		IPAddress: entity.IPAddress,
		UserAgent: entity.UserAgent,
		ExpiresAt: biztime.ToMillis(entity.ExpiresAt),
		CreatedAt: biztime.ToMillis(entity.CreatedAt),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		IPAddress: model.IPAddress,
		UserAgent: model.UserAgent,
		ExpiresAt: biztime.FromMillis(model.ExpiresAt),
		CreatedAt: biztime.FromMillis(model.CreatedAt),
	}
}
