package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/user/dto"
	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type SignUpCommand struct {
	Username        string
	Password        string
	PasswordConfirm string
}

type SignUpUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewSignUpUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, cmd SignUpCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing sign up use case", "username", cmd.Username)

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != cmd.PasswordConfirm {
		return nil, errors.NewValidationError("passwords do not match")
	}
	password, err := vo.NewPassword(cmd.Password, username.String())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("a user with that username already exists")
	}

	hash, err := uc.passwordHasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with that username already exists")
		}
		uc.logger.Errorw("failed to create user", "username", username.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user signed up successfully", "user_id", newUser.ID())

	return toUserDTO(newUser), nil
}

func toUserDTO(u *user.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		CreatedAt: u.CreatedAt(),
	}
}
