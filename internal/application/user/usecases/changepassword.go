package usecases

import (
	"context"
	"fmt"

	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type ChangePasswordCommand struct {
	ActorID            uint
	SessionID          string
	OldPassword        string
	NewPassword        string
	NewPasswordConfirm string
}

// ChangePasswordUseCase replaces the actor's password and signs out every
// other session.
type ChangePasswordUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	passwordHasher user.PasswordHasher,
	txMgr db.Transactor,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: passwordHasher,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.ActorID)

	if cmd.OldPassword == "" {
		return errors.NewValidationError("old password is required")
	}
	if cmd.NewPassword != cmd.NewPasswordConfirm {
		return errors.NewValidationError("passwords do not match")
	}

	userEntity, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return err
	}

	if err := uc.passwordHasher.Verify(cmd.OldPassword, userEntity.PasswordHash()); err != nil {
		uc.logger.Warnw("old password mismatch", "user_id", cmd.ActorID)
		return errors.NewValidationError("old password is incorrect")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword, userEntity.Username())
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid new password: %v", err))
	}

	hash, err := uc.passwordHasher.Hash(newPassword.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := userEntity.SetPasswordHash(hash); err != nil {
		return err
	}

	var revoked int64
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.UpdatePassword(txCtx, userEntity); err != nil {
			return err
		}
		revoked, err = uc.sessionRepo.DeleteOtherSessions(txCtx, cmd.ActorID, cmd.SessionID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to change password", "user_id", cmd.ActorID, "error", err)
		return err
	}

	uc.logger.Infow("password changed successfully", "user_id", cmd.ActorID, "revoked_sessions", revoked)
	return nil
}
