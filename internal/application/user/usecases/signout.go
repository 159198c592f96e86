package usecases

import (
	"context"

	"litreview/internal/domain/user"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type SignOutCommand struct {
	ActorID   uint
	SessionID string
}

type SignOutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewSignOutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *SignOutUseCase {
	return &SignOutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute deletes the session. Signing out of an already removed session
// succeeds.
func (uc *SignOutUseCase) Execute(ctx context.Context, cmd SignOutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewUnauthorizedError("not signed in")
	}

	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to delete session", "user_id", cmd.ActorID, "error", err)
		return err
	}

	uc.logger.Infow("user signed out", "user_id", cmd.ActorID)
	return nil
}
