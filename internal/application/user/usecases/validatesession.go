package usecases

import (
	"context"

	"litreview/internal/application/user/dto"
	"litreview/internal/domain/user"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// ValidateSessionUseCase resolves a session token to the acting user. The
// token must verify and its session must still exist and be unexpired.
type ValidateSessionUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewValidateSessionUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	tokens TokenIssuer,
	logger logger.Interface,
) *ValidateSessionUseCase {
	return &ValidateSessionUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *ValidateSessionUseCase) Execute(ctx context.Context, token string) (*dto.Principal, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	userID, sessionID, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.NewTokenInvalidError("session token")
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewSessionExpiredError()
		}
		return nil, err
	}
	if session.UserID != userID {
		uc.logger.Warnw("session token user mismatch", "user_id", userID)
		return nil, errors.NewTokenInvalidError("session token")
	}
	if session.IsExpired() {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil && !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to delete expired session", "user_id", userID, "error", err)
		}
		return nil, errors.NewSessionExpiredError()
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewSessionExpiredError()
		}
		return nil, err
	}

	return &dto.Principal{
		UserID:    u.ID(),
		SessionID: session.ID,
		Username:  u.Username(),
	}, nil
}
