package usecases

import (
	"context"
	"fmt"

	"litreview/internal/domain/user"
	"litreview/internal/shared/logger"
)

// CleanupExpiredSessionsUseCase removes sessions past their expiry. Expired
// sessions are already rejected on validation; this only reclaims rows.
type CleanupExpiredSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewCleanupExpiredSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *CleanupExpiredSessionsUseCase {
	return &CleanupExpiredSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute returns the number of sessions removed.
func (uc *CleanupExpiredSessionsUseCase) Execute(ctx context.Context) (int, error) {
	removed, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		uc.logger.Errorw("failed to delete expired sessions", "error", err)
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return int(removed), nil
}
