package usecases

import (
	"context"
	"fmt"
	"time"

	"litreview/internal/application/user/dto"
	"litreview/internal/domain/user"
	"litreview/internal/shared/biztime"
	"litreview/internal/shared/config"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type SignInCommand struct {
	Username   string
	Password   string
	RememberMe bool
	IPAddress  string
	UserAgent  string
}

type SignInUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	sessionConfig  config.SessionConfig
	logger         logger.Interface
}

func NewSignInUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	passwordHasher user.PasswordHasher,
	tokens TokenIssuer,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		sessionConfig:  sessionConfig,
		logger:         logger,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*dto.SignInResultDTO, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		// Unknown usernames and wrong passwords are indistinguishable
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("sign in rejected", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	days := uc.sessionConfig.DefaultExpDays
	if cmd.RememberMe {
		days = uc.sessionConfig.RememberExpDays
	}
	if days < 1 {
		days = 1
	}
	expiresAt := biztime.NowUTC().Add(time.Duration(days) * 24 * time.Hour)

	session, err := user.NewSession(existingUser.ID(), cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(existingUser.ID(), session.ID, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to sign session token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", existingUser.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user signed in successfully", "user_id", existingUser.ID())

	return &dto.SignInResultDTO{
		User:      *toUserDTO(existingUser),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
