package usecases

import (
	"context"
	"time"

	"litreview/internal/application/user/dto"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, expiresAt time.Time) (string, error)
	Verify(token string) (userID uint, sessionID string, err error)
}

type SignUpExecutor interface {
	Execute(ctx context.Context, cmd SignUpCommand) (*dto.UserDTO, error)
}

type SignInExecutor interface {
	Execute(ctx context.Context, cmd SignInCommand) (*dto.SignInResultDTO, error)
}

type SignOutExecutor interface {
	Execute(ctx context.Context, cmd SignOutCommand) error
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error)
}

type ValidateSessionExecutor interface {
	Execute(ctx context.Context, token string) (*dto.Principal, error)
}
