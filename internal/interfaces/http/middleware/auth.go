package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/user/usecases"
	"litreview/internal/shared/constants"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type AuthMiddleware struct {
	sessions usecases.ValidateSessionExecutor
	logger   logger.Interface
}

func NewAuthMiddleware(sessions usecases.ValidateSessionExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth resolves the session token from the cookie or a Bearer header
// and stores the actor's user and session IDs on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		principal, err := m.sessions.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("rejected session token", "client_ip", c.ClientIP(), "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, principal.UserID)
		c.Set(constants.ContextKeySessionID, principal.SessionID)

		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	if token := utils.GetTokenFromCookie(c, utils.SessionCookie); token != "" {
		return token, nil
	}

	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.NewUnauthorizedError("missing authorization token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.NewUnauthorizedError("invalid authorization header format")
	}
	return parts[1], nil
}
