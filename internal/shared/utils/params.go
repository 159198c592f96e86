package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"litreview/internal/shared/constants"
	"litreview/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "review").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(id), nil
}

// GetActorID returns the authenticated user ID set by the auth middleware.
func GetActorID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	return id, nil
}

// GetSessionID returns the session ID set by the auth middleware, or "".
func GetSessionID(c *gin.Context) string {
	return c.GetString(constants.ContextKeySessionID)
}
