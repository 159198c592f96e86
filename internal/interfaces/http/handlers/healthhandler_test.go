package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"litreview/internal/interfaces/http/handlers/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		handler := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		handler.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("database down", func(t *testing.T) {
		handler := NewHealthHandler(pingerFunc(func(context.Context) error { return fmt.Errorf("refused") }), testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		handler.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
