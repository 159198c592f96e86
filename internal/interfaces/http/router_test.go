package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/infrastructure/config"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/infrastructure/persistence/testutil"
	"litreview/internal/shared/biztime"
	sharedConfig "litreview/internal/shared/config"
	"litreview/internal/shared/logger"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	engine http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// Distinct, increasing timestamps that stay in the recent past so
	// signed tokens are already valid.
	var mu sync.Mutex
	current := time.Now().Add(-time.Hour)
	restore := biztime.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	})
	t.Cleanup(restore)

	gdb := testutil.OpenSQLite(t, models.All()...)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret"},
			Session:  sharedConfig.SessionConfig{DefaultExpDays: 1, RememberExpDays: 14},
			Cookie:   sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"},
		},
		RateLimit: sharedConfig.RateLimitConfig{AuthRequestsPerMinute: 100},
		Feed:      sharedConfig.FeedConfig{PageSize: 5, MaxPageSize: 50},
		Media:     sharedConfig.MediaConfig{Root: t.TempDir(), URLPrefix: "/media", MaxUploadMB: 1},
	}

	router := NewRouter(gdb, nil, cfg, logger.NewNopLogger())
	router.SetupRoutes()
	t.Cleanup(router.Shutdown)

	return &testServer{t: t, engine: router.GetEngine()}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, apiResponse) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w.Code, resp
}

func (s *testServer) register(username string) string {
	s.t.Helper()

	password := "reading-rocks-42"
	status, resp := s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"username":         username,
		"password":         password,
		"password_confirm": password,
	})
	require.Equal(s.t, http.StatusCreated, status, resp.Message)

	status, resp = s.do(http.MethodPost, "/auth/signin", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(s.t, http.StatusOK, status)

	var signIn struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &signIn))
	require.NotEmpty(s.t, signIn.Token)
	return signIn.Token
}

func decodeID(t *testing.T, raw json.RawMessage) uint {
	t.Helper()
	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &v))
	return v.ID
}

func TestRouter_ReviewWorkflow(t *testing.T) {
	srv := newTestServer(t)

	alice := srv.register("alice")
	bob := srv.register("bob")

	// alice asks for reviews
	status, resp := srv.do(http.MethodPost, "/reviews/tickets", alice, map[string]string{
		"title":       "Dune",
		"description": "Is it worth it?",
	})
	require.Equal(t, http.StatusCreated, status)
	ticketID := decodeID(t, resp.Data)

	// bob follows alice
	status, resp = srv.do(http.MethodPost, "/reviews/subscriptions", bob, map[string]string{
		"username": "alice",
		"action":   "subscribe",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "You are now following alice!", resp.Message)

	status, resp = srv.do(http.MethodPost, "/reviews/subscriptions", bob, map[string]string{
		"username": "alice",
		"action":   "subscribe",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Already following alice!", resp.Message)

	// bob answers the ticket; a second answer is rejected
	reviewPath := fmt.Sprintf("/reviews/tickets/%d/review", ticketID)
	status, resp = srv.do(http.MethodPost, reviewPath, bob, map[string]interface{}{
		"rating":   5,
		"headline": "Yes",
		"body":     "**Absolutely.**",
	})
	require.Equal(t, http.StatusCreated, status)
	reviewID := decodeID(t, resp.Data)

	status, _ = srv.do(http.MethodPost, reviewPath, alice, map[string]interface{}{
		"rating":   3,
		"headline": "Self answer",
	})
	assert.Equal(t, http.StatusConflict, status)

	// bob's feed holds his review first, then alice's ticket
	status, resp = srv.do(http.MethodGet, "/reviews/feeds", bob, nil)
	require.Equal(t, http.StatusOK, status)

	var feed struct {
		Items []struct {
			ContentType string `json:"content_type"`
			Ticket      *struct {
				ID       uint `json:"id"`
				IsClosed bool `json:"is_closed"`
			} `json:"ticket"`
			Review *struct {
				ID       uint   `json:"id"`
				BodyHTML string `json:"body_html"`
			} `json:"review"`
		} `json:"items"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &feed))
	require.Equal(t, 2, feed.Total)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "REVIEW", feed.Items[0].ContentType)
	assert.Equal(t, reviewID, feed.Items[0].Review.ID)
	assert.Contains(t, feed.Items[0].Review.BodyHTML, "<strong>Absolutely.</strong>")
	assert.Equal(t, "TICKET", feed.Items[1].ContentType)
	assert.True(t, feed.Items[1].Ticket.IsClosed)

	// alice's posts only show her ticket
	status, resp = srv.do(http.MethodGet, "/reviews/posts?page=99", alice, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &feed))
	assert.Equal(t, 1, feed.Total)
	assert.Equal(t, 1, feed.TotalPages)

	// ownership guards: alice cannot touch bob's review
	status, _ = srv.do(http.MethodDelete, fmt.Sprintf("/reviews/reviews/%d", reviewID), alice, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = srv.do(http.MethodGet, fmt.Sprintf("/reviews/reviews/%d/edit", reviewID), bob, nil)
	assert.Equal(t, http.StatusOK, status)

	// deleting the ticket takes the review with it
	status, _ = srv.do(http.MethodDelete, fmt.Sprintf("/reviews/tickets/%d", ticketID), alice, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = srv.do(http.MethodGet, fmt.Sprintf("/reviews/reviews/%d/edit", reviewID), bob, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_AuthGuards(t *testing.T) {
	srv := newTestServer(t)

	status, resp := srv.do(http.MethodGet, "/reviews/feeds", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, resp.Success)

	status, _ = srv.do(http.MethodGet, "/reviews/feeds", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := srv.register("carol")

	status, resp = srv.do(http.MethodPost, "/auth/signin", "", map[string]string{"username": "carol", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, status)
	unknownStatus, unknownResp := srv.do(http.MethodPost, "/auth/signin", "", map[string]string{"username": "nobody", "password": "wrong-password"})
	assert.Equal(t, status, unknownStatus)
	assert.Equal(t, resp.Error.Message, unknownResp.Error.Message)

	status, _ = srv.do(http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = srv.do(http.MethodPost, "/auth/signout", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = srv.do(http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_HealthAndUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	status, resp := srv.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	status, _ = srv.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
