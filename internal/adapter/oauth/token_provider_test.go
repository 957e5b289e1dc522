package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type memTokens struct {
	tokens map[uuid.UUID]*domain.StravaToken
	saves  int
}

func (m *memTokens) GetToken(_ context.Context, userID uuid.UUID) (*domain.StravaToken, error) {
	t, ok := m.tokens[userID]
	if !ok {
		return nil, domain.NotFoundError("strava token")
	}
	copied := *t
	return &copied, nil
}

func (m *memTokens) SaveToken(_ context.Context, t *domain.StravaToken) error {
	copied := *t
	m.tokens[t.UserID] = &copied
	m.saves++
	return nil
}

func tokenServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","refresh_token":"new-refresh","token_type":"Bearer","expires_in":21600}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAccessToken_ValidTokenIsReused(t *testing.T) {
	var calls atomic.Int32
	srv := tokenServer(t, &calls)
	userID := uuid.New()
	repo := &memTokens{tokens: map[uuid.UUID]*domain.StravaToken{
		userID: {UserID: userID, AccessToken: "current", RefreshToken: "old-refresh", ExpiresAt: time.Now().Add(time.Hour)},
	}}

	provider := NewTokenProvider(repo, NewStravaConfig("client", "secret", srv.URL), srv.Client(), nopLogger{})
	token, err := provider.AccessToken(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "current", token)
	assert.Zero(t, calls.Load())
	assert.Zero(t, repo.saves)
}

func TestAccessToken_ExpiredTokenIsRefreshed(t *testing.T) {
	var calls atomic.Int32
	srv := tokenServer(t, &calls)
	userID := uuid.New()
	repo := &memTokens{tokens: map[uuid.UUID]*domain.StravaToken{
		userID: {UserID: userID, AccessToken: "stale", RefreshToken: "old-refresh", ExpiresAt: time.Now().Add(-time.Minute)},
	}}

	provider := NewTokenProvider(repo, NewStravaConfig("client", "secret", srv.URL), srv.Client(), nopLogger{})
	token, err := provider.AccessToken(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, repo.saves)

	saved := repo.tokens[userID]
	assert.Equal(t, "fresh", saved.AccessToken)
	assert.Equal(t, "new-refresh", saved.RefreshToken)
	assert.True(t, saved.ExpiresAt.After(time.Now().Add(5*time.Hour)))
}

func TestAccessToken_MissingToken(t *testing.T) {
	provider := NewTokenProvider(&memTokens{tokens: map[uuid.UUID]*domain.StravaToken{}}, NewStravaConfig("client", "secret", ""), nil, nopLogger{})

	_, err := provider.AccessToken(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
