package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/matcha/internal/client/config"
	"github.com/dmitrijs2005/matcha/internal/client/models"
	"github.com/dmitrijs2005/matcha/internal/client/session"
)

type memCreds struct {
	mu    sync.Mutex
	token string
}

func (m *memCreds) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memCreds) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memCreds) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerBaseURL = baseURL
	cfg.RequestTimeout = 2 * time.Second
	return cfg
}

func freshToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func staleToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestBootstrap_NoStoredToken(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	root := New(testConfig(srv.URL), &memCreds{}, nil)
	require.Equal(t, session.StateUnknown, root.Session.State())

	root.Bootstrap(context.Background())

	assert.Equal(t, session.StateAnonymous, root.Session.State())
	assert.False(t, root.Session.Snapshot().LoadingInitial)
	assert.Zero(t, hits, "no token must mean no network traffic")
}

func TestBootstrap_ValidStoredToken(t *testing.T) {
	token := freshToken(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: "u1", FirstName: "Ada"})
	}))
	defer srv.Close()

	creds := &memCreds{token: token}
	root := New(testConfig(srv.URL), creds, nil)
	root.Bootstrap(context.Background())

	snap := root.Session.Snapshot()
	assert.Equal(t, session.StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ada", snap.User.FirstName)
	assert.False(t, snap.LoadingInitial)
}

func TestBootstrap_RejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token revoked"})
	}))
	defer srv.Close()

	creds := &memCreds{token: freshToken(t)}
	root := New(testConfig(srv.URL), creds, nil)
	root.Bootstrap(context.Background())

	assert.Equal(t, session.StateAnonymous, root.Session.State())
	assert.False(t, root.Session.Snapshot().LoadingInitial)

	stored, err := creds.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected token must be wiped from durable storage")
}

func TestBootstrap_ExpiredTokenSkipsRoundTrip(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	creds := &memCreds{token: staleToken(t)}
	root := New(testConfig(srv.URL), creds, nil)
	root.Bootstrap(context.Background())

	assert.Equal(t, session.StateAnonymous, root.Session.State())
	assert.Zero(t, hits)

	stored, err := creds.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestBootstrap_CompletesInitialLoadOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	root := New(testConfig(srv.URL), &memCreds{}, nil)

	var loadedTransitions int
	root.Session.Subscribe(func(snap session.Snapshot) {
		if !snap.LoadingInitial {
			loadedTransitions++
		}
	})

	root.Bootstrap(context.Background())
	root.Bootstrap(context.Background())

	assert.Equal(t, 1, loadedTransitions)
}
