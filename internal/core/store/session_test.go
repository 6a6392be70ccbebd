package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/cache"
	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/mocks"
	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/sessionfile"
	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	s, repo, _, sessions := newTestStore()

	creds := domain.Credentials{Username: "alice", Password: "secret"}
	session := domain.NewSession("alice", "abc123")
	repo.On("Login", ctx, creds).Return("abc123", nil)
	sessions.On("Write", session).Return(nil)
	sessions.On("Read").Return(session, true)

	got, err := s.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "abc123", got.Token)

	// The session username comes from the submitted credentials, not the
	// response body.
	username, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", username)
	assert.True(t, s.IsAuthenticated())

	repo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestStore_Login_NoToken(t *testing.T) {
	ctx := context.Background()
	s, repo, _, sessions := newTestStore()

	creds := domain.Credentials{Username: "alice", Password: "secret"}
	repo.On("Login", ctx, creds).Return("", nil)

	// A 2xx response without a token is an authentication failure: nothing
	// is persisted and the session username stays unset.
	_, err := s.Login(ctx, creds)
	require.ErrorIs(t, err, ErrLoginFailed)

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	sessions.AssertNotCalled(t, "Write")

	repo.AssertExpectations(t)
}

func TestStore_Login_RemoteError(t *testing.T) {
	ctx := context.Background()
	s, repo, _, sessions := newTestStore()

	creds := domain.Credentials{Username: "alice", Password: "secret"}
	repo.On("Login", ctx, creds).Return("", errors.New("status 401"))

	_, err := s.Login(ctx, creds)
	require.Error(t, err)
	assert.Contains(t, s.Status().LastError, "status 401")

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	sessions.AssertNotCalled(t, "Write")

	repo.AssertExpectations(t)
}

func TestStore_Login_PersistError(t *testing.T) {
	ctx := context.Background()
	s, repo, _, sessions := newTestStore()

	creds := domain.Credentials{Username: "alice", Password: "secret"}
	repo.On("Login", ctx, creds).Return("abc123", nil)
	sessions.On("Write", domain.NewSession("alice", "abc123")).Return(errors.New("disk full"))

	_, err := s.Login(ctx, creds)
	require.Error(t, err)

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	repo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestStore_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		stored     domain.Session
		hasSession bool
		want       bool
	}{
		{
			name: "no session at all",
			want: false,
		},
		{
			name:     "username set but durable session cleared",
			username: "alice",
			want:     false,
		},
		{
			name:       "durable token present but no username",
			stored:     domain.Session{Token: "abc123"},
			hasSession: true,
			want:       false,
		},
		{
			name:       "both pieces present",
			username:   "alice",
			stored:     domain.NewSession("alice", "abc123"),
			hasSession: true,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _, sessions := newTestStore()
			s.username = tt.username
			sessions.On("Read").Return(tt.stored, tt.hasSession)

			assert.Equal(t, tt.want, s.IsAuthenticated())
		})
	}
}

func TestStore_Logout(t *testing.T) {
	s, _, _, sessions := newTestStore()
	s.username = "alice"

	sessions.On("Clear").Return(nil)
	sessions.On("Read").Return(domain.Session{}, false)

	require.NoError(t, s.Logout())

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())

	sessions.AssertExpectations(t)
}

// Each CLI invocation is a fresh process: a store built over a session file
// written by an earlier login has to come up authenticated, and protected
// routes have to resolve without a redirect.
func TestStore_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	repo := &mocks.MockRepository{}
	repo.On("Login", ctx, domain.Credentials{Username: "alice", Password: "secret"}).
		Return("abc123", nil)

	first := New(repo, cache.NewInMemoryCache(), sessionfile.New(path))
	_, err := first.Login(ctx, domain.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.True(t, first.IsAuthenticated())

	// Fresh store over the same session file, as the next invocation sees it.
	second := New(&mocks.MockRepository{}, cache.NewInMemoryCache(), sessionfile.New(path))

	assert.True(t, second.IsAuthenticated())
	username, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", username)

	login, found := nav.Find(nav.Routes(), nav.RouteLogin)
	require.True(t, found)
	users, found := nav.Find(nav.Routes(), nav.RouteUsers)
	require.True(t, found)
	assert.Equal(t, users, nav.NewGuard(second, login).Resolve(users))

	// Logout in one process signs out the next one too.
	require.NoError(t, second.Logout())
	third := New(&mocks.MockRepository{}, cache.NewInMemoryCache(), sessionfile.New(path))
	assert.False(t, third.IsAuthenticated())
}
