package store

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// Login posts credentials to the remote. Success requires the response to
// carry a token: the composed session is persisted to durable storage and the
// in-memory username is set from the submitted credentials, never from the
// response body. A token-less response is ErrLoginFailed and leaves the
// session untouched.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	s.begin()

	token, err := s.repo.Login(ctx, creds)
	if err != nil {
		err = fmt.Errorf("failed to login: %w", err)
		s.end(err)

		return domain.Session{}, err
	}

	if token == "" {
		s.end(ErrLoginFailed)

		return domain.Session{}, ErrLoginFailed
	}

	session := domain.NewSession(creds.Username, token)

	if err := s.sessions.Write(session); err != nil {
		err = fmt.Errorf("failed to persist session: %w", err)
		s.end(err)

		return domain.Session{}, err
	}
	s.end(nil)

	s.mu.Lock()
	s.username = creds.Username
	s.mu.Unlock()

	return session, nil
}

// Logout clears the durable session and the in-memory username.
func (s *Store) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.username = ""
	s.mu.Unlock()

	return nil
}

// IsAuthenticated reports whether the composed session is valid: the session
// username is set and a token is present in durable storage.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	username := s.username
	s.mu.Unlock()

	sess, ok := s.sessions.Read()
	if !ok {
		return false
	}

	return domain.NewSession(username, sess.Token).Valid()
}

// CurrentUser returns the session username, if one is set.
func (s *Store) CurrentUser() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.username, s.username != ""
}
