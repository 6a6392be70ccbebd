package store

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// LoadUsers fetches the full user collection and replaces the cache wholesale.
func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, error) {
	s.begin()

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load users: %w", err)
		s.end(err)

		return nil, err
	}
	s.end(nil)

	s.cache.ReplaceUsers(users)

	return users, nil
}

// FetchUser fetches a single user by id. This is a read-through fetch: the
// cache is not consulted and not mutated.
func (s *Store) FetchUser(ctx context.Context, id int) (domain.User, error) {
	s.begin()

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		err = fmt.Errorf("failed to fetch user %d: %w", id, err)
		s.end(err)

		return domain.User{}, err
	}
	s.end(nil)

	return user, nil
}

// CreateUser posts a new user and mirrors the created record into the cache.
// If the remote assigns an id colliding with a cached entry, the cached entry
// is overwritten.
func (s *Store) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	s.begin()

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		err = fmt.Errorf("failed to create user: %w", err)
		s.end(err)

		return domain.User{}, err
	}
	s.end(nil)

	s.cache.UpsertUser(created)

	return created, nil
}

// UpdateUser puts a full replacement and mirrors the updated record into the
// cache by id. A record absent from the cache is inserted rather than dropped.
func (s *Store) UpdateUser(ctx context.Context, id int, user domain.User) (domain.User, error) {
	s.begin()

	updated, err := s.repo.UpdateUser(ctx, id, user)
	if err != nil {
		err = fmt.Errorf("failed to update user %d: %w", id, err)
		s.end(err)

		return domain.User{}, err
	}
	s.end(nil)

	s.cache.UpsertUser(updated)

	return updated, nil
}

// DeleteUser issues a remote delete and removes the matching entry from the
// cache locally, regardless of the remote response body.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	s.begin()

	err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		err = fmt.Errorf("failed to delete user %d: %w", id, err)
		s.end(err)

		return err
	}
	s.end(nil)

	s.cache.RemoveUser(id)

	return nil
}

// UserByID looks up a user in the cache. It never triggers network activity;
// a miss is not an error.
func (s *Store) UserByID(id int) (domain.User, bool) {
	return s.cache.UserByID(id)
}
