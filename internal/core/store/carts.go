package store

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// LoadCarts fetches the full cart collection and replaces the cache wholesale.
func (s *Store) LoadCarts(ctx context.Context) ([]domain.Cart, error) {
	s.begin()

	carts, err := s.repo.ListCarts(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load carts: %w", err)
		s.end(err)

		return nil, err
	}
	s.end(nil)

	s.cache.ReplaceCarts(carts)

	return carts, nil
}

// FetchCart fetches a single cart by id without touching the cache.
func (s *Store) FetchCart(ctx context.Context, id int) (domain.Cart, error) {
	s.begin()

	cart, err := s.repo.GetCart(ctx, id)
	if err != nil {
		err = fmt.Errorf("failed to fetch cart %d: %w", id, err)
		s.end(err)

		return domain.Cart{}, err
	}
	s.end(nil)

	return cart, nil
}

// UpdateCart puts a full cart replacement and mirrors the updated record into
// the cache by id. A record absent from the cache is inserted rather than dropped.
func (s *Store) UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	s.begin()

	updated, err := s.repo.UpdateCart(ctx, cart)
	if err != nil {
		err = fmt.Errorf("failed to update cart %d: %w", cart.ID, err)
		s.end(err)

		return domain.Cart{}, err
	}
	s.end(nil)

	s.cache.UpsertCart(updated)

	return updated, nil
}

// DeleteCart issues a remote delete, then reloads the entire cart collection
// from the remote and replaces the cache wholesale. Unlike DeleteUser this
// does not patch the cache locally; the remote collection is re-mirrored in
// full after the delete.
func (s *Store) DeleteCart(ctx context.Context, id int) error {
	s.begin()

	err := s.repo.DeleteCart(ctx, id)
	if err != nil {
		err = fmt.Errorf("failed to delete cart %d: %w", id, err)
		s.end(err)

		return err
	}
	s.end(nil)

	if _, err := s.LoadCarts(ctx); err != nil {
		return fmt.Errorf("failed to reload carts after delete: %w", err)
	}

	return nil
}

// CartByID looks up a cart in the cache without network activity.
func (s *Store) CartByID(id int) (domain.Cart, bool) {
	return s.cache.CartByID(id)
}
