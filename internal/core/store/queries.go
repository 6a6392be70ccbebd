package store

import "github.com/luciano-vc/storeadmin/internal/core/domain"

// Cache-only collection queries. These never trigger network activity; the
// presentation layer re-renders from them after commands complete.

// Users returns the cached user collection.
func (s *Store) Users() []domain.User {
	return s.cache.Users()
}

// Products returns the cached product collection.
func (s *Store) Products() []domain.Product {
	return s.cache.Products()
}

// Categories returns the cached category list.
func (s *Store) Categories() []domain.Category {
	return s.cache.Categories()
}

// Carts returns the cached cart collection.
func (s *Store) Carts() []domain.Cart {
	return s.cache.Carts()
}
