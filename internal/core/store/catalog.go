package store

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// LoadProducts fetches the full product collection and replaces the cache wholesale.
func (s *Store) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	s.begin()

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load products: %w", err)
		s.end(err)

		return nil, err
	}
	s.end(nil)

	s.cache.ReplaceProducts(products)

	return products, nil
}

// LoadProductsByCategory fetches the products of a single category and
// replaces the product cache wholesale with the scoped collection.
func (s *Store) LoadProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	s.begin()

	products, err := s.repo.ListProductsByCategory(ctx, category)
	if err != nil {
		err = fmt.Errorf("failed to load products for category %q: %w", category, err)
		s.end(err)

		return nil, err
	}
	s.end(nil)

	s.cache.ReplaceProducts(products)

	return products, nil
}

// FetchProduct fetches a single product by id without touching the cache.
func (s *Store) FetchProduct(ctx context.Context, id int) (domain.Product, error) {
	s.begin()

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		err = fmt.Errorf("failed to fetch product %d: %w", id, err)
		s.end(err)

		return domain.Product{}, err
	}
	s.end(nil)

	return product, nil
}

// LoadCategories fetches the category list and replaces the cache wholesale.
func (s *Store) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	s.begin()

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load categories: %w", err)
		s.end(err)

		return nil, err
	}
	s.end(nil)

	s.cache.ReplaceCategories(categories)

	return categories, nil
}

// ProductByID looks up a product in the cache without network activity.
func (s *Store) ProductByID(id int) (domain.Product, bool) {
	return s.cache.ProductByID(id)
}

// Refresh reloads every collection from the remote concurrently. The first
// failure cancels the remaining loads and is returned to the caller.
func (s *Store) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.LoadUsers(ctx)

		return err
	})
	g.Go(func() error {
		_, err := s.LoadProducts(ctx)

		return err
	})
	g.Go(func() error {
		_, err := s.LoadCategories(ctx)

		return err
	})
	g.Go(func() error {
		_, err := s.LoadCarts(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to refresh collections: %w", err)
	}

	return nil
}
