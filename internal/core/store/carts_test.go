package store

import (
	"context"
	"errors"
	"testing"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadCarts(t *testing.T) {
	ctx := context.Background()
	s, repo, c, _ := newTestStore()

	carts := []domain.Cart{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 11},
	}
	repo.On("ListCarts", ctx).Return(carts, nil)

	got, err := s.LoadCarts(ctx)
	require.NoError(t, err)
	assert.Equal(t, carts, got)
	assert.Equal(t, carts, c.Carts())

	repo.AssertExpectations(t)
}

func TestStore_UpdateCart(t *testing.T) {
	ctx := context.Background()
	s, repo, c, _ := newTestStore()

	c.ReplaceCarts([]domain.Cart{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 11},
	})

	input := domain.Cart{ID: 2, UserID: 11, Products: []domain.CartItem{{ProductID: 5, Quantity: 3}}}
	repo.On("UpdateCart", ctx, input).Return(input, nil)

	got, err := s.UpdateCart(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	assert.Len(t, c.Carts(), 2)
	cached, ok := s.CartByID(2)
	require.True(t, ok)
	assert.Equal(t, input, cached)

	repo.AssertExpectations(t)
}

func TestStore_DeleteCart_ReloadsCollection(t *testing.T) {
	ctx := context.Background()
	s, repo, c, _ := newTestStore()

	c.ReplaceCarts([]domain.Cart{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 11},
	})

	// The remote collection after the delete differs from a local patch:
	// the cache must mirror it wholesale, not remove a single entry.
	remote := []domain.Cart{
		{ID: 2, UserID: 11},
		{ID: 3, UserID: 12},
	}
	repo.On("DeleteCart", ctx, 1).Return(nil)
	repo.On("ListCarts", ctx).Return(remote, nil)

	err := s.DeleteCart(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, remote, c.Carts())
	_, ok := s.CartByID(1)
	assert.False(t, ok)

	repo.AssertExpectations(t)
}

func TestStore_DeleteCart_ReloadError(t *testing.T) {
	ctx := context.Background()
	s, repo, _, _ := newTestStore()

	repo.On("DeleteCart", ctx, 1).Return(nil)
	repo.On("ListCarts", ctx).Return(nil, errors.New("remote unreachable"))

	err := s.DeleteCart(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reload carts after delete")

	repo.AssertExpectations(t)
}

func TestStore_FetchCart_DoesNotTouchCache(t *testing.T) {
	ctx := context.Background()
	s, repo, c, _ := newTestStore()

	expected := domain.Cart{ID: 4, UserID: 10}
	repo.On("GetCart", ctx, 4).Return(expected, nil)

	cart, err := s.FetchCart(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, expected, cart)
	assert.Empty(t, c.Carts())

	repo.AssertExpectations(t)
}
