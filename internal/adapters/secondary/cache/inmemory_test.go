package cache

import (
	"testing"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_StartsEmpty(t *testing.T) {
	c := NewInMemoryCache()

	assert.Empty(t, c.Users())
	assert.Empty(t, c.Products())
	assert.Empty(t, c.Categories())
	assert.Empty(t, c.Carts())
}

func TestInMemoryCache_ReplaceUsersWholesale(t *testing.T) {
	c := NewInMemoryCache()

	c.ReplaceUsers([]domain.User{{ID: 1}, {ID: 2}})
	c.ReplaceUsers([]domain.User{{ID: 3}})

	users := c.Users()
	require.Len(t, users, 1)
	assert.Equal(t, 3, users[0].ID)
}

func TestInMemoryCache_UpsertUser(t *testing.T) {
	c := NewInMemoryCache()
	c.ReplaceUsers([]domain.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	})

	// Matching id replaces in place, preserving order and size.
	c.UpsertUser(domain.User{ID: 1, Username: "alice2"})

	users := c.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "alice2", users[0].Username)

	// Unknown id appends.
	c.UpsertUser(domain.User{ID: 3, Username: "carol"})
	assert.Len(t, c.Users(), 3)
}

func TestInMemoryCache_RemoveUser(t *testing.T) {
	c := NewInMemoryCache()
	c.ReplaceUsers([]domain.User{{ID: 1}, {ID: 2}})

	c.RemoveUser(1)
	assert.Len(t, c.Users(), 1)

	_, ok := c.UserByID(1)
	assert.False(t, ok)

	// Removing an absent id is a no-op.
	c.RemoveUser(9)
	assert.Len(t, c.Users(), 1)
}

func TestInMemoryCache_UpsertCart(t *testing.T) {
	c := NewInMemoryCache()
	c.ReplaceCarts([]domain.Cart{{ID: 1, UserID: 10}})

	c.UpsertCart(domain.Cart{ID: 1, UserID: 20})

	carts := c.Carts()
	require.Len(t, carts, 1)
	assert.Equal(t, 20, carts[0].UserID)
}

func TestInMemoryCache_CopiesOnRead(t *testing.T) {
	c := NewInMemoryCache()
	c.ReplaceProducts([]domain.Product{{ID: 1, Title: "Backpack"}})

	products := c.Products()
	products[0].Title = "mutated"

	fresh, ok := c.ProductByID(1)
	require.True(t, ok)
	assert.Equal(t, "Backpack", fresh.Title)
}
