package cache

import (
	"sync"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// InMemoryCache is a thread-safe in-memory mirror of the remote collections.
// Collections keep remote ordering and hold at most one entry per id; lookups
// are linear, which is acceptable at the collection sizes the remote serves.
type InMemoryCache struct {
	mu         sync.RWMutex
	users      []domain.User
	products   []domain.Product
	categories []domain.Category
	carts      []domain.Cart
}

// NewInMemoryCache creates a new in-memory cache instance. All collections
// start empty.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{}
}

// ReplaceUsers discards the cached user collection and replaces it wholesale.
func (c *InMemoryCache) ReplaceUsers(users []domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users = append([]domain.User(nil), users...)
}

// Users returns a copy of the cached user collection.
func (c *InMemoryCache) Users() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.User(nil), c.users...)
}

// UserByID retrieves a cached user by id.
func (c *InMemoryCache) UserByID(id int) (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, user := range c.users {
		if user.ID == id {
			return user, true
		}
	}

	return domain.User{}, false
}

// UpsertUser replaces the cached user with a matching id in place, or appends
// the user when no entry matches.
func (c *InMemoryCache) UpsertUser(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.users {
		if c.users[i].ID == user.ID {
			c.users[i] = user

			return
		}
	}

	c.users = append(c.users, user)
}

// RemoveUser removes the cached user with the given id, if present.
func (c *InMemoryCache) RemoveUser(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.users {
		if c.users[i].ID == id {
			c.users = append(c.users[:i], c.users[i+1:]...)

			return
		}
	}
}

// ReplaceProducts discards the cached product collection and replaces it wholesale.
func (c *InMemoryCache) ReplaceProducts(products []domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = append([]domain.Product(nil), products...)
}

// Products returns a copy of the cached product collection.
func (c *InMemoryCache) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.Product(nil), c.products...)
}

// ProductByID retrieves a cached product by id.
func (c *InMemoryCache) ProductByID(id int) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, product := range c.products {
		if product.ID == id {
			return product, true
		}
	}

	return domain.Product{}, false
}

// ReplaceCategories discards the cached category list and replaces it wholesale.
func (c *InMemoryCache) ReplaceCategories(categories []domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = append([]domain.Category(nil), categories...)
}

// Categories returns a copy of the cached category list.
func (c *InMemoryCache) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.Category(nil), c.categories...)
}

// ReplaceCarts discards the cached cart collection and replaces it wholesale.
func (c *InMemoryCache) ReplaceCarts(carts []domain.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.carts = append([]domain.Cart(nil), carts...)
}

// Carts returns a copy of the cached cart collection.
func (c *InMemoryCache) Carts() []domain.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.Cart(nil), c.carts...)
}

// CartByID retrieves a cached cart by id.
func (c *InMemoryCache) CartByID(id int) (domain.Cart, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cart := range c.carts {
		if cart.ID == id {
			return cart, true
		}
	}

	return domain.Cart{}, false
}

// UpsertCart replaces the cached cart with a matching id in place, or appends
// the cart when no entry matches.
func (c *InMemoryCache) UpsertCart(cart domain.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.carts {
		if c.carts[i].ID == cart.ID {
			c.carts[i] = cart

			return
		}
	}

	c.carts = append(c.carts, cart)
}
