package mocks

import (
	"context"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of store.Repository.
type MockRepository struct {
	mock.Mock
}

// ListUsers mocks the ListUsers method.
func (m *MockRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

// GetUser mocks the GetUser method.
func (m *MockRepository) GetUser(ctx context.Context, id int) (domain.User, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(domain.User), args.Error(1)
}

// CreateUser mocks the CreateUser method.
func (m *MockRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)

	return args.Get(0).(domain.User), args.Error(1)
}

// UpdateUser mocks the UpdateUser method.
func (m *MockRepository) UpdateUser(ctx context.Context, id int, user domain.User) (domain.User, error) {
	args := m.Called(ctx, id, user)

	return args.Get(0).(domain.User), args.Error(1)
}

// DeleteUser mocks the DeleteUser method.
func (m *MockRepository) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// ListProducts mocks the ListProducts method.
func (m *MockRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Product), args.Error(1)
}

// ListProductsByCategory mocks the ListProductsByCategory method.
func (m *MockRepository) ListProductsByCategory(
	ctx context.Context,
	category domain.Category,
) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Product), args.Error(1)
}

// GetProduct mocks the GetProduct method.
func (m *MockRepository) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(domain.Product), args.Error(1)
}

// ListCategories mocks the ListCategories method.
func (m *MockRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Category), args.Error(1)
}

// ListCarts mocks the ListCarts method.
func (m *MockRepository) ListCarts(ctx context.Context) ([]domain.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Cart), args.Error(1)
}

// GetCart mocks the GetCart method.
func (m *MockRepository) GetCart(ctx context.Context, id int) (domain.Cart, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(domain.Cart), args.Error(1)
}

// UpdateCart mocks the UpdateCart method.
func (m *MockRepository) UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	args := m.Called(ctx, cart)

	return args.Get(0).(domain.Cart), args.Error(1)
}

// DeleteCart mocks the DeleteCart method.
func (m *MockRepository) DeleteCart(ctx context.Context, id int) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// Login mocks the Login method.
func (m *MockRepository) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	args := m.Called(ctx, creds)

	return args.String(0), args.Error(1)
}

// MockSessionStore is a mock implementation of store.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

// Read mocks the Read method.
func (m *MockSessionStore) Read() (domain.Session, bool) {
	args := m.Called()

	return args.Get(0).(domain.Session), args.Bool(1)
}

// Write mocks the Write method.
func (m *MockSessionStore) Write(session domain.Session) error {
	args := m.Called(session)

	return args.Error(0)
}

// Clear mocks the Clear method.
func (m *MockSessionStore) Clear() error {
	args := m.Called()

	return args.Error(0)
}
