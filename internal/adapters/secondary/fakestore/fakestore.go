// Package fakestore implements the store.Repository port against a
// fakestoreapi-compatible storefront REST API.
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// Repository is an HTTP client for the remote storefront API. The remote is
// authoritative; responses are mirrored as-is and status codes outside 2xx
// are treated uniformly as failures.
type Repository struct {
	client  *http.Client
	baseURL string
}

// NewRepository creates a new repository instance talking to the given base URL.
func NewRepository(client *http.Client, baseURL string) *Repository {
	return &Repository{
		client:  client,
		baseURL: baseURL,
	}
}

// ListUsers fetches the full user collection.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.getJSON(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetUser fetches a single user by id.
func (r *Repository) GetUser(ctx context.Context, id int) (domain.User, error) {
	var user domain.User
	if err := r.getJSON(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return domain.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return user, nil
}

// CreateUser posts a new user and returns the record the remote created.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var created domain.User
	if err := r.sendJSON(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// UpdateUser puts a full user replacement and returns the updated record.
func (r *Repository) UpdateUser(ctx context.Context, id int, user domain.User) (domain.User, error) {
	var updated domain.User
	if err := r.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return domain.User{}, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return updated, nil
}

// DeleteUser deletes a user. The response body is ignored.
func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	if err := r.delete(ctx, fmt.Sprintf("/users/%d", id)); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	return nil
}

// ListProducts fetches the full product collection.
func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.getJSON(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListProductsByCategory fetches the products belonging to a single category.
func (r *Repository) ListProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := r.getJSON(ctx, path, &products); err != nil {
		return nil, fmt.Errorf("failed to list products for category %q: %w", category, err)
	}

	return products, nil
}

// GetProduct fetches a single product by id.
func (r *Repository) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	var product domain.Product
	if err := r.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return domain.Product{}, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return product, nil
}

// ListCategories fetches the category list.
func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ListCarts fetches the full cart collection.
func (r *Repository) ListCarts(ctx context.Context) ([]domain.Cart, error) {
	var carts []domain.Cart
	if err := r.getJSON(ctx, "/carts", &carts); err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}

	return carts, nil
}

// GetCart fetches a single cart by id.
func (r *Repository) GetCart(ctx context.Context, id int) (domain.Cart, error) {
	var cart domain.Cart
	if err := r.getJSON(ctx, fmt.Sprintf("/carts/%d", id), &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to get cart %d: %w", id, err)
	}

	return cart, nil
}

// UpdateCart puts a full cart replacement and returns the updated record.
func (r *Repository) UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	var updated domain.Cart
	if err := r.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/carts/%d", cart.ID), cart, &updated); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to update cart %d: %w", cart.ID, err)
	}

	return updated, nil
}

// DeleteCart deletes a cart. The response body is ignored.
func (r *Repository) DeleteCart(ctx context.Context, id int) error {
	if err := r.delete(ctx, fmt.Sprintf("/carts/%d", id)); err != nil {
		return fmt.Errorf("failed to delete cart %d: %w", id, err)
	}

	return nil
}

// Login posts credentials and returns the token from the response. A 2xx
// response without a token yields an empty string; the semantic decision is
// left to the caller.
func (r *Repository) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var body struct {
		Token string `json:"token"`
	}
	if err := r.sendJSON(ctx, http.MethodPost, "/auth/login", creds, &body); err != nil {
		return "", fmt.Errorf("failed to login: %w", err)
	}

	return body.Token, nil
}

func (r *Repository) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return r.do(req, out)
}

func (r *Repository) sendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req, out)
}

func (r *Repository) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return r.do(req, nil)
}

func (r *Repository) do(req *http.Request, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("remote returned status %s", resp.Status)
	}

	if out == nil {
		// Delete responses carry no useful body.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
