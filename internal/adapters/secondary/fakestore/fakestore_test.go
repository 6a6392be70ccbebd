package fakestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]domain.User{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "bob"},
		})
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}

func TestRepository_CreateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var user domain.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		user.ID = 11
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	created, err := repo.CreateUser(context.Background(), domain.User{Username: "carol"})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, "carol", created.Username)
}

func TestRepository_UpdateCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/carts/3", r.URL.Path)

		var cart domain.Cart
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cart))
		_ = json.NewEncoder(w).Encode(cart)
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	cart := domain.Cart{ID: 3, UserID: 7, Products: []domain.CartItem{{ProductID: 1, Quantity: 2}}}
	updated, err := repo.UpdateCart(context.Background(), cart)
	require.NoError(t, err)
	assert.Equal(t, cart, updated)
}

func TestRepository_DeleteUser_IgnoresBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/5", r.URL.Path)

		// The remote echoes the deleted record; the client must not care.
		_, _ = w.Write([]byte(`{"id":5}`))
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	assert.NoError(t, repo.DeleteUser(context.Background(), 5))
}

func TestRepository_ListProductsByCategory_EscapesPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/men's clothing", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]domain.Product{{ID: 1, Category: "men's clothing"}})
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	products, err := repo.ListProductsByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestRepository_Login(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantToken string
	}{
		{
			name:      "token present",
			response:  `{"token":"abc123"}`,
			wantToken: "abc123",
		},
		{
			name:      "token absent",
			response:  `{}`,
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/auth/login", r.URL.Path)

				var creds domain.Credentials
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "alice", creds.Username)

				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			repo := NewRepository(server.Client(), server.URL)

			token, err := repo.Login(context.Background(), domain.Credentials{
				Username: "alice",
				Password: "secret",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestRepository_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	_, err := repo.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestRepository_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	repo := NewRepository(server.Client(), server.URL)

	_, err := repo.ListCarts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response body")
}
