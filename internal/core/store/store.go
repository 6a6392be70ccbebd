package store

import (
	"context"
	"errors"
	"sync"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

// ErrLoginFailed is returned when the remote accepts the login request but
// the response carries no token. An HTTP 200 without a token is not a login.
var ErrLoginFailed = errors.New("login failed: response contained no token")

// Repository defines the interface for remote storefront API operations (port).
type Repository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, id int, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id int) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCarts(ctx context.Context) ([]domain.Cart, error)
	GetCart(ctx context.Context, id int) (domain.Cart, error)
	UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	DeleteCart(ctx context.Context, id int) error
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

// Cache defines the interface for the in-memory mirror of remote collections (port).
// Every collection holds at most one entry per id; upserts locate-and-replace,
// never append duplicates.
type Cache interface {
	ReplaceUsers(users []domain.User)
	Users() []domain.User
	UserByID(id int) (domain.User, bool)
	UpsertUser(user domain.User)
	RemoveUser(id int)

	ReplaceProducts(products []domain.Product)
	Products() []domain.Product
	ProductByID(id int) (domain.Product, bool)

	ReplaceCategories(categories []domain.Category)
	Categories() []domain.Category

	ReplaceCarts(carts []domain.Cart)
	Carts() []domain.Cart
	CartByID(id int) (domain.Cart, bool)
	UpsertCart(cart domain.Cart)
}

// SessionStore defines the interface for durable session storage (port). The
// stored record is the composed session: both pieces have to survive the
// process boundary for a login to outlive the command that performed it.
type SessionStore interface {
	Read() (domain.Session, bool)
	Write(session domain.Session) error
	Clear() error
}

// Status is an aggregate snapshot of command activity, kept as a diagnostic
// mirror for UI convenience. Errors always reach the caller directly; this is
// never the primary error channel.
type Status struct {
	InFlight  int
	LastError string
}

// Store is the single source of truth for domain data and session state. It is
// the sole owner of remote-API side effects for the collections it manages:
// commands call the remote and mirror the result into the cache, queries read
// only from the cache.
type Store struct {
	repo     Repository
	cache    Cache
	sessions SessionStore

	mu       sync.Mutex
	username string
	inFlight int
	lastErr  string
}

// New creates a new store instance. All collections start empty and are
// populated only by explicit load commands. A valid session left behind by a
// previous process is rehydrated so authentication survives restarts.
func New(repo Repository, cache Cache, sessions SessionStore) *Store {
	s := &Store{
		repo:     repo,
		cache:    cache,
		sessions: sessions,
	}

	if sess, ok := sessions.Read(); ok && sess.Valid() {
		s.username = sess.Username
	}

	return s
}

// Status returns the current aggregate status snapshot.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		InFlight:  s.inFlight,
		LastError: s.lastErr,
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

// end closes out a tracked command. It runs on every exit path, success or
// failure; a failure overwrites the previous message, it never accumulates.
func (s *Store) end(err error) {
	s.mu.Lock()
	s.inFlight--
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}
