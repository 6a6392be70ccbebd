package core

import (
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	do "github.com/samber/do/v2"
)

var Package = do.Package(
	do.Lazy[*store.Store](NewStore),
	do.Lazy[*nav.Guard](NewGuard),
)

// NewStore creates a new Store instance with dependencies from the injector.
func NewStore(i do.Injector) (*store.Store, error) {
	repo := do.MustInvoke[store.Repository](i)
	cache := do.MustInvoke[store.Cache](i)
	sessions := do.MustInvoke[store.SessionStore](i)

	return store.New(repo, cache, sessions), nil
}

// NewGuard creates the navigation guard backed by the store's session query.
func NewGuard(i do.Injector) (*nav.Guard, error) {
	s := do.MustInvoke[*store.Store](i)

	login, ok := nav.Find(nav.Routes(), nav.RouteLogin)
	if !ok {
		return nil, fmt.Errorf("route table has no %s route", nav.RouteLogin)
	}

	return nav.NewGuard(s, login), nil
}
