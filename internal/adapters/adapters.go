package adapters

import (
	"fmt"
	"net/http"

	"github.com/luciano-vc/storeadmin/internal/adapters/primary/cli"
	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/cache"
	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/fakestore"
	"github.com/luciano-vc/storeadmin/internal/adapters/secondary/sessionfile"
	"github.com/luciano-vc/storeadmin/internal/config"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/format/ascii"
	"github.com/luciano-vc/storeadmin/internal/weburl"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var PrimaryPackage = do.Package(
	do.Lazy[*cobra.Command](cli.Command),
)

var SecondaryPackage = do.Package(
	do.Lazy[store.Repository](NewRepository),
	do.Lazy[store.Cache](NewCache),
	do.Lazy[store.SessionStore](NewSessionStore),
	do.Lazy[*ascii.Formatter](NewFormatter),
	do.Lazy[*weburl.Builder](NewURLBuilder),
)

// NewRepository creates the remote storefront API repository.
func NewRepository(i do.Injector) (store.Repository, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return fakestore.NewRepository(http.DefaultClient, cfg.BaseURL), nil
}

// NewCache creates the in-memory cache instance.
func NewCache(_ do.Injector) (store.Cache, error) {
	return cache.NewInMemoryCache(), nil
}

// NewSessionStore creates the file-backed durable session storage.
func NewSessionStore(i do.Injector) (store.SessionStore, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return sessionfile.New(cfg.SessionFile), nil
}

// NewFormatter creates the ASCII output formatter.
func NewFormatter(_ do.Injector) (*ascii.Formatter, error) {
	return ascii.NewFormatter(), nil
}

// NewURLBuilder creates the web URL builder from the configured template.
func NewURLBuilder(i do.Injector) (*weburl.Builder, error) {
	cfg := do.MustInvoke[*config.Config](i)

	builder, err := weburl.NewBuilder(cfg.ProductURLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to create URL builder: %w", err)
	}

	return builder, nil
}
