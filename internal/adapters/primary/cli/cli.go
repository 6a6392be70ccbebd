package cli

import (
	"github.com/luciano-vc/storeadmin/internal/adapters/primary/cli/commands"
	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/format/ascii"
	"github.com/luciano-vc/storeadmin/internal/weburl"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Command creates and returns the root CLI command.
func Command(i do.Injector) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:  "storeadmin",
		Long: `A CLI tool for administering a remote storefront.`,
	}

	storeInstance := do.MustInvoke[*store.Store](i)
	guard := do.MustInvoke[*nav.Guard](i)
	formatter := do.MustInvoke[*ascii.Formatter](i)
	urls := do.MustInvoke[*weburl.Builder](i)

	cmd.AddCommand(
		commands.Login(storeInstance),
		commands.Logout(storeInstance),
		commands.Whoami(storeInstance),
		commands.Users(storeInstance, guard, formatter),
		commands.Products(storeInstance, guard, formatter, urls),
		commands.Carts(storeInstance, guard, formatter),
		commands.Refresh(storeInstance, guard),
	)

	return cmd, nil
}
