package commands

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/log"
	"github.com/spf13/cobra"
)

func Refresh(storeInstance *store.Store, guard *nav.Guard) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload every collection from the remote",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := transition(guard, nav.RouteHome); err != nil {
				return err
			}

			err := log.WithSpinner("Refreshing collections...", func() error {
				return storeInstance.Refresh(context.Background())
			})
			if err != nil {
				return fmt.Errorf("failed to refresh: %w", err)
			}

			fmt.Printf("Refreshed: %d users, %d products, %d categories, %d carts\n",
				len(storeInstance.Users()),
				len(storeInstance.Products()),
				len(storeInstance.Categories()),
				len(storeInstance.Carts()))

			return nil
		},
	}
}
