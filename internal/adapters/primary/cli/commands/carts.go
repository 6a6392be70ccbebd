package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/format/ascii"
	"github.com/luciano-vc/storeadmin/internal/log"
	"github.com/spf13/cobra"
)

func Carts(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carts",
		Short: "Manage shopping carts",
	}

	cmd.AddCommand(
		cartsList(storeInstance, guard, formatter),
		cartsGet(storeInstance, guard, formatter),
		cartsUpdate(storeInstance, guard, formatter),
		cartsDelete(storeInstance, guard),
	)

	return cmd
}

func cartsList(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all carts",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := transition(guard, nav.RouteCart); err != nil {
				return err
			}

			var carts []domain.Cart
			err := log.WithSpinner("Fetching carts...", func() error {
				var err error
				carts, err = storeInstance.LoadCarts(context.Background())

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to load carts: %w", err)
			}

			formatted, err := formatter.FormatCarts(carts)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}
}

func cartsGet(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteCartDetails); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var cart domain.Cart
			err = log.WithSpinner("Fetching cart...", func() error {
				var err error
				cart, err = storeInstance.FetchCart(context.Background(), id)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch cart: %w", err)
			}

			formatted, err := formatter.FormatCart(cart)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}
}

func cartsUpdate(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	var (
		userID int
		date   string
		items  []string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteCartEdit); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			cartItems, err := parseCartItems(items)
			if err != nil {
				return fmt.Errorf("failed to parse items: %w", err)
			}

			cart := domain.Cart{
				ID:       id,
				UserID:   userID,
				Date:     date,
				Products: cartItems,
			}

			var updated domain.Cart
			err = log.WithSpinner("Updating cart...", func() error {
				var err error
				updated, err = storeInstance.UpdateCart(context.Background(), cart)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to update cart: %w", err)
			}

			formatted, err := formatter.FormatCart(updated)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "Owning user id")
	cmd.Flags().StringVar(&date, "date", "", "Cart date")
	cmd.Flags().StringSliceVar(&items, "item", nil, "Cart item as PRODUCT_ID:QUANTITY (repeatable)")

	return cmd
}

// parseCartItems converts PRODUCT_ID:QUANTITY specs into cart items.
func parseCartItems(specs []string) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0, len(specs))
	for _, spec := range specs {
		idPart, qtyPart, found := strings.Cut(spec, ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q: expected PRODUCT_ID:QUANTITY", spec)
		}

		productID, err := strconv.Atoi(idPart)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: expected PRODUCT_ID:QUANTITY", spec)
		}

		quantity, err := strconv.Atoi(qtyPart)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: expected PRODUCT_ID:QUANTITY", spec)
		}

		if productID <= 0 || quantity <= 0 {
			return nil, fmt.Errorf("invalid item %q: id and quantity must be positive", spec)
		}

		items = append(items, domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	return items, nil
}

func cartsDelete(storeInstance *store.Store, guard *nav.Guard) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteCart); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			err = log.WithSpinner("Deleting cart...", func() error {
				return storeInstance.DeleteCart(context.Background(), id)
			})
			if err != nil {
				return fmt.Errorf("failed to delete cart: %w", err)
			}

			fmt.Printf("Deleted cart %d\n", id)

			return nil
		},
	}
}
