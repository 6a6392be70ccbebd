package commands

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/format/ascii"
	"github.com/luciano-vc/storeadmin/internal/log"
	"github.com/luciano-vc/storeadmin/internal/weburl"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

func Products(
	storeInstance *store.Store,
	guard *nav.Guard,
	formatter *ascii.Formatter,
	urls *weburl.Builder,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	cmd.AddCommand(
		productsList(storeInstance, guard, formatter),
		productsGet(storeInstance, guard, formatter),
		productsCategories(storeInstance, guard, formatter),
		productsOpen(guard, urls),
	)

	return cmd
}

func productsList(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally scoped to a category",
		RunE: func(_ *cobra.Command, _ []string) error {
			routeName := nav.RouteProducts
			if category != "" {
				routeName = "CategoryProducts"
			}
			if err := transition(guard, routeName); err != nil {
				return err
			}

			var products []domain.Product
			err := log.WithSpinner("Fetching products...", func() error {
				var err error
				if category != "" {
					products, err = storeInstance.LoadProductsByCategory(context.Background(), category)
				} else {
					products, err = storeInstance.LoadProducts(context.Background())
				}

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to load products: %w", err)
			}

			formatted, err := formatter.FormatProducts(products)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Limit to a single category")

	return cmd
}

func productsGet(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteProductInfo); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var product domain.Product
			err = log.WithSpinner("Fetching product...", func() error {
				var err error
				product, err = storeInstance.FetchProduct(context.Background(), id)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch product: %w", err)
			}

			formatted, err := formatter.FormatProduct(product)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}
}

func productsCategories(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := transition(guard, nav.RouteCategories); err != nil {
				return err
			}

			var categories []domain.Category
			err := log.WithSpinner("Fetching categories...", func() error {
				var err error
				categories, err = storeInstance.LoadCategories(context.Background())

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			fmt.Print(formatter.FormatCategories(categories))

			return nil
		},
	}
}

func productsOpen(guard *nav.Guard, urls *weburl.Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "open ID",
		Short: "Open a product page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteProductInfo); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			productURL, err := urls.ProductURL(id)
			if err != nil {
				return fmt.Errorf("failed to build product URL: %w", err)
			}

			if err := open.Start(productURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}

			return nil
		},
	}
}
