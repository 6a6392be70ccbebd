package commands

import (
	"context"
	"fmt"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/luciano-vc/storeadmin/internal/core/nav"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/format/ascii"
	"github.com/luciano-vc/storeadmin/internal/log"
	"github.com/spf13/cobra"
)

func Users(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage storefront users",
	}

	cmd.AddCommand(
		usersList(storeInstance, guard, formatter),
		usersGet(storeInstance, guard, formatter),
		usersCreate(storeInstance, guard, formatter),
		usersUpdate(storeInstance, guard, formatter),
		usersDelete(storeInstance, guard),
	)

	return cmd
}

func usersList(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := transition(guard, nav.RouteUsers); err != nil {
				return err
			}

			var users []domain.User
			err := log.WithSpinner("Fetching users...", func() error {
				var err error
				users, err = storeInstance.LoadUsers(context.Background())

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to load users: %w", err)
			}

			return printUsers(formatter, users)
		},
	}
}

func usersGet(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteUserDetails); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var user domain.User
			err = log.WithSpinner("Fetching user...", func() error {
				var err error
				user, err = storeInstance.FetchUser(context.Background(), id)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch user: %w", err)
			}

			formatted, err := formatter.FormatUser(user)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}
}

func usersCreate(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	var user domain.User

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := transition(guard, nav.RouteUserCreate); err != nil {
				return err
			}

			var created domain.User
			err := log.WithSpinner("Creating user...", func() error {
				var err error
				created, err = storeInstance.CreateUser(context.Background(), user)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			formatted, err := formatter.FormatUser(created)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}

	addUserFlags(cmd, &user)
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func usersUpdate(storeInstance *store.Store, guard *nav.Guard, formatter *ascii.Formatter) *cobra.Command {
	var user domain.User

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteUserEdit); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var updated domain.User
			err = log.WithSpinner("Updating user...", func() error {
				var err error
				updated, err = storeInstance.UpdateUser(context.Background(), id, user)

				return err
			})
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			formatted, err := formatter.FormatUser(updated)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Print(formatted)

			return nil
		},
	}

	addUserFlags(cmd, &user)

	return cmd
}

func usersDelete(storeInstance *store.Store, guard *nav.Guard) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := transition(guard, nav.RouteUsers); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			err = log.WithSpinner("Deleting user...", func() error {
				return storeInstance.DeleteUser(context.Background(), id)
			})
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("Deleted user %d\n", id)

			return nil
		},
	}
}

func addUserFlags(cmd *cobra.Command, user *domain.User) {
	cmd.Flags().StringVar(&user.Username, "username", "", "Username")
	cmd.Flags().StringVar(&user.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&user.Password, "password", "", "Password")
	cmd.Flags().StringVar(&user.Name.First, "first-name", "", "First name")
	cmd.Flags().StringVar(&user.Name.Last, "last-name", "", "Last name")
	cmd.Flags().StringVar(&user.Phone, "phone", "", "Phone number")
}

func printUsers(formatter *ascii.Formatter, users []domain.User) error {
	formatted, err := formatter.FormatUsers(users)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(formatted)

	return nil
}
