package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
	"github.com/luciano-vc/storeadmin/internal/core/store"
	"github.com/luciano-vc/storeadmin/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func Login(storeInstance *store.Store) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the storefront",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLogin(storeInstance, username, password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runLogin(storeInstance *store.Store, username, password string) error {
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}

	var session domain.Session
	err := log.WithSpinner("Logging in...", func() error {
		var err error
		session, err = storeInstance.Login(context.Background(), domain.Credentials{
			Username: username,
			Password: password,
		})

		return err
	})
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	fmt.Printf("Logged in as %s\n", session.Username)

	return nil
}

func Logout(storeInstance *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := storeInstance.Logout(); err != nil {
				return fmt.Errorf("failed to logout: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

func Whoami(storeInstance *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			username, ok := storeInstance.CurrentUser()
			if !ok || !storeInstance.IsAuthenticated() {
				fmt.Println("Not logged in")

				return nil
			}

			fmt.Printf("Logged in as %s\n", username)

			return nil
		},
	}
}
