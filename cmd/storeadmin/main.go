package main

import (
	"log"
	"os"

	"github.com/luciano-vc/storeadmin/internal/adapters"
	"github.com/luciano-vc/storeadmin/internal/config"
	"github.com/luciano-vc/storeadmin/internal/core"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func main() {
	// Bare messages on stderr; timestamps are noise for a CLI.
	log.SetFlags(0)

	injector := do.New(
		config.Package,
		core.Package,
		adapters.SecondaryPackage,
		adapters.PrimaryPackage,
	)

	root, err := do.Invoke[*cobra.Command](injector)
	if err != nil {
		log.Fatalf("failed to assemble storeadmin: %v", err)
	}

	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}
