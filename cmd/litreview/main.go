package main

import (
	"os"

	"github.com/spf13/cobra"

	"litreview/internal/interfaces/cli/migrate"
	"litreview/internal/interfaces/cli/seed"
	"litreview/internal/interfaces/cli/server"
	"litreview/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "litreview",
		Short:   "LITReview - book and article review service",
		Long:    `LITReview lets readers request reviews through tickets, review each other's tickets and follow other readers.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
