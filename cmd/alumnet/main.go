package main

import (
	"os"

	"github.com/spf13/cobra"

	"alumnet/internal/interfaces/cli/migrate"
	"alumnet/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "alumnet",
		Short: "AlumNet support ticket service",
		Long:  `AlumNet's alumni support ticket service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
