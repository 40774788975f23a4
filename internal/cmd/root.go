// Package cmd implements the pos command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Point of sale for a small repair and retail shop",
	Long: `pos runs the register: catalog, cart, checkout, sales history,
dashboard and backups behind a JSON API.

Without a subcommand it starts the API server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
