package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the register API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(serverOptions())
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()

	return nil
}
