// Package cmd wires the CLI commands over the session, API, and navigation
// layers.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumera",
	Short: "Administration client for the Lumera ERP platform",
	Long: `lumera is the terminal client for the Lumera ERP platform.
It manages your session and company context locally and talks to the
platform's REST API for everything else: employees, clients, products,
inventory, users, roles, permissions, and custom fields.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Platform API base URL (overrides config)")
	rootCmd.PersistentFlags().Bool("no-input", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}
