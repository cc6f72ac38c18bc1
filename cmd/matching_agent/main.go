// Package main provides the matching_agent CLI: the HTTP API server and
// operator commands for service orders and willingness updates.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/config"
	"github.com/jonathan/priority-matching/internal/observability"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "matching_agent",
	Short:         "Service order access and priority matching",
	Long:          "matching_agent serves the service order and priority matching API and provides operator commands against the same database.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		l, err := observability.NewLogger(loaded.LogLevel, loaded.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		return nil
	},
}

func main() {
	// Load .env files if they exist
	if _, err := config.LoadEnv(".env", ".env.local"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
