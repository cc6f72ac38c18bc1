package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/config"
	"github.com/jonathan/priority-matching/internal/server"
	"github.com/jonathan/priority-matching/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes service orders, priority matching lists and willingness updates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd.Context(), "serve")

	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:      port,
		Service:   a.service,
		Users:     a.db,
		Health:    a.db,
		JWT:       server.NewJWTService(jwtConfig),
		Passwords: passwords,
		RateLimit: ratelimit.NewConfig(cfg.RateLimit),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
