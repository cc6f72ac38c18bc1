package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/config"
	"github.com/jonathan/priority-matching/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Bearer token utilities",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a bearer token for an employee (development only)",
	RunE:  runTokenIssue,
}

var tokenEmployeeID int

func init() {
	tokenIssueCmd.Flags().IntVar(&tokenEmployeeID, "employee-id", 0, "Employee ID (required)")
	if err := tokenIssueCmd.MarkFlagRequired("employee-id"); err != nil {
		panic(fmt.Sprintf("failed to mark employee-id flag as required: %v", err))
	}

	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runTokenIssue(cmd *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenEmployeeID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
