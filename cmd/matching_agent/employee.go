package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/observability"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Inspect employees",
}

var employeeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show an employee and their supervisor chain",
	RunE:  runEmployeeShow,
}

var employeeShowID int

func init() {
	employeeShowCmd.Flags().IntVar(&employeeShowID, "employee-id", 0, "Employee ID (required)")
	if err := employeeShowCmd.MarkFlagRequired("employee-id"); err != nil {
		panic(fmt.Sprintf("failed to mark employee-id flag as required: %v", err))
	}

	employeeCmd.AddCommand(employeeShowCmd)
	rootCmd.AddCommand(employeeCmd)
}

func runEmployeeShow(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd.Context(), "employee show")
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	profile, err := a.service.EmployeeProfile(ctx, employeeShowID)
	if err != nil {
		return fmt.Errorf("failed to load employee %d: %w", employeeShowID, err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintEmployeeProfile(profile)
	return nil
}
