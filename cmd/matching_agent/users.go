package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/config"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage employee logins",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an active login for an employee",
	Long:  "Creates a login. The password is read from MATCHING_USER_PASSWORD so it never appears in shell history.",
	RunE:  runUsersCreate,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an employee's login",
	RunE:  runUsersDelete,
}

var usersEmployeeID int

func init() {
	for _, c := range []*cobra.Command{usersCreateCmd, usersDeleteCmd} {
		c.Flags().IntVar(&usersEmployeeID, "employee-id", 0, "Employee ID (required)")
		if err := c.MarkFlagRequired("employee-id"); err != nil {
			panic(fmt.Sprintf("failed to mark employee-id flag as required: %v", err))
		}
		usersCmd.AddCommand(c)
	}
	rootCmd.AddCommand(usersCmd)
}

func runUsersCreate(cmd *cobra.Command, _ []string) error {
	password := strings.TrimSpace(os.Getenv("MATCHING_USER_PASSWORD"))
	if password == "" {
		return errors.New("MATCHING_USER_PASSWORD must be set")
	}
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	hash, err := passwords.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	ctx := commandContext(cmd.Context(), "users create")
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.service.EmployeeProfile(ctx, usersEmployeeID); err != nil {
		return fmt.Errorf("cannot create login for employee %d: %w", usersEmployeeID, err)
	}
	if err := a.db.CreateUser(ctx, usersEmployeeID, hash); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created login for employee %d\n", usersEmployeeID)
	return err
}

func runUsersDelete(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd.Context(), "users delete")
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.db.DeleteUser(ctx, usersEmployeeID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted login for employee %d\n", usersEmployeeID)
	return err
}
