package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/types"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect service orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the service orders a hiring manager owns",
	Long:  "Lists decorated service orders owned by --employee-id, subject to the viewer allow-list. With --all every order is listed.",
	RunE:  runOrdersList,
}

var (
	ordersListEmployeeID int
	ordersListAll        bool
)

func init() {
	ordersListCmd.Flags().IntVar(&ordersListEmployeeID, "employee-id", 0, "Hiring manager employee ID")
	ordersListCmd.Flags().BoolVar(&ordersListAll, "all", false, "List every service order")
	ordersListCmd.MarkFlagsOneRequired("employee-id", "all")
	ordersListCmd.MarkFlagsMutuallyExclusive("employee-id", "all")

	ordersCmd.AddCommand(ordersListCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd.Context(), "orders list")
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	var orders []types.ServiceOrderView
	if ordersListAll {
		orders, err = a.service.ListAll(ctx)
	} else {
		orders, err = a.service.ListOwnedByManager(ctx, ordersListEmployeeID)
	}
	if err != nil {
		return fmt.Errorf("failed to list service orders: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintServiceOrders(orders)
	return nil
}
