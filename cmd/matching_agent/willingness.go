package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/schemas"
	"github.com/jonathan/priority-matching/internal/types"
)

var willingnessCmd = &cobra.Command{
	Use:   "willingness",
	Short: "Manage willingness flags",
}

var willingnessApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a willingness batch file on behalf of an employee",
	Long:  "Validates a willingness batch JSON file against the batch schema and applies it as --employee-id.",
	RunE:  runWillingnessApply,
}

var (
	willingnessEmployeeID int
	willingnessFile       string
	willingnessDryRun     bool
)

func init() {
	willingnessApplyCmd.Flags().IntVar(&willingnessEmployeeID, "employee-id", 0, "Employee applying the batch (required)")
	willingnessApplyCmd.Flags().StringVarP(&willingnessFile, "file", "f", "", "Path to willingness batch JSON (required)")
	willingnessApplyCmd.Flags().BoolVar(&willingnessDryRun, "dry-run", false, "Validate the file without writing")

	for _, name := range []string{"employee-id", "file"} {
		if err := willingnessApplyCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	willingnessCmd.AddCommand(willingnessApplyCmd)
	rootCmd.AddCommand(willingnessCmd)
}

// readBatchFile loads and validates a willingness batch.
func readBatchFile(path string) (*types.WillingnessBatch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	if err := schemas.ValidateWillingnessBatch(content); err != nil {
		return nil, fmt.Errorf("batch file %s is invalid: %w", path, err)
	}

	var batch types.WillingnessBatch
	if err := json.Unmarshal(content, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch: %w", err)
	}
	if err := batch.Validate(); err != nil {
		return nil, fmt.Errorf("batch file %s is invalid: %w", path, err)
	}
	return &batch, nil
}

func runWillingnessApply(cmd *cobra.Command, _ []string) error {
	batch, err := readBatchFile(willingnessFile)
	if err != nil {
		return err
	}
	if willingnessDryRun {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Batch is valid: %d items\n", len(batch.Items))
		return nil
	}

	ctx := commandContext(cmd.Context(), "willingness apply")
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.service.ApplyUpdates(ctx, willingnessEmployeeID, batch.Items)
	if err != nil {
		return fmt.Errorf("failed to apply willingness batch: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintWillingnessResult(result)
	return nil
}
