// Package observability provides logging setup and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/priority-matching/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// PrintEmployeeProfile outputs an employee record and their supervisor chain.
func (p *Printer) PrintEmployeeProfile(profile *types.EmployeeProfile) {
	if profile == nil || profile.Employee == nil {
		return
	}
	e := profile.Employee

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(e.FullName())))
	sb.WriteString(fmt.Sprintf("Grade:     %s\n", orDash(e.Grade)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(e.Location)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(e.Email)))
	sb.WriteString(fmt.Sprintf("Supervisor: %s\n", intOrDash(e.SupervisorID)))

	if len(profile.Supervisors) > 0 {
		sb.WriteString("\nReporting chain:\n")
		for _, link := range profile.Supervisors {
			sb.WriteString(fmt.Sprintf("  ↑ #%d %s\n", link.EmployeeID, link.Name))
		}
	}
	if profile.CycleDetected {
		sb.WriteString("  ⚠ supervisor chain loops\n")
	}

	p.printBox(fmt.Sprintf("EMPLOYEE %d", e.ID), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintServiceOrders outputs decorated service orders.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintServiceOrders(orders []types.ServiceOrderView) {
	if len(orders) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO SERVICE ORDERS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	count := min(len(orders), maxItemsToShow)
	for i := 0; i < count; i++ {
		o := orders[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", o.ID, o.AccountName, orDash(o.State)))
		sb.WriteString(fmt.Sprintf("    Role: %s  Grade: %s\n", orDash(o.Role), orDash(o.Grade)))
		sb.WriteString(fmt.Sprintf("    Manager: %s\n", o.HiringManagerName))
		sb.WriteString(fmt.Sprintf("    Assigned: %s\n", o.AssignedResourceName))
		if o.ShowInterviewScheduleLink {
			sb.WriteString(fmt.Sprintf("    ↪ %s\n", o.InterviewScheduleLink))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(orders) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more orders", len(orders)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("SERVICE ORDERS (%d)", len(orders)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWillingnessResult outputs the outcome of a willingness batch.
func (p *Printer) PrintWillingnessResult(result *types.WillingnessResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.UpdatedCount == 0 {
		sb.WriteString(types.NoRecordsUpdatedMessage + "\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d of %d service orders processed\n", result.UpdatedCount, result.Submitted))
		sb.WriteString(fmt.Sprintf("%d willing, %d not willing\n", result.WillingCount, result.NotWillingCount))
	}
	for _, o := range result.Outcomes {
		mark := "✓"
		if !o.Updated {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("  %s #%d willing=%t\n", mark, o.MatchingListID, o.IsWilling))
	}

	p.printBox("WILLINGNESS UPDATE", strings.TrimSuffix(sb.String(), "\n"))
}
