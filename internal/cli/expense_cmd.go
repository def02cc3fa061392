package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
)

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Track and analyze session expenses",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <category> <amount>",
			Short: "Add an amount to a category's running total",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExpenseAdd(cmd, app, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show per-category totals and shares",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExpenseList(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "analyze",
			Short: "Analyze the spending pattern",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExpenseAnalyze(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Reset the expense ledger",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Ledger.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clearing expenses: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Expenses cleared.")
				return nil
			},
		},
	)

	return cmd
}

func runExpenseAdd(cmd *cobra.Command, app *App, category, amountStr string) error {
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive number, got %q", amountStr)
	}

	if err := app.Ledger.Add(cmd.Context(), category, amount); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", formatter.Currency(amount), category)
	return nil
}

func runExpenseList(cmd *cobra.Command, app *App) error {
	ledger, err := app.Ledger.Ledger(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	out := cmd.OutOrStdout()
	if ledger.Len() == 0 {
		fmt.Fprintln(out, "No expenses tracked yet.")
		return nil
	}

	total := ledger.Total()
	for _, cat := range ledger.Categories() {
		amt := ledger.Amount(cat)
		fmt.Fprintf(out, "%-16s %12s  (%.1f%%)\n", cat, formatter.Currency(amt), amt/total*100)
	}
	fmt.Fprintf(out, "%-16s %12s\n", formatter.StyleBold.Render("Total"), formatter.Currency(total))
	return nil
}

func runExpenseAnalyze(cmd *cobra.Command, app *App) error {
	ledger, err := app.Ledger.Ledger(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	analysis := app.Expenses.Analyze(ledger)
	out := cmd.OutOrStdout()
	if analysis.Total == 0 {
		fmt.Fprintln(out, "No expenses to analyze.")
		return nil
	}

	fmt.Fprintf(out, "Total:   %s\n", formatter.Currency(analysis.Total))
	fmt.Fprintf(out, "Highest: %s\n", analysis.Highest)
	fmt.Fprintf(out, "Lowest:  %s\n", analysis.Lowest)
	for _, rec := range analysis.Recommendations {
		fmt.Fprintln(out, formatter.StyleYellow.Render("! "+rec))
	}
	return nil
}
