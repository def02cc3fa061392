package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
)

func newScoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Compute your financial health score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, app)
		},
	}
}

func runScore(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()

	profile, err := app.Profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	ledger, err := app.Ledger.Ledger(ctx)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	result := app.Health.Score(profile, ledger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Financial Health Score: %.1f/100 (%s)\n",
		result.Score, formatter.GradeStyle(result.Grade).Render("Grade "+result.Grade))
	for _, f := range result.Feedback {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the monthly financial report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := app.Profiles.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			ledger, err := app.Ledger.Ledger(ctx)
			if err != nil {
				return fmt.Errorf("loading expenses: %w", err)
			}

			report := app.Reports.Generate(profile, ledger, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderAdvice(report))
			return nil
		},
	}
}
