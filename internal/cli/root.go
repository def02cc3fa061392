// Package cli wires the advice engine into a cobra command tree with a
// huh profile form and a bubbletea chat view.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/advisor"
	"github.com/finovahq/finova/internal/repository"
)

// App holds references to all service and repository interfaces used by
// CLI commands.
type App struct {
	Advice        advisor.AdviceService
	Health        advisor.HealthService
	Expenses      advisor.ExpenseService
	Reports       advisor.ReportService
	Profiles      repository.ProfileRepo
	Ledger        repository.ExpenseRepo
	Conversations repository.ConversationRepo
}

// NewRootCmd creates the top-level "finova" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "finova",
		Short: "Rule-driven personal financial advisor",
	}

	root.AddCommand(
		newProfileCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newExpenseCmd(app),
		newScoreCmd(app),
		newReportCmd(app),
		newCalcCmd(app),
	)

	return root
}

// loadSession builds a per-invocation session from the store. A missing
// profile is not an error: the session starts without one and the advice
// engine answers with onboarding guidance.
func (a *App) loadSession(ctx context.Context) (*advisor.Session, error) {
	sess := advisor.NewSession()

	profile, err := a.Profiles.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	sess.Profile = profile

	ledger, err := a.Ledger.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	sess.Ledger = ledger

	return sess, nil
}
