package advisor

import (
	"context"
	"time"

	"github.com/finovahq/finova/internal/domain"
)

// Response is one generated advice turn with its classification signals.
type Response struct {
	Text      string
	Intent    domain.Intent
	Sentiment domain.Sentiment
}

// AdviceService generates a personalized advice response for one user turn.
type AdviceService interface {
	Generate(ctx context.Context, sess *Session, text string) Response
}

// HealthService computes the composite financial health score.
type HealthService interface {
	// Score derives a fresh result from the profile and optional ledger.
	// A nil or empty ledger falls back to profile.MonthlyExpenses wherever
	// a ledger total would be used. Results are never cached.
	Score(profile *domain.UserProfile, ledger *domain.ExpenseLedger) *domain.HealthScoreResult
}

// ExpenseAnalysis summarizes a ledger's spending pattern.
type ExpenseAnalysis struct {
	Total           float64
	Highest         string
	Lowest          string
	Percentages     map[string]float64 // category -> share of total, 0..100
	Recommendations []string
}

// ExpenseService analyzes spending patterns from the session ledger.
type ExpenseService interface {
	// Analyze returns a zero-value analysis for an empty ledger, not an error.
	Analyze(ledger *domain.ExpenseLedger) *ExpenseAnalysis
}

// ReportService renders the monthly financial report.
type ReportService interface {
	// Generate is deterministic for fixed inputs and now.
	Generate(profile *domain.UserProfile, ledger *domain.ExpenseLedger, now time.Time) string
}
