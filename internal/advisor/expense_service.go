package advisor

import (
	"fmt"
	"strings"

	"github.com/finovahq/finova/internal/domain"
)

type expenseService struct{}

// NewExpenseService creates the spending-pattern analyzer.
func NewExpenseService() ExpenseService {
	return expenseService{}
}

func (expenseService) Analyze(ledger *domain.ExpenseLedger) *ExpenseAnalysis {
	analysis := &ExpenseAnalysis{Percentages: make(map[string]float64)}
	if ledger == nil || ledger.Len() == 0 {
		return analysis
	}

	total := ledger.Total()
	analysis.Total = total

	// Insertion order keeps highest/lowest deterministic on ties.
	categories := ledger.Categories()
	analysis.Highest = categories[0]
	analysis.Lowest = categories[0]
	for _, cat := range categories {
		amt := ledger.Amount(cat)
		analysis.Percentages[cat] = amt / total * 100
		if amt > ledger.Amount(analysis.Highest) {
			analysis.Highest = cat
		}
		if amt < ledger.Amount(analysis.Lowest) {
			analysis.Lowest = cat
		}
	}

	for _, cat := range categories {
		pct := analysis.Percentages[cat]
		switch lower := strings.ToLower(cat); {
		case (lower == "entertainment" || lower == "shopping") && pct > 20:
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("Consider reducing %s spending (currently %.1f%%)", cat, pct))
		case lower == "housing" && pct > 30:
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("Housing costs are high (%.1f%%). Consider options to reduce.", pct))
		}
	}

	return analysis
}
