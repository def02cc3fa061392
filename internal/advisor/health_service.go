package advisor

import (
	"fmt"
	"math"

	"github.com/finovahq/finova/internal/domain"
)

type healthService struct{}

// NewHealthService creates the composite health scorer.
func NewHealthService() HealthService {
	return healthService{}
}

// Score builds the 0-100 score from four independently capped 25-point
// components: emergency-fund coverage, savings rate, budget management,
// and goal setting.
func (healthService) Score(profile *domain.UserProfile, ledger *domain.ExpenseLedger) *domain.HealthScoreResult {
	var score float64
	var feedback []string

	monthlyIncome := profile.MonthlyIncome()

	// Ledger totals take precedence over the profile's estimate when the
	// session has tracked expenses.
	monthlyExpenses := profile.MonthlyExpenses
	if ledger != nil && ledger.Len() > 0 {
		monthlyExpenses = ledger.Total()
	}

	// Emergency fund coverage (25). Zero expenses make coverage undefined;
	// the component is skipped entirely: no points, no feedback.
	if monthlyExpenses > 0 {
		emergencyMonths := profile.SavingsAmount / monthlyExpenses
		score += math.Min(emergencyMonths/6*25, 25)

		switch {
		case emergencyMonths >= 6:
			feedback = append(feedback, "✅ Excellent emergency fund coverage")
		case emergencyMonths >= 3:
			feedback = append(feedback, "⚠️ Good emergency fund, consider building to 6 months")
		default:
			feedback = append(feedback, "❌ Build your emergency fund (aim for 6 months of expenses)")
		}
	}

	// Savings rate (25), floored at 0 so a deficit never subtracts.
	var savingsRate float64
	if monthlyIncome > 0 {
		savingsRate = (monthlyIncome - monthlyExpenses) / monthlyIncome
	}
	score += math.Max(math.Min(savingsRate/0.20*25, 25), 0)

	switch {
	case savingsRate >= 0.20:
		feedback = append(feedback, "✅ Great savings rate!")
	case savingsRate >= 0.10:
		feedback = append(feedback, "⚠️ Good savings rate, try to increase if possible")
	default:
		feedback = append(feedback, "❌ Focus on increasing your savings rate")
	}

	// Budget management (25): full marks at or under 80% of income, linear
	// penalty down to 0 once expenses reach 105%.
	expenseRatio := 1.0
	if monthlyIncome > 0 {
		expenseRatio = monthlyExpenses / monthlyIncome
	}
	if expenseRatio <= 0.8 {
		score += 25
	} else {
		score += math.Max(25-(expenseRatio-0.8)*100, 0)
	}

	// Goal setting (25): 5 points per goal, capped.
	if n := len(profile.FinancialGoals); n > 0 {
		score += math.Min(float64(n)*5, 25)
		feedback = append(feedback, fmt.Sprintf("✅ You have %d financial goals defined", n))
	} else {
		feedback = append(feedback, "❌ Consider setting specific financial goals")
	}

	// Rounding is display-only; the grade comes from the exact score so it
	// can never be promoted across a band boundary.
	return &domain.HealthScoreResult{
		Score:    math.Round(score*10) / 10,
		Grade:    grade(score),
		Feedback: feedback,
	}
}

func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
