package advisor

import (
	"strings"

	"github.com/finovahq/finova/internal/domain"
)

// personalize prepends the sentiment empathy line (POSITIVE/NEGATIVE only)
// and the user-type framing line to the base advice.
func personalize(base string, p *domain.UserProfile, sentiment domain.Sentiment) string {
	var b strings.Builder

	switch sentiment {
	case domain.SentimentNegative:
		b.WriteString("I understand you might be feeling stressed about your finances. Take it one step at a time - small improvements add up! 💪\n\n")
	case domain.SentimentPositive:
		b.WriteString("Great to see your positive attitude about finances! Let's build on that momentum. 🚀\n\n")
	}

	switch p.UserType {
	case domain.UserStudent:
		b.WriteString("As a student, focus on building good financial habits now - they'll serve you well throughout your career.\n\n")
	case domain.UserProfessional:
		b.WriteString("With your professional status, you're in a great position to accelerate your financial goals.\n\n")
	case domain.UserRetiree:
		b.WriteString("In retirement, focus on preservation and sustainable income strategies.\n\n")
	}

	b.WriteString(base)
	return b.String()
}

// contextualTips holds one fixed closing tip per intent.
var contextualTips = map[domain.Intent]string{
	domain.IntentBudgeting:  "Try the 24-hour rule: wait a day before making non-essential purchases over $100.",
	domain.IntentInvestment: "Dollar-cost averaging reduces the impact of market volatility - invest the same amount regularly.",
	domain.IntentSavings:    "Automate your savings by setting up automatic transfers to your savings account on payday.",
	domain.IntentDebt:       "Consider the debt avalanche method: pay minimums on all debts, then attack the highest interest rate first.",
	domain.IntentTax:        "Keep receipts and documents organized throughout the year - don't wait until tax season!",
	domain.IntentInsurance:  "Review your insurance coverage annually, especially after major life events.",
	domain.IntentRetirement: "Every year you delay retirement saving, you need to save roughly twice as much to catch up.",
	domain.IntentGeneral:    "Track your net worth monthly - it's the best single metric of financial progress.",
}

func contextualTip(intent domain.Intent) string {
	if tip, ok := contextualTips[intent]; ok {
		return tip
	}
	return contextualTips[domain.IntentGeneral]
}
