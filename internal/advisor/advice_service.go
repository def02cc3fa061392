// Package advisor holds the advice decision engine: the per-intent rule
// table, the financial health scorer, the expense analyzer, and the monthly
// report generator. All services are pure functions of the session state
// they are handed; nothing is cached between calls.
package advisor

import (
	"context"
	"fmt"

	"github.com/finovahq/finova/internal/domain"
	"github.com/finovahq/finova/internal/intelligence"
)

const onboardingMessage = `Welcome to FINOVA - Your AI Financial Advisor! 🎉

I'm here to help you make smarter financial decisions and achieve your financial goals. To provide you with personalized advice, I need to learn about your financial situation first.

Please complete your profile, and then I can help you with:
- 📊 Budget planning and expense tracking
- 💰 Investment strategies
- 🏦 Savings optimization
- 💳 Debt management
- 📈 Financial goal setting

Once your profile is set up, ask me anything about your finances!`

type adviceService struct {
	sentiment intelligence.SentimentService
	health    HealthService
}

// NewAdviceService creates the rule-driven advice engine.
func NewAdviceService(sentiment intelligence.SentimentService, health HealthService) AdviceService {
	return &adviceService{sentiment: sentiment, health: health}
}

func (s *adviceService) Generate(ctx context.Context, sess *Session, text string) Response {
	clean := domain.SanitizeInput(text)

	sentiment := s.sentiment.Analyze(ctx, clean)
	intent := intelligence.ClassifyIntent(clean)

	var out string
	if sess.Profile == nil {
		// Not an error state: a missing profile short-circuits every
		// intent to the onboarding message.
		out = onboardingMessage
	} else {
		base := s.adviceForIntent(intent, sess.Profile)
		out = fmt.Sprintf("%s\n\n💡 **Quick Tip:** %s",
			personalize(base, sess.Profile, sentiment), contextualTip(intent))
	}

	sess.AppendTurn(domain.RoleUser, clean)
	sess.AppendTurn(domain.RoleAssistant, out)

	return Response{Text: out, Intent: intent, Sentiment: sentiment}
}

// adviceForIntent dispatches to the intent's rule function. The switch is
// exhaustive over the closed Intent set; general doubles as the fallback.
func (s *adviceService) adviceForIntent(intent domain.Intent, p *domain.UserProfile) string {
	switch intent {
	case domain.IntentBudgeting:
		return budgetingAdvice(p)
	case domain.IntentInvestment:
		return investmentAdvice(p)
	case domain.IntentSavings:
		return savingsAdvice(p)
	case domain.IntentDebt:
		return debtAdvice()
	case domain.IntentTax:
		return taxAdvice(p)
	case domain.IntentInsurance:
		return insuranceAdvice(p)
	case domain.IntentRetirement:
		return retirementAdvice(p)
	case domain.IntentGeneral:
		return s.generalAdvice(p)
	default:
		return s.generalAdvice(p)
	}
}
