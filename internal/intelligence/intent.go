// Package intelligence turns free-text questions into the structured
// intent and sentiment signals the advice rules consume. Classification is
// deliberately keyword-based; the only remote dependency is the optional
// sentiment tier, which always degrades to a local fallback.
package intelligence

import (
	"strings"

	"github.com/finovahq/finova/internal/domain"
)

// intentKeywords maps each classifiable intent to the phrases that vote for
// it. Matching is plain substring containment on the lower-cased input, not
// word-boundary matching: "spending" matches "spend".
var intentKeywords = map[domain.Intent][]string{
	domain.IntentBudgeting: {
		"budget", "expense", "spend", "cost", "money management",
		"track spending", "monthly budget", "expense tracking",
	},
	domain.IntentInvestment: {
		"invest", "stock", "bond", "portfolio", "return", "market",
		"mutual fund", "401k", "retirement account", "dividend",
	},
	domain.IntentSavings: {
		"save", "saving", "emergency fund", "deposit", "savings account",
		"high yield", "cd", "certificate of deposit",
	},
	domain.IntentDebt: {
		"debt", "loan", "credit", "payment", "owe", "mortgage",
		"student loan", "credit card", "refinance",
	},
	domain.IntentTax: {
		"tax", "deduction", "filing", "refund", "irs",
		"tax return", "withholding", "tax planning",
	},
	domain.IntentInsurance: {
		"insurance", "health insurance", "life insurance",
		"auto insurance", "coverage", "premium",
	},
	domain.IntentRetirement: {
		"retirement", "retire", "pension", "401k", "ira",
		"retirement planning", "social security",
	},
}

// ClassifyIntent scores the input against every intent's keyword set and
// returns the intent with the most matches. Ties resolve to the first
// intent in domain.ClassifiableIntents order; no matches at all resolve to
// IntentGeneral.
func ClassifyIntent(text string) domain.Intent {
	lower := strings.ToLower(text)

	best := domain.IntentGeneral
	bestScore := 0
	for _, intent := range domain.ClassifiableIntents {
		score := 0
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}
	return best
}
