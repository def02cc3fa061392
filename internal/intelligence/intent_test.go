package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finovahq/finova/internal/domain"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{"emergency fund keyword", "I want to save for an emergency fund", domain.IntentSavings},
		{"investment portfolio", "What's a good investment portfolio?", domain.IntentInvestment},
		{"budget tracking", "Help me track spending against my monthly budget", domain.IntentBudgeting},
		{"debt payoff", "How do I pay off my credit card debt?", domain.IntentDebt},
		{"tax filing", "Any tips for my tax return filing?", domain.IntentTax},
		{"insurance coverage", "Do I have enough life insurance coverage?", domain.IntentInsurance},
		{"retirement", "When can I retire with my pension?", domain.IntentRetirement},
		{"no keywords", "Tell me something interesting", domain.IntentGeneral},
		{"empty input", "", domain.IntentGeneral},
		{"case insensitive", "SHOULD I INVEST IN STOCKS?", domain.IntentInvestment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.text))
		})
	}
}

func TestClassifyIntent_SubstringNotWordBoundary(t *testing.T) {
	// "spending" contains "spend"; matching is substring-based.
	assert.Equal(t, domain.IntentBudgeting, ClassifyIntent("my spending is out of control"))
}

func TestClassifyIntent_HighestCountWins(t *testing.T) {
	// Two savings keywords ("save", "deposit") against one debt keyword
	// ("loan") should resolve to savings.
	got := ClassifyIntent("should I save my loan money in a deposit?")
	assert.Equal(t, domain.IntentSavings, got)
}

func TestClassifyIntent_TieBreaksInCanonicalOrder(t *testing.T) {
	// "401k" appears in both the investment and retirement tables.
	// Investment precedes retirement in ClassifiableIntents, so a pure
	// tie resolves to investment.
	assert.Equal(t, domain.IntentInvestment, ClassifyIntent("what about my 401k?"))
}
