package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_MonthlyDerivations(t *testing.T) {
	p := &UserProfile{Income: 60000, MonthlyExpenses: 3000}

	assert.InDelta(t, 5000, p.MonthlyIncome(), 1e-9)
	assert.InDelta(t, 2000, p.MonthlySurplus(), 1e-9)

	p.MonthlyExpenses = 5500
	assert.InDelta(t, -500, p.MonthlySurplus(), 1e-9)
}

func TestNewUserProfile_StampsCreatedAt(t *testing.T) {
	p := NewUserProfile("Alice", 30, 60000, "Engineer",
		[]string{"Emergency Fund"}, RiskModerate, 10000, 3000, UserProfessional)

	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, RiskModerate, p.RiskTolerance)
}

func TestParseRiskTolerance(t *testing.T) {
	tests := []struct {
		input string
		want  RiskTolerance
	}{
		{"conservative", RiskConservative},
		{"Conservative", RiskConservative},
		{"  AGGRESSIVE  ", RiskAggressive},
		{"moderate", RiskModerate},
		{"balanced", RiskModerate}, // unrecognized falls back
		{"", RiskModerate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRiskTolerance(tt.input), "input %q", tt.input)
	}
}
