package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *UserProfile {
	return &UserProfile{
		Name:            "Alice",
		Age:             30,
		Income:          60000,
		SavingsAmount:   10000,
		MonthlyExpenses: 3000,
	}
}

func TestValidateProfile_Valid(t *testing.T) {
	errs, warnings := ValidateProfile(validProfile())
	assert.Empty(t, errs)
	assert.Empty(t, warnings)
}

func TestValidateProfile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserProfile)
		want   string
	}{
		{"negative income", func(p *UserProfile) { p.Income = -1 }, "Income cannot be negative"},
		{"negative savings", func(p *UserProfile) { p.SavingsAmount = -500 }, "Savings Amount cannot be negative"},
		{"negative age", func(p *UserProfile) { p.Age = -1 }, "Age cannot be negative"},
		{"underage", func(p *UserProfile) { p.Age = 17 }, "Age must be between 18 and 100"},
		{"over limit", func(p *UserProfile) { p.Age = 101 }, "Age must be between 18 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			errs, _ := ValidateProfile(p)
			assert.Contains(t, errs, tt.want)
		})
	}
}

func TestValidateProfile_NegativeAgeReportsBothMessages(t *testing.T) {
	p := validProfile()
	p.Age = -5

	errs, _ := ValidateProfile(p)
	assert.Contains(t, errs, "Age cannot be negative")
	assert.Contains(t, errs, "Age must be between 18 and 100")
}

func TestValidateProfile_HighExpensesWarnsOnly(t *testing.T) {
	p := validProfile()
	p.MonthlyExpenses = 11000 // more than twice the 5000 monthly income

	errs, warnings := ValidateProfile(p)
	assert.Empty(t, errs)
	assert.Contains(t, warnings, "Monthly expenses seem unusually high compared to income")
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "how do I budget", "how do I budget"},
		{"markup characters stripped", `<b>hello</b> & "world"`, "bhello/b  world"},
		{"apostrophes stripped", "what's my score", "whats my score"},
		{"whitespace trimmed", "  budget help  ", "budget help"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.input))
		})
	}
}

func TestSanitizeInput_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 1500)
	got := SanitizeInput(long)
	assert.Len(t, got, 1000)
}

func TestSanitizeInput_CapCountsKeptRunes(t *testing.T) {
	// Stripped characters do not consume the length budget.
	long := strings.Repeat("<", 600) + strings.Repeat("b", 1200)
	got := SanitizeInput(long)
	assert.Equal(t, strings.Repeat("b", 1000), got)
}
