package domain

import "time"

// UserProfile is the validated financial profile for one session.
// Profiles are immutable once constructed; edits replace the whole value.
type UserProfile struct {
	Name            string
	Age             int
	Income          float64 // annual
	Occupation      string
	FinancialGoals  []string // insertion order preserved, duplicates allowed
	RiskTolerance   RiskTolerance
	SavingsAmount   float64
	MonthlyExpenses float64
	UserType        UserType
	CreatedAt       time.Time
}

// NewUserProfile constructs a profile and stamps CreatedAt once.
// Callers must run ValidateProfile before accepting the result.
func NewUserProfile(name string, age int, income float64, occupation string,
	goals []string, risk RiskTolerance, savings, monthlyExpenses float64,
	userType UserType) *UserProfile {
	return &UserProfile{
		Name:            name,
		Age:             age,
		Income:          income,
		Occupation:      occupation,
		FinancialGoals:  goals,
		RiskTolerance:   risk,
		SavingsAmount:   savings,
		MonthlyExpenses: monthlyExpenses,
		UserType:        userType,
		CreatedAt:       time.Now().UTC(),
	}
}

// MonthlyIncome returns the profile's income prorated to one month.
func (p *UserProfile) MonthlyIncome() float64 {
	return p.Income / 12
}

// MonthlySurplus returns monthly income minus monthly expenses.
// Negative values indicate a deficit.
func (p *UserProfile) MonthlySurplus() float64 {
	return p.MonthlyIncome() - p.MonthlyExpenses
}
