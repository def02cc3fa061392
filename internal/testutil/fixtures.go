package testutil

import (
	"time"

	"github.com/finovahq/finova/internal/domain"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithAge(age int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Age = age
	}
}

func WithIncome(income float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Income = income
	}
}

func WithSavings(savings float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.SavingsAmount = savings
	}
}

func WithMonthlyExpenses(expenses float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.MonthlyExpenses = expenses
	}
}

func WithUserType(t domain.UserType) ProfileOption {
	return func(p *domain.UserProfile) {
		p.UserType = t
	}
}

func WithRiskTolerance(r domain.RiskTolerance) ProfileOption {
	return func(p *domain.UserProfile) {
		p.RiskTolerance = r
	}
}

func WithGoals(goals ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.FinancialGoals = goals
	}
}

// NewTestProfile builds a valid professional-tier profile; options override
// individual fields.
func NewTestProfile(name string, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		Name:            name,
		Age:             35,
		Income:          60000,
		Occupation:      "Engineer",
		FinancialGoals:  []string{"Emergency Fund"},
		RiskTolerance:   domain.RiskModerate,
		SavingsAmount:   10000,
		MonthlyExpenses: 3000,
		UserType:        domain.UserProfessional,
		CreatedAt:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestLedger builds a ledger from alternating category, amount pairs.
func NewTestLedger(entries map[string]float64, order ...string) *domain.ExpenseLedger {
	l := domain.NewExpenseLedger()
	for _, cat := range order {
		l.Add(cat, entries[cat])
	}
	return l
}
