// Package finance holds the pure numeric formulas behind the advice rules.
// All functions are stateless; degenerate inputs resolve to explicit
// fallbacks instead of propagating division by zero.
package finance

import (
	"fmt"
	"math"
)

// CompoundInterest returns the future value of principal compounded
// compoundsPerYear times per year for the given number of years.
// rate is a fraction (0.07 = 7%). compoundsPerYear must be positive.
func CompoundInterest(principal, rate, years float64, compoundsPerYear int) (float64, error) {
	if compoundsPerYear <= 0 {
		return 0, fmt.Errorf("compounds per year must be positive, got %d", compoundsPerYear)
	}
	n := float64(compoundsPerYear)
	return principal * math.Pow(1+rate/n, n*years), nil
}

// LoanPayment returns the monthly payment on a fully amortizing loan.
// A zero rate degrades to straight-line principal repayment.
func LoanPayment(principal, annualRate float64, years int) float64 {
	numPayments := float64(years * 12)
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return principal / numPayments
	}
	growth := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * growth) / (growth - 1)
}

// DebtToIncomeRatio returns monthly debt payments as a fraction of monthly
// income. Zero income yields +Inf as an "undefined ratio" sentinel.
func DebtToIncomeRatio(monthlyDebt, monthlyIncome float64) float64 {
	if monthlyIncome == 0 {
		return math.Inf(1)
	}
	return monthlyDebt / monthlyIncome
}

// EmergencyFundTarget returns the liquid-savings target covering the given
// number of months of expenses.
func EmergencyFundTarget(monthlyExpenses float64, months int) float64 {
	return monthlyExpenses * float64(months)
}

// RetirementNeeds estimates the nest egg required to replace
// replacementRatio of current income under a 4% safe-withdrawal rate
// (the 25x multiple). The years remaining to retirementAge do not enter
// the magnitude; callers derive monthly targets from the horizon.
func RetirementNeeds(currentAge, retirementAge int, currentIncome, replacementRatio float64) float64 {
	annualNeed := currentIncome * replacementRatio
	return annualNeed * 25
}
