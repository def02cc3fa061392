package domain

import "strings"

// ValidateProfile checks intake bounds and returns human-readable messages.
// errs block profile acceptance; warnings are surfaced but do not.
func ValidateProfile(p *UserProfile) (errs, warnings []string) {
	if p.Income < 0 {
		errs = append(errs, "Income cannot be negative")
	}
	if p.SavingsAmount < 0 {
		errs = append(errs, "Savings Amount cannot be negative")
	}
	if p.Age < 0 {
		errs = append(errs, "Age cannot be negative")
	}
	if p.Age < 18 || p.Age > 100 {
		errs = append(errs, "Age must be between 18 and 100")
	}
	if p.MonthlyExpenses > p.MonthlyIncome()*2 {
		warnings = append(warnings, "Monthly expenses seem unusually high compared to income")
	}
	return errs, warnings
}

// SanitizeInput strips characters with markup significance from free text
// and caps its length before classification.
func SanitizeInput(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	kept := 0
	for _, r := range text {
		switch r {
		case '<', '>', '"', '\'', '&':
			continue
		}
		if kept == 1000 {
			break
		}
		b.WriteRune(r)
		kept++
	}
	return strings.TrimSpace(b.String())
}
