package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/finovahq/finova/internal/domain"
)

type reportService struct {
	health   HealthService
	expenses ExpenseService
}

// NewReportService creates the monthly report generator.
func NewReportService(health HealthService, expenses ExpenseService) ReportService {
	return &reportService{health: health, expenses: expenses}
}

// Generate renders the monthly financial report. now supplies the report
// date header so output is reproducible for fixed inputs.
func (s *reportService) Generate(profile *domain.UserProfile, ledger *domain.ExpenseLedger, now time.Time) string {
	if profile == nil {
		return "User profile required for report generation."
	}

	monthlyIncome := profile.MonthlyIncome()
	totalExpenses := profile.MonthlyExpenses
	if ledger != nil && ledger.Len() > 0 {
		totalExpenses = ledger.Total()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Financial Report - %s\n\n", now.Format("January 2006"))

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", profile.Name)
	fmt.Fprintf(&b, "- **Monthly Income:** %s\n", money(monthlyIncome))
	fmt.Fprintf(&b, "- **Total Expenses:** %s\n", money(totalExpenses))
	fmt.Fprintf(&b, "- **Net Cash Flow:** %s\n\n", money(monthlyIncome-totalExpenses))

	b.WriteString("## Financial Health Score\n")
	health := s.health.Score(profile, ledger)
	fmt.Fprintf(&b, "**Score:** %.1f/100 (Grade: %s)\n\n", health.Score, health.Grade)
	for _, f := range health.Feedback {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	if ledger != nil && ledger.Len() > 0 {
		b.WriteString("\n## Expense Analysis\n")
		analysis := s.expenses.Analyze(ledger)
		fmt.Fprintf(&b, "- **Highest Category:** %s (%s)\n",
			analysis.Highest, money(ledger.Amount(analysis.Highest)))

		if len(analysis.Recommendations) > 0 {
			b.WriteString("\n### Recommendations:\n")
			for _, rec := range analysis.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
		}
	}

	if len(profile.FinancialGoals) > 0 {
		b.WriteString("\n## Goal Progress\n")
		for _, goal := range profile.FinancialGoals {
			fmt.Fprintf(&b, "- %s: In Progress\n", goal)
		}
	}

	return b.String()
}
