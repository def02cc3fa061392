package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finovahq/finova/internal/testutil"
)

func newTestReportService() ReportService {
	return NewReportService(NewHealthService(), NewExpenseService())
}

func TestReport_RequiresProfile(t *testing.T) {
	out := newTestReportService().Generate(nil, nil, time.Now())
	assert.Equal(t, "User profile required for report generation.", out)
}

func TestReport_Overview(t *testing.T) {
	profile := testutil.NewTestProfile("Alice")
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	out := newTestReportService().Generate(profile, nil, now)

	assert.Contains(t, out, "# Monthly Financial Report - March 2025")
	assert.Contains(t, out, "- **Name:** Alice")
	assert.Contains(t, out, "- **Monthly Income:** $5,000.00")
	assert.Contains(t, out, "- **Total Expenses:** $3,000.00")
	assert.Contains(t, out, "- **Net Cash Flow:** $2,000.00")
	assert.Contains(t, out, "## Financial Health Score")
	assert.Contains(t, out, "## Goal Progress")
	assert.Contains(t, out, "- Emergency Fund: In Progress")
	assert.NotContains(t, out, "## Expense Analysis")
}

func TestReport_WithLedger(t *testing.T) {
	profile := testutil.NewTestProfile("Bob")
	ledger := testutil.NewTestLedger(map[string]float64{
		"Housing": 1500,
		"Food":    600,
		"(misc)":  400,
	}, "Housing", "Food", "(misc)")
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	out := newTestReportService().Generate(profile, ledger, now)

	// Ledger total replaces the profile estimate in the overview.
	assert.Contains(t, out, "- **Total Expenses:** $2,500.00")
	assert.Contains(t, out, "## Expense Analysis")
	assert.Contains(t, out, "- **Highest Category:** Housing ($1,500.00)")
	assert.Contains(t, out, "### Recommendations:")
	assert.Contains(t, out, "- Housing costs are high (60.0%). Consider options to reduce.")
}

func TestReport_Deterministic(t *testing.T) {
	profile := testutil.NewTestProfile("Carol")
	ledger := testutil.NewTestLedger(map[string]float64{
		"Housing": 1200,
		"Food":    500,
	}, "Housing", "Food")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	svc := newTestReportService()
	assert.Equal(t, svc.Generate(profile, ledger, now), svc.Generate(profile, ledger, now))
}
