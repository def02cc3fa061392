package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovahq/finova/internal/testutil"
)

func TestScore_PerfectProfile(t *testing.T) {
	// 6 months of expenses saved, 40% savings rate, expenses at 60% of
	// income, five goals. Every component maxes out.
	profile := testutil.NewTestProfile("Alice",
		testutil.WithSavings(18000),
		testutil.WithGoals("Emergency Fund", "Buy a House", "Retirement", "Travel", "Education"),
	)

	result := NewHealthService().Score(profile, nil)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "A", result.Grade)
	assert.Contains(t, result.Feedback, "✅ Excellent emergency fund coverage")
	assert.Contains(t, result.Feedback, "✅ Great savings rate!")
	assert.Contains(t, result.Feedback, "✅ You have 5 financial goals defined")
}

func TestScore_DefaultProfile(t *testing.T) {
	// 10000 saved against 3000/month expenses is 3.33 months of coverage:
	// 13.9 emergency points. Savings rate and budget max out, one goal
	// adds 5. Total 68.9.
	profile := testutil.NewTestProfile("Bob")

	result := NewHealthService().Score(profile, nil)

	assert.InDelta(t, 68.9, result.Score, 0.01)
	assert.Equal(t, "D", result.Grade)
	assert.Contains(t, result.Feedback, "⚠️ Good emergency fund, consider building to 6 months")
}

func TestScore_ZeroExpensesSkipsEmergencyComponent(t *testing.T) {
	profile := testutil.NewTestProfile("Carol", testutil.WithMonthlyExpenses(0))

	result := NewHealthService().Score(profile, nil)

	// Emergency coverage is undefined: no points and no feedback line.
	for _, f := range result.Feedback {
		assert.NotContains(t, f, "emergency fund")
	}
	// Savings rate 25 + budget 25 + one goal 5.
	assert.Equal(t, 55.0, result.Score)
	assert.Equal(t, "F", result.Grade)
}

func TestScore_LedgerOverridesProfileExpenses(t *testing.T) {
	profile := testutil.NewTestProfile("Dave") // profile says 3000/month
	ledger := testutil.NewTestLedger(map[string]float64{
		"Housing": 3000,
		"Food":    2000,
	}, "Housing", "Food")

	result := NewHealthService().Score(profile, ledger)

	// Tracked expenses total 5000 against 5000 monthly income: savings
	// rate 0, two months of emergency coverage, heavy budget penalty.
	assert.InDelta(t, 18.3, result.Score, 0.01)
	assert.Equal(t, "F", result.Grade)
	assert.Contains(t, result.Feedback, "❌ Build your emergency fund (aim for 6 months of expenses)")
	assert.Contains(t, result.Feedback, "❌ Focus on increasing your savings rate")
}

func TestScore_GoalsCapAtTwentyFive(t *testing.T) {
	base := testutil.NewTestProfile("Eve",
		testutil.WithSavings(18000),
		testutil.WithGoals("a", "b", "c", "d", "e"),
	)
	extra := testutil.NewTestProfile("Eve",
		testutil.WithSavings(18000),
		testutil.WithGoals("a", "b", "c", "d", "e", "f", "g", "h"),
	)

	svc := NewHealthService()
	assert.Equal(t, svc.Score(base, nil).Score, svc.Score(extra, nil).Score)
}

func TestScore_NoGoalsFeedback(t *testing.T) {
	profile := testutil.NewTestProfile("Frank")
	profile.FinancialGoals = nil

	result := NewHealthService().Score(profile, nil)
	assert.Contains(t, result.Feedback, "❌ Consider setting specific financial goals")
}

func TestScore_MonotonicInSavings(t *testing.T) {
	svc := NewHealthService()
	low := svc.Score(testutil.NewTestProfile("G", testutil.WithSavings(2000)), nil)
	high := svc.Score(testutil.NewTestProfile("G", testutil.WithSavings(20000)), nil)

	require.Less(t, low.Score, high.Score)
}

func TestScore_GradeFromExactScoreNotRoundedDisplay(t *testing.T) {
	// Savings of 10790 against 3000/month expenses put the emergency
	// component at 14.986 points: the exact total is 69.986, which
	// displays as 70.0 but still grades D.
	profile := testutil.NewTestProfile("Ira", testutil.WithSavings(10790))

	result := NewHealthService().Score(profile, nil)

	assert.Equal(t, 70.0, result.Score)
	assert.Equal(t, "D", result.Grade)
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"}, {90, "A"},
		{89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"},
		{69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, grade(tt.score), "score %.1f", tt.score)
	}
}

func TestScore_ZeroIncome(t *testing.T) {
	profile := testutil.NewTestProfile("H", testutil.WithIncome(0))

	result := NewHealthService().Score(profile, nil)

	// Savings rate and budget both bottom out at zero income; emergency
	// coverage and the single goal still earn points.
	assert.Contains(t, result.Feedback, "❌ Focus on increasing your savings rate")
	assert.Equal(t, "F", result.Grade)
}
