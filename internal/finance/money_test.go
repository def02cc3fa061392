package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{954.83, "$954.83"},
		{1234.56, "$1,234.56"},
		{1200000, "$1,200,000.00"},
		{-500, "-$500.00"},
		{999.999, "$1,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dollars(tt.in))
	}
}

func TestDollars_NonFinite(t *testing.T) {
	// A degenerate formula input can produce these; they must format, not
	// panic on the missing decimal point.
	assert.Equal(t, "$Inf", Dollars(math.Inf(1)))
	assert.Equal(t, "-$Inf", Dollars(math.Inf(-1)))
	assert.Equal(t, "$NaN", Dollars(math.NaN()))
}

func TestLoanPayment_ZeroYearsIsInf(t *testing.T) {
	// Callers must reject a non-positive term before formatting.
	assert.True(t, math.IsInf(LoanPayment(200000, 0.04, 0), 1))
}
