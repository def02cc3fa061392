package advisor

import (
	"fmt"

	"github.com/finovahq/finova/internal/finance"
)

// money formats a dollar amount for advice text.
func money(v float64) string {
	return finance.Dollars(v)
}

// percent formats a ratio-free percentage value like "12.5".
func percent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
