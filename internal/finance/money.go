package finance

import (
	"fmt"
	"strings"
)

// Dollars formats an amount as "$1,234.56" with comma grouping. Non-finite
// amounts (a degenerate formula input can yield +Inf) render as "$Inf" or
// "$NaN" instead of being grouped.
func Dollars(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	prefix := "$"
	if neg {
		prefix = "-$"
	}

	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return prefix + strings.TrimPrefix(s, "+")
	}
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(prefix)
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}
