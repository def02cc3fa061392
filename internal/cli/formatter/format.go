package formatter

import (
	"strings"

	"github.com/finovahq/finova/internal/finance"
)

// Currency formats a dollar amount as "$1,234.56" with comma grouping.
func Currency(v float64) string {
	return finance.Dollars(v)
}

// RenderAdvice applies terminal styling to the advice engine's markdown-ish
// output: headers and bold spans are emphasized, everything else passes
// through unchanged.
func RenderAdvice(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			lines[i] = StyleHeader.Render(strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "# "):
			lines[i] = StyleHeader.Render(strings.TrimPrefix(line, "# "))
		case strings.HasPrefix(line, "### "):
			lines[i] = StyleBold.Render(strings.TrimPrefix(line, "### "))
		default:
			lines[i] = renderBold(line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderBold replaces **span** markers with bold styling.
func renderBold(line string) string {
	var b strings.Builder
	for {
		start := strings.Index(line, "**")
		if start < 0 {
			b.WriteString(line)
			return b.String()
		}
		end := strings.Index(line[start+2:], "**")
		if end < 0 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:start])
		b.WriteString(StyleBold.Render(line[start+2 : start+2+end]))
		line = line[start+4+end:]
	}
}
