package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/finovahq/finova/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GradeStyle returns the style for a health score letter grade.
func GradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "A", "B":
		return StyleGreen
	case "C", "D":
		return StyleYellow
	default:
		return StyleRed
	}
}

// RiskStyle returns the style for a risk tolerance level.
func RiskStyle(risk domain.RiskTolerance) lipgloss.Style {
	switch risk {
	case domain.RiskConservative:
		return StyleGreen
	case domain.RiskModerate:
		return StyleYellow
	case domain.RiskAggressive:
		return StyleRed
	default:
		return StyleDim
	}
}

// SentimentIndicator returns a colored indicator like "● POSITIVE".
func SentimentIndicator(s domain.Sentiment) string {
	switch s {
	case domain.SentimentPositive:
		return StyleGreen.Render("● POSITIVE")
	case domain.SentimentNegative:
		return StyleRed.Render("● NEGATIVE")
	default:
		return StyleDim.Render("● NEUTRAL")
	}
}
