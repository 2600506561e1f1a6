package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a ticket status value.
func StatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "closed":
		return StyleGreen
	case "in progress":
		return StyleBlue
	case "open":
		return StyleYellow
	case "on hold":
		return StylePurple
	case "scheduled":
		return StyleBlue
	default:
		return StyleDim
	}
}

// RiskStyle colors a computed risk level (likelihood x impact).
func RiskStyle(level int) lipgloss.Style {
	switch {
	case level >= 15:
		return StyleRed
	case level >= 6:
		return StyleYellow
	case level > 0:
		return StyleGreen
	default:
		return StyleDim
	}
}
