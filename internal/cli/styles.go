// Package cli renders analysis results for the terminal. The engine exposes
// plain structured data; everything about presentation, coloring, and date
// formatting lives here.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#0078D7")
	// SuccessColor indicates valid, unexpired results.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates results that need attention soon.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates expired or unrecognized results.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered interpretation cards.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)
)

// TierStyle returns the style for a confidence tier label.
func TierStyle(tier string) lipgloss.Style {
	switch tier {
	case "Very High":
		return SuccessStyle
	case "High":
		return SuccessStyle
	case "Medium":
		return WarningStyle
	default:
		return ErrorStyle
	}
}
