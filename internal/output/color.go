// Package output provides styled terminal rendering helpers for linecount.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for code counts.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorWarning is used for comment counts.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorError is used for skip and failure indicators.
	ColorError = lipgloss.Color("#ef5350")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers and table headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for code counts.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleWarning is used for comment counts.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for skip counts and error lines.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for the grand-total row.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for summary labels.
	StyleLabel = lipgloss.NewStyle().Width(24)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleWarning = plain
		StyleError = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
