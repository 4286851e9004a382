// Package styles holds the shared lipgloss styles for grove's
// terminal output, so the selector, prompts, and listings render
// with one palette.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Primary is the main accent color (cyan/teal)
	Primary lipgloss.TerminalColor = lipgloss.Color("62")

	// Accent highlights selected or main entries (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")

	// Error marks dirty state and failures (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is for secondary text like paths and hints (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal lipgloss.TerminalColor = lipgloss.Color("252")
)

var (
	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
)
