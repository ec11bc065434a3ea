package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for card borders, buttons
	ColorDanger    = "196" // Red - for errors, broken images
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for pending images
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for the app title
	TitleWarning lipgloss.Style // Bold danger color - for the error message
	CardTitle    lipgloss.Style // Bold highlight - "Name (Type)"

	// Box styles
	Card      lipgloss.Style // One record
	BoxDanger lipgloss.Style // Error screen

	// Text styles
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Hint    lipgloss.Style
	Status  lipgloss.Style
	Empty   lipgloss.Style
	Button  lipgloss.Style

	// Image line styles
	ImageReady   lipgloss.Style
	ImagePending lipgloss.Style
	ImageBroken  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	ImageReady: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	ImagePending: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	ImageBroken: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
