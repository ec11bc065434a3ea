package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrorView shows a static failure message and a single retry control.
type ErrorView struct {
	width  int
	height int
}

// Ensure ErrorView implements View.
var _ View = (*ErrorView)(nil)

// NewErrorView creates the error screen.
func NewErrorView() *ErrorView {
	return &ErrorView{}
}

// Init implements View.
func (e *ErrorView) Init() tea.Cmd { return nil }

// Update implements View. Enter activates the retry button.
func (e *ErrorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return e, func() tea.Msg { return RetryMsg{} }
		}
	}
	return e, nil
}

// View implements View.
func (e *ErrorView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		Styles.TitleWarning.Render("✗ Failed to load amphibians."),
		"",
		Styles.Button.Render("Retry"),
		"",
		Styles.Hint.Render("enter or r to retry"),
	)
	box := Styles.BoxDanger.Render(body)
	if e.width == 0 || e.height == 0 {
		return box
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, box)
}
