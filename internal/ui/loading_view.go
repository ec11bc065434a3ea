package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// LoadingView shows a spinner while a fetch is in flight. It has no controls.
type LoadingView struct {
	spinner spinner.Model
	width   int
	height  int
}

// Ensure LoadingView implements View.
var _ View = (*LoadingView)(nil)

// NewLoadingView creates the loading screen.
func NewLoadingView() *LoadingView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &LoadingView{spinner: s}
}

// Init implements View.
func (l *LoadingView) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update implements View.
func (l *LoadingView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width, l.height = msg.Width, msg.Height
		return l, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements View.
func (l *LoadingView) View() string {
	content := l.spinner.View() + " " + Styles.Muted.Render("Loading amphibians…")
	if l.width == 0 || l.height == 0 {
		return content
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, content)
}
