package ui

import (
	"strings"

	"amphibians/internal/amphibian"
	"amphibians/internal/imageprobe"
	"amphibians/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListWidth  = 80
	defaultListHeight = 20
	minCardWidth      = 24
)

// ListView renders records as a vertically scrollable column of cards.
type ListView struct {
	viewport viewport.Model
	Records  []amphibian.Record
	images   map[string]imageprobe.Status
	probing  bool // false: show image URLs without a probe status
}

// Ensure ListView implements View.
var _ View = (*ListView)(nil)

// NewListView creates an empty list.
func NewListView() *ListView {
	return &ListView{
		viewport: viewport.New(defaultListWidth, defaultListHeight),
		images:   make(map[string]imageprobe.Status),
	}
}

// SetRecords replaces the records and resets image state and scroll position.
// When probing is true every image starts as pending.
func (l *ListView) SetRecords(records []amphibian.Record, probing bool) {
	l.Records = records
	l.probing = probing
	l.images = make(map[string]imageprobe.Status, len(records))
	l.refreshContent()
	l.viewport.GotoTop()
}

// SetImageStatus records a probe result. Results for URLs not in the current
// record set are ignored.
func (l *ListView) SetImageStatus(url string, status imageprobe.Status) {
	for _, r := range l.Records {
		if r.ImageURL == url {
			l.images[url] = status
			l.refreshContent()
			return
		}
	}
}

// ImageStatus returns the display status for url.
func (l *ListView) ImageStatus(url string) imageprobe.Status {
	return l.images[url]
}

// Init implements View.
func (l *ListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Sizes come from the app, which reserves room for chrome.
func (l *ListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		l.viewport.Width = msg.Width
		l.viewport.Height = msg.Height
		l.refreshContent()
		return l, nil
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// View implements View.
func (l *ListView) View() string {
	return l.viewport.View()
}

// ScrollPercent exposes the viewport position for the status line.
func (l *ListView) ScrollPercent() float64 {
	return l.viewport.ScrollPercent()
}

func (l *ListView) refreshContent() {
	if len(l.Records) == 0 {
		l.viewport.SetContent(Styles.Empty.Render("No amphibians found."))
		return
	}
	width := l.viewport.Width
	if width < minCardWidth {
		width = minCardWidth
	}
	cards := make([]string, len(l.Records))
	for i, r := range l.Records {
		cards[i] = l.renderCard(r, width)
	}
	l.viewport.SetContent(strings.Join(cards, "\n"))
}

// renderCard draws one record. width is the outer width including the border.
func (l *ListView) renderCard(r amphibian.Record, width int) string {
	// Border (2) + horizontal padding (2).
	inner := width - 4
	title := Styles.CardTitle.Render(textutil.Truncate(r.Title(), inner))
	image := l.renderImageLine(r.ImageURL, inner)
	desc := Styles.Normal.Width(inner).Render(r.Description)
	return Styles.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, image, desc))
}

func (l *ListView) renderImageLine(url string, width int) string {
	if !l.probing {
		if url == "" {
			return Styles.ImageBroken.Render("✗ no image")
		}
		return Styles.ImageReady.Render("▣ "+textutil.TruncateMiddle(url, width-2))
	}
	switch l.images[url] {
	case imageprobe.StatusReady:
		return Styles.ImageReady.Render("▣ "+textutil.TruncateMiddle(url, width-2))
	case imageprobe.StatusBroken:
		return Styles.ImageBroken.Render(textutil.Truncate("✗ broken image", width))
	default:
		return Styles.ImagePending.Render(textutil.Truncate("◌ loading image…", width))
	}
}
