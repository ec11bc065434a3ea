package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"amphibians/internal/imageprobe"
	"amphibians/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Retrier is the part of the state holder the UI drives.
type Retrier interface {
	Retry()
}

// ImageProber checks image availability for the list view.
type ImageProber interface {
	Probe(ctx context.Context, url string) imageprobe.Status
}

// chromeHeight is the rows taken by the title bar, status line and footer.
const chromeHeight = 4

// AppModel is the root model. It projects the current UiState onto one of
// three views and turns user input into retry requests.
type AppModel struct {
	State      state.UiState
	Loading    *LoadingView
	List       *ListView
	Error      *ErrorView
	KeyHandler *KeyHandler
	Holder     Retrier
	Prober     ImageProber // nil disables image probing

	LoadedAt time.Time // when the current Success arrived

	ctx    context.Context
	now    func() time.Time
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model in Loading.
func NewAppModel(ctx context.Context, holder Retrier, prober ImageProber) *AppModel {
	retry := func() tea.Msg { return RetryMsg{} }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDescForMode("r", retry, "retry", []AppMode{ModeList, ModeError})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC r", retry, "Reload", []AppMode{ModeList, ModeError})

	return &AppModel{
		State:      state.Loading{},
		Loading:    NewLoadingView(),
		List:       NewListView(),
		Error:      NewErrorView(),
		KeyHandler: NewKeyHandler(reg),
		Holder:     holder,
		Prober:     prober,
		ctx:        ctx,
		now:        time.Now,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the screen for the current state.
func (m *AppModel) Mode() AppMode {
	return ModeFor(m.State)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.currentView().Init(), tickCmd())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateChangedMsg:
		return a, a.applyState(msg.State)
	case RetryMsg:
		if a.Mode() == ModeLoading {
			return a, nil
		}
		return a, retryCmd(a.Holder)
	case ImageProbedMsg:
		a.List.SetImageStatus(msg.URL, msg.Status)
		return a, nil
	case tickMsg:
		return a, tickCmd()
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		body := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-chromeHeight, 1)}
		a.Loading.Update(body)
		a.List.Update(body)
		a.Error.Update(body)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// applyState switches screens for s and returns the commands the new screen needs.
func (a *appModelAdapter) applyState(s state.UiState) tea.Cmd {
	a.State = s
	switch s := s.(type) {
	case state.Success:
		a.LoadedAt = a.now()
		a.List.SetRecords(s.Records, a.Prober != nil)
		return probeImagesCmd(a.ctx, a.Prober, s.Records)
	case state.Loading:
		return a.Loading.Init()
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(a.currentView().View())
	b.WriteString("\n")
	b.WriteString(a.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(RenderFooterHelp(a.KeyHandler.Registry, a.Mode()))
	if a.KeyHandler.LeaderWaiting {
		b.WriteString("\n")
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode()))
	}
	return b.String()
}

func (a *appModelAdapter) renderTitleBar() string {
	title := Styles.Title.Render("Amphibians")
	if a.width == 0 {
		return title
	}
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title)
}

func (a *appModelAdapter) renderStatusLine() string {
	s, ok := a.State.(state.Success)
	if !ok {
		return ""
	}
	noun := "amphibians"
	if len(s.Records) == 1 {
		noun = "amphibian"
	}
	line := fmt.Sprintf("%d %s · loaded %s", len(s.Records), noun,
		humanize.RelTime(a.LoadedAt, a.now(), "ago", "from now"))
	if len(s.Records) > 0 {
		line += fmt.Sprintf(" · %3.f%%", a.List.ScrollPercent()*100)
	}
	return Styles.Status.Render(line)
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode() {
	case ModeList:
		return a.List
	case ModeError:
		return a.Error
	default:
		return a.Loading
	}
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch v := v.(type) {
	case *LoadingView:
		a.Loading = v
	case *ListView:
		a.List = v
	case *ErrorView:
		a.Error = v
	}
}
