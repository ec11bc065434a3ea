package ui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"amphibians/internal/amphibian"
	"amphibians/internal/imageprobe"
	"amphibians/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRetrier struct {
	calls atomic.Int32
}

func (c *countingRetrier) Retry() { c.calls.Add(1) }

type fakeProber map[string]imageprobe.Status

func (f fakeProber) Probe(_ context.Context, url string) imageprobe.Status {
	if s, ok := f[url]; ok {
		return s
	}
	return imageprobe.StatusBroken
}

var frog = amphibian.Record{
	Name:        "Frog",
	Type:        "Anura",
	Description: "d",
	ImageURL:    "http://x/1.png",
}

func newTestApp(t *testing.T, prober ImageProber) (*appModelAdapter, *countingRetrier) {
	t.Helper()
	r := &countingRetrier{}
	a := NewAppModel(context.Background(), r, prober)
	a.now = func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }
	return a.AsTeaModel().(*appModelAdapter), r
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestApp_StartsLoading(t *testing.T) {
	app, _ := newTestApp(t, nil)

	assert.Equal(t, ModeLoading, app.Mode())
	assert.Contains(t, app.View(), "Loading amphibians…")
	assert.Contains(t, app.View(), "Amphibians")
}

func TestApp_RendersThreeStates(t *testing.T) {
	tests := []struct {
		name  string
		state state.UiState
		mode  AppMode
		want  []string
	}{
		{"loading", state.Loading{}, ModeLoading, []string{"Loading amphibians…"}},
		{"success", state.Success{Records: []amphibian.Record{frog}}, ModeList, []string{"Frog (Anura)", "http://x/1.png", "1 amphibian · loaded now"}},
		{"empty", state.Success{Records: []amphibian.Record{}}, ModeList, []string{"No amphibians found.", "0 amphibians"}},
		{"error", state.Error{Reason: amphibian.ReasonTransport}, ModeError, []string{"Failed to load amphibians.", "Retry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, nil)
			app.Update(StateChangedMsg{State: tt.state})

			assert.Equal(t, tt.mode, app.Mode())
			view := app.View()
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
		})
	}
}

func TestApp_ErrorViewHidesReason(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Update(StateChangedMsg{State: state.Error{Reason: amphibian.ReasonDecode}})

	assert.NotContains(t, app.View(), "decode")
}

func TestApp_RetryKeyOnlyWhenSettled(t *testing.T) {
	app, r := newTestApp(t, nil)

	// Loading: r is not bound and the loading view ignores it.
	_, cmd := app.Update(keyMsg("r"))
	assert.Empty(t, runCmd(cmd))
	_, cmd = app.Update(RetryMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, int32(0), r.calls.Load())

	app.Update(StateChangedMsg{State: state.Error{Reason: amphibian.ReasonStatus}})
	_, cmd = app.Update(keyMsg("r"))
	msgs := runCmd(cmd)
	require.Equal(t, []tea.Msg{RetryMsg{}}, msgs)

	_, cmd = app.Update(msgs[0])
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestApp_RetryFromSuccess(t *testing.T) {
	app, r := newTestApp(t, nil)
	app.Update(StateChangedMsg{State: state.Success{Records: []amphibian.Record{frog}}})

	_, cmd := app.Update(keyMsg("r"))
	for _, msg := range runCmd(cmd) {
		_, next := app.Update(msg)
		runCmd(next)
	}
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestApp_LeaderRetry(t *testing.T) {
	app, r := newTestApp(t, nil)
	app.Update(StateChangedMsg{State: state.Error{}})

	app.Update(keyMsg(" "))
	assert.Contains(t, app.View(), "Reload")
	_, cmd := app.Update(keyMsg("r"))
	for _, msg := range runCmd(cmd) {
		_, next := app.Update(msg)
		runCmd(next)
	}
	assert.Equal(t, int32(1), r.calls.Load())
	assert.False(t, app.KeyHandler.LeaderWaiting)
}

func TestApp_EnterOnRetryButton(t *testing.T) {
	app, r := newTestApp(t, nil)
	app.Update(StateChangedMsg{State: state.Error{}})

	_, cmd := app.Update(keyMsg("enter"))
	msgs := runCmd(cmd)
	require.Equal(t, []tea.Msg{RetryMsg{}}, msgs)
	_, cmd = app.Update(msgs[0])
	runCmd(cmd)
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			app, _ := newTestApp(t, nil)
			_, cmd := app.Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_FooterHelpFollowsMode(t *testing.T) {
	app, _ := newTestApp(t, nil)
	assert.NotContains(t, app.View(), "retry")

	app.Update(StateChangedMsg{State: state.Error{}})
	assert.Contains(t, app.View(), "retry")
}

func TestApp_ProbesImagesOnSuccess(t *testing.T) {
	toad := amphibian.Record{Name: "Toad", Type: "Anura", ImageURL: "http://x/2.png"}
	dup := amphibian.Record{Name: "Frog 2", Type: "Anura", ImageURL: frog.ImageURL}
	prober := fakeProber{frog.ImageURL: imageprobe.StatusReady}
	app, _ := newTestApp(t, prober)

	_, cmd := app.Update(StateChangedMsg{State: state.Success{Records: []amphibian.Record{frog, toad, dup}}})
	assert.Contains(t, app.View(), "loading image…")

	msgs := runCmd(cmd)
	require.Len(t, msgs, 2, "one probe per distinct URL")
	for _, msg := range msgs {
		app.Update(msg)
	}

	assert.Equal(t, imageprobe.StatusReady, app.List.ImageStatus(frog.ImageURL))
	assert.Equal(t, imageprobe.StatusBroken, app.List.ImageStatus(toad.ImageURL))
	view := app.View()
	assert.Contains(t, view, "▣ http://x/1.png")
	assert.Contains(t, view, "✗ broken image")
	assert.NotContains(t, view, "loading image…")
}

func TestApp_StaleProbeResultIgnored(t *testing.T) {
	app, _ := newTestApp(t, fakeProber{})
	app.Update(StateChangedMsg{State: state.Success{Records: []amphibian.Record{frog}}})

	app.Update(ImageProbedMsg{URL: "http://old/1.png", Status: imageprobe.StatusReady})
	assert.Equal(t, imageprobe.StatusPending, app.List.ImageStatus("http://old/1.png"))
}

func TestApp_StatusLineRelativeTime(t *testing.T) {
	app, _ := newTestApp(t, nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	app.now = func() time.Time { return start }
	app.Update(StateChangedMsg{State: state.Success{Records: []amphibian.Record{frog, frog}}})

	app.now = func() time.Time { return start.Add(3 * time.Minute) }
	_, cmd := app.Update(tickMsg(start.Add(3 * time.Minute)))
	assert.NotNil(t, cmd, "tick reschedules itself")
	assert.Contains(t, app.View(), "2 amphibians · loaded 3 minutes ago")
}

func TestApp_LoadingAfterSuccessResetsList(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Update(StateChangedMsg{State: state.Success{Records: []amphibian.Record{frog}}})
	_, cmd := app.Update(StateChangedMsg{State: state.Loading{}})

	assert.NotNil(t, cmd, "spinner restarts")
	assert.Equal(t, ModeLoading, app.Mode())
	assert.NotContains(t, app.View(), "Frog (Anura)")
}

func TestApp_WindowSizeReservesChrome(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 24})

	assert.Equal(t, 60, app.List.viewport.Width)
	assert.Equal(t, 24-chromeHeight, app.List.viewport.Height)
}
