package ui

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"amphibians/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	countingRetrier
	subscribed  atomic.Bool
	cancelled   atomic.Bool
	onSubscribe func()
}

func (f *fakeSource) Subscribe(fn func(state.UiState)) func() {
	f.subscribed.Store(true)
	if f.onSubscribe != nil {
		f.onSubscribe()
	}
	fn(state.Loading{})
	return func() { f.cancelled.Store(true) }
}

func TestRun_QuitUnsubscribes(t *testing.T) {
	src := &fakeSource{}

	err := Run(context.Background(), src, nil,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)
	assert.True(t, src.subscribed.Load())
	assert.True(t, src.cancelled.Load(), "subscription is cancelled after the program exits")
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestRun_ContextCancelIsCleanExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &fakeSource{onSubscribe: cancel}

	err := Run(ctx, src, nil,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)
	assert.NoError(t, err)
	assert.True(t, src.cancelled.Load())
}
