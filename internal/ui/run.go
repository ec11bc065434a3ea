package ui

import (
	"context"
	"errors"

	"amphibians/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// StateSource is the holder surface the program needs: retry plus a
// replay-one subscription.
type StateSource interface {
	Retrier
	Subscribe(fn func(state.UiState)) (cancel func())
}

// Run starts the TUI and blocks until the user quits or ctx is done.
// Every state the holder publishes is forwarded into the program as a
// StateChangedMsg. Cancelling ctx is a normal exit and returns nil.
func Run(ctx context.Context, src StateSource, prober ImageProber, opts ...tea.ProgramOption) error {
	model := NewAppModel(ctx, src, prober)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model.AsTeaModel(), opts...)

	// Send blocks until the program loop is running, so the subscription
	// must not be made on this goroutine.
	cancelCh := make(chan func(), 1)
	go func() {
		cancelCh <- src.Subscribe(func(s state.UiState) {
			p.Send(StateChangedMsg{State: s})
		})
	}()

	_, err := p.Run()
	// Send is a no-op once the program has exited, which unblocks the replay.
	(<-cancelCh)()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
