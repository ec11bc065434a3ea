package ui

import (
	"context"
	"time"

	"amphibians/internal/amphibian"
	"amphibians/internal/imageprobe"

	tea "github.com/charmbracelet/bubbletea"
)

// statusRefreshInterval is how often the status line's relative time is redrawn.
const statusRefreshInterval = 30 * time.Second

// retryCmd returns a command that asks the holder for a new fetch.
// It runs off the update loop: the holder publishes Loading synchronously,
// and that publication is forwarded back into the program.
func retryCmd(r Retrier) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		r.Retry()
		return nil
	}
}

// probeImagesCmd returns one probe command per distinct, non-empty image URL.
func probeImagesCmd(ctx context.Context, p ImageProber, records []amphibian.Record) tea.Cmd {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool, len(records))
	var cmds []tea.Cmd
	for _, r := range records {
		url := r.ImageURL
		if seen[url] {
			continue
		}
		seen[url] = true
		if url == "" {
			cmds = append(cmds, func() tea.Msg {
				return ImageProbedMsg{URL: url, Status: imageprobe.StatusBroken}
			})
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			return ImageProbedMsg{URL: url, Status: p.Probe(ctx, url)}
		})
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules a tickMsg after statusRefreshInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
