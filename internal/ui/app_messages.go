package ui

import (
	"time"

	"amphibians/internal/imageprobe"
	"amphibians/internal/state"
)

// StateChangedMsg carries a new UiState from the holder subscription.
type StateChangedMsg struct {
	State state.UiState
}

// RetryMsg is sent when the user asks to fetch again (r, SPC r, or Enter on the retry button).
type RetryMsg struct{}

// ImageProbedMsg reports the probe result for one image URL.
type ImageProbedMsg struct {
	URL    string
	Status imageprobe.Status
}

// tickMsg refreshes the relative "loaded ... ago" text.
type tickMsg time.Time
