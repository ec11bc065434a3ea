package ui

import "amphibians/internal/state"

// AppMode is the screen currently shown, derived from the UiState.
type AppMode int

const (
	ModeLoading AppMode = iota
	ModeList
	ModeError
)

func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeList:
		return "List"
	case ModeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ModeFor maps a UiState to the screen that renders it.
func ModeFor(s state.UiState) AppMode {
	switch s.(type) {
	case state.Success:
		return ModeList
	case state.Error:
		return ModeError
	default:
		return ModeLoading
	}
}
