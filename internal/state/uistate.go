package state

import "amphibians/internal/amphibian"

// UiState is exactly one of Loading, Success or Error.
type UiState interface {
	isUiState()
}

// Loading means a fetch is in flight.
type Loading struct{}

// Success holds the fetched records in server order.
type Success struct {
	Records []amphibian.Record
}

// Error means the last fetch failed. Reason is kept for logs and metrics;
// views do not surface it.
type Error struct {
	Reason amphibian.Reason
}

func (Loading) isUiState() {}
func (Success) isUiState() {}
func (Error) isUiState()   {}

// Name returns a short label for s, used in logs.
func Name(s UiState) string {
	switch s.(type) {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Settled reports whether s is a result of a completed fetch.
func Settled(s UiState) bool {
	switch s.(type) {
	case Success, Error:
		return true
	}
	return false
}
