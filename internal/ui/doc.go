// Package ui renders the amphibian catalog with Bubble Tea.
//
// The root AppModel is a projection of the holder's UiState:
//   - Loading: LoadingView, a spinner and nothing interactive
//   - Success: ListView, a scrollable column of record cards
//   - Error:   ErrorView, a static message and a retry control
//
// State arrives as StateChangedMsg values forwarded from the holder's
// subscription; the only thing the UI sends back is a retry.
package ui
