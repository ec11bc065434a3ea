// Package state bridges one asynchronous catalog fetch to an observable
// UiState cell.
//
// A Holder starts in Loading, fetches once on creation, and moves to Success
// or Error. Retry re-enters Loading and fetches again; concurrent retries are
// not de-duplicated and the last completion wins. Observers registered with
// Subscribe receive the current value immediately and every later change in
// order.
package state
