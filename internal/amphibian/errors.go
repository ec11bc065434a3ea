package amphibian

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrFetchFailed matches every error returned by a Repository built in this
// package.
var ErrFetchFailed = errors.New("amphibians: fetch failed")

// Reason classifies why a fetch failed.
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
	ReasonUnknown   Reason = "unknown"
)

// FetchError is returned by NetworkRepository.Amphibians.
type FetchError struct {
	Reason     Reason
	StatusCode int // set when Reason is ReasonStatus
	Err        error
}

func newFetchError(reason Reason, status int, err error) *FetchError {
	return &FetchError{Reason: reason, StatusCode: status, Err: pkgerrors.WithStack(err)}
}

func (e *FetchError) Error() string {
	if e.Reason == ReasonStatus {
		return fmt.Sprintf("fetch amphibians: %s %d: %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch amphibians: %s: %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetchFailed as a match so callers need not know the concrete type.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// ReasonOf extracts the failure reason from err. Errors that did not come
// from this package map to ReasonUnknown.
func ReasonOf(err error) Reason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ReasonUnknown
}
