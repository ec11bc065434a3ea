// Package logger provides configured zerolog loggers.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

var configureOnce sync.Once

// configure makes .Stack() on error events render a pkg/errors stack, adding
// one when the error does not carry it already.
func configure() {
	configureOnce.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
			var st stackTracer
			if !pkgerrors.As(err, &st) {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

// ParseLevel accepts zerolog level names ("debug", "info", ...).
// An empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a JSON logger writing to w, tagged with the service name.
func New(w io.Writer, serviceName string, level zerolog.Level) zerolog.Logger {
	configure()
	return zerolog.New(w).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for interactive commands.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	configure()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}

// OpenFile opens path for appending, creating parent directories.
// The TUI owns the terminal, so its logs go to a file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
