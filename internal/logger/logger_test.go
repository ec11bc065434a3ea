package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amphibians/internal/jsonutil"
)

func TestLogger_IncludesStackAndServiceOnError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "amphibians", zerolog.InfoLevel)

	log.Error().Stack().Err(errors.New("boom")).Msg("fetch failed")

	var m map[string]interface{}
	require.NoError(t, jsonutil.UnmarshalWithContext(buf.Bytes(), &m, "log line"))
	assert.Equal(t, "amphibians", m["service"])
	assert.Equal(t, "boom", m["error"])
	assert.Equal(t, "fetch failed", m["message"])
	assert.NotNil(t, m["stack"])
	assert.NotEmpty(t, m["time"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "amphibians", zerolog.WarnLevel)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsole_PlainText(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, zerolog.DebugLevel)
	log.Debug().Str("fetch_id", "abc").Msg("fetch started")

	out := buf.String()
	assert.Contains(t, out, "fetch started")
	assert.Contains(t, out, "fetch_id=abc")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestOpenFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "amphibians.log")
	f, err := OpenFile(path)
	require.NoError(t, err)

	_, err = f.WriteString("line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(b))
}
