package log_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/accessorgen/internal/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   log.LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, log.ParseLevel(in), in)
	}
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.log")

	logger, closers, err := log.SetupLogger("debug", path, "json")
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("decoded descriptor", "properties", 3)
	logger.Log(t.Context(), log.LevelTrace, "hidden")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"decoded descriptor"`)
	assert.Contains(t, string(data), `"properties":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggerRejectsFormat(t *testing.T) {
	_, _, err := log.SetupLogger("info", "", "xml")
	assert.Error(t, err)

	_, _, err = log.SetupLogger("info", filepath.Join(t.TempDir(), "x.log"), "xml")
	assert.Error(t, err)
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)

	raw.Log("profile.pb", []byte{0x0a, 0x02, 'h', 'i'})
	raw.Log("empty.pb", nil)

	out := buf.String()
	assert.Contains(t, out, "profile.pb: 4 bytes")
	assert.Contains(t, out, "0a 02 68 69")
	assert.NotContains(t, out, "empty.pb")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRawLoggerNoop(t *testing.T) {
	assert.NotPanics(t, func() { log.NewRaw(nil).Log("x", []byte{1}) })
}
