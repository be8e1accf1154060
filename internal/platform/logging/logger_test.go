package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestLoggerWritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.Info("column added", "table", "players", "error", errors.New("boom"), "dangling")
	require.NoError(t, logger.Zap().Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"column added"`)
	assert.Contains(t, out, `"table":"players"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"dangling":null`)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("noop")
		_ = l.Sync()
	})
}
