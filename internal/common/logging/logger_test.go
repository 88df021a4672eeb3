package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T, level LogLevel) (Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger, err := NewZapLogger(LogConfig{Level: level, Output: buf})
	require.NoError(t, err)
	return logger, buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARNING"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("nonsense"), "unknown levels default to info")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestZapAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(t, WarnLevel)

	logger.Info("below threshold")
	logger.Warn("above threshold")

	output := buf.String()
	assert.NotContains(t, output, "below threshold")
	assert.Contains(t, output, "above threshold")
}

func TestZapAdapter_WithFields(t *testing.T) {
	logger, buf := newBufferedLogger(t, InfoLevel)

	logger.WithFields(String("component", "match_engine")).
		Info("Event processed", Int("matched_triggers", 2))

	output := buf.String()
	assert.Contains(t, output, "match_engine")
	assert.Contains(t, output, "matched_triggers")
}

func TestZapAdapter_ErrorField(t *testing.T) {
	logger, buf := newBufferedLogger(t, InfoLevel)

	logger.Error("Delivery failed", errors.New("downstream unavailable"))

	assert.Contains(t, buf.String(), "downstream unavailable")
}
