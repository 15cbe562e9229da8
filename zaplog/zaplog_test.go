package zaplog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediwo/redi-log/logger"
)

func TestNewValidatesConfig(t *testing.T) {
	l, err := New("worker", logger.Config{Level: "bogus"})
	require.Error(t, err)
	assert.Nil(t, l)

	var cfgErr *logger.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "level", cfgErr.Option)
	assert.Equal(t, "bogus", cfgErr.Value)

	_, err = New("", logger.Config{Level: "info"})
	require.Error(t, err)
}

func TestZapLoggerFiltersAndNames(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("worker", logger.Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error %d", 7)
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kept warn")
	assert.Contains(t, lines[0], "worker")
	assert.Contains(t, lines[1], "kept error 7")
}

func TestZapLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("worker", logger.Config{Level: "error", Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, logger.LogLevelError, l.GetLevel())

	l.Info("dropped")
	l.SetLevel(logger.LogLevelDebug)
	assert.Equal(t, logger.LogLevelDebug, l.GetLevel())

	l.Debug("now visible")
	require.NoError(t, l.Sync())
	assert.Contains(t, buf.String(), "now visible")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestZapLoggerJSONMode(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("worker", logger.Config{Level: "info", JSON: true, Output: &buf})
	require.NoError(t, err)

	l.Info("structured")
	require.NoError(t, l.Sync())

	assert.Contains(t, buf.String(), `"message":"structured"`)
	assert.Contains(t, buf.String(), `"logger":"worker"`)
}

func TestZapLoggerImplementsInterface(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("worker", logger.Config{Level: "debug", Output: &buf})
	require.NoError(t, err)

	var iface logger.Logger = l
	iface.Info("through the interface")
	require.NoError(t, l.Sync())
	assert.Contains(t, buf.String(), "through the interface")

	assert.Equal(t, "worker", iface.Name())
}
