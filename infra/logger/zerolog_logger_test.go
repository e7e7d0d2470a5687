package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"k": 2})
	l.Warnf("warn")
	l.Errorf("error")
}

func TestNewWithWriterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "planner", "")
	l.Debugf("hidden")
	l.Infow("run done", map[string]any{"tasks": 615})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "planner", rec["component"])
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "run done", rec["message"])
	assert.EqualValues(t, 615, rec["tasks"])
}

func TestNewWithWriterDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "planner", "DEBUG")
	l.Debugf("visible %d", 1)
	assert.Contains(t, buf.String(), "visible 1")
}

func TestConfigure(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Cleanup(func() { Configure("", "") })
	Configure("error", "json")
	l, ok := NewZerologLogger("test").(*ZerologLogger)
	require.True(t, ok)
	assert.Equal(t, "error", l.log.GetLevel().String())
}
