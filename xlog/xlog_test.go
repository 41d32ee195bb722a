package xlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xset/lib/infra"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	res := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		res = append(res, m)
	}
	return res
}

func TestXLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerName("xset"),
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(buf),
	)
	require.Equal(t, "info", logger.Level())

	logger.Debug("hidden")
	logger.Info("info", zap.Int("size", 3))
	logger.Warn("warn")
	logger.Error(errors.New("boom"), "error")
	logger.Logf(zapcore.WarnLevel, "logf %d", 1)
	require.NoError(t, logger.Sync())

	entries := decodeLines(t, buf)
	require.Len(t, entries, 4)
	require.Equal(t, "info", entries[0]["msg"])
	require.Equal(t, "INFO", entries[0]["lvl"])
	require.Equal(t, "xset", entries[0]["component"])
	require.EqualValues(t, 3, entries[0]["size"])
	require.Equal(t, "warn", entries[1]["msg"])
	require.Equal(t, "boom", entries[2]["error"])
	require.Equal(t, "logf 1", entries[3]["msg"])
	require.Contains(t, entries[0]["callAt"], "xlog_test.go")

	buf.Reset()
	logger.IncreaseLogLevel(zapcore.DebugLevel)
	logger.Debug("shown")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestXLogger_ErrorStack(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerWriter(buf),
	)

	err := infra.WrapErrorStackWithMessage(errors.New("root cause"), "rbset")
	logger.ErrorStack(err, "fault")
	logger.ErrorStack(errors.New("plain"), "plain fault")
	logger.ErrorStack(nil, "no error")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	require.Equal(t, "rbset: root cause", entries[0]["error"])
	frames, ok := entries[0]["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestXLogger_ErrorStack")

	require.Equal(t, "plain", entries[1]["error"])
	require.NotContains(t, entries[1], "errorStack")
	require.NotContains(t, entries[2], "error")
}

func TestXLogger_PlainText(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(PlainText),
		WithXLoggerWriter(buf),
		WithXLoggerLevelEncoder(nil),
		WithXLoggerTimeEncoder(nil),
	)
	logger.Info("plain text", zap.String("k", "v"))
	require.Contains(t, buf.String(), "plain text")
	require.Contains(t, buf.String(), `{"k": "v"}`)
}

func TestXLogger_Options(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(nil))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.NotPanics(t, func() {
		NewXLogger(nil)
	})
}

func TestGetLogLevelOrDefault(t *testing.T) {
	testcases := []struct {
		in       string
		expected zapcore.Level
	}{
		{"", zapcore.DebugLevel},
		{"  ", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"Error", zapcore.ErrorLevel},
		{"fatal", zapcore.DebugLevel},
	}
	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.expected, getLogLevelOrDefault(tc.in))
		})
	}
}

func TestXLogger_EnvLevel(t *testing.T) {
	t.Setenv("XLOG_LVL", "warn")
	logger := NewXLogger(WithXLoggerWriter(&bytes.Buffer{}))
	require.Equal(t, "warn", logger.Level())
}
