package xlog

import (
	"bytes"
	"sync"
	"testing"
	"time"

	antsv2 "github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAntsXLogger_ParentLogLevelChanged(t *testing.T) {
	var logger *AntsXLogger
	logger.Printf("test %d", 123)
	NewAntsXLogger(nil).Printf("test %d", 123)

	out := &syncBuffer{}
	parentLogger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(out),
		WithXLoggerTimeEncoder(zapcore.ISO8601TimeEncoder),
		WithXLoggerLevelEncoder(zapcore.CapitalLevelEncoder),
	)
	logger = NewAntsXLogger(parentLogger)

	parentLogger.IncreaseLogLevel(zapcore.FatalLevel)
	logger.Printf("hidden %d", 123)
	require.NotContains(t, out.String(), "hidden")

	parentLogger.IncreaseLogLevel(zapcore.DebugLevel)
	logger.Printf("shown %d", 123)
	require.NoError(t, parentLogger.Sync())
	require.Contains(t, out.String(), `"msg":"shown 123"`)
	require.Contains(t, out.String(), `"component":"Ants"`)
}

func TestAntsXLogger_AntsPool(t *testing.T) {
	out := &syncBuffer{}
	parentLogger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(out),
	)
	logger := NewAntsXLogger(parentLogger)

	p, err := antsv2.NewPool(10, antsv2.WithLogger(logger))
	require.NoError(t, err)
	defer p.Release()

	done := make(chan struct{})
	err = p.Submit(func() {
		defer close(done)
		parentLogger.Logf(LogLevelDebug.zapLevel(), "test %d", 123)
	})
	require.NoError(t, err)
	<-done

	err = p.Submit(func() {
		panic("xlogger panic in ants pool")
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("xlogger panic in ants pool"))
	}, time.Second, 10*time.Millisecond)
	require.Contains(t, out.String(), `"msg":"test 123"`)
}
