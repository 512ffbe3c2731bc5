package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestSetOutput_WritesCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "debug")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "error") })

	Debug(CatSound, "retired instance", "event", "explosion")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "retired instance", rec["msg"])
	require.Equal(t, "sound", rec["cat"])
	require.Equal(t, "explosion", rec["event"])
}

func TestSetOutput_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "error") })

	Info(CatConfig, "hidden")
	Warn(CatConfig, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestErrorErr_AttachesError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "info")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "error") })

	ErrorErr(CatEngine, "release failed", errors.New("invalid handle"), "instance", "abc")

	out := buf.String()
	require.Contains(t, out, `"error":"invalid handle"`)
	require.Contains(t, out, `"instance":"abc"`)
}

func TestInit_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "audioreg.log")
	closeFn, err := Init(path, "info")
	require.NoError(t, err)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "error") })

	Info(CatConfig, "hello")
	require.NoError(t, closeFn())
	require.FileExists(t, path)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	var buf syncBuffer
	SetOutput(&buf, "error")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "error") })

	SafeGo(CatScript, "test.panic", func() { panic("boom") })

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "goroutine panicked")
	}, time.Second, 10*time.Millisecond)
	require.Contains(t, buf.String(), `"cat":"script"`)
	require.Contains(t, buf.String(), `"goroutine":"test.panic"`)
}

// syncBuffer guards a bytes.Buffer written from SafeGo goroutines.
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
