package iologger

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepDefault(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() {
		_ = Close()
		slog.SetDefault(orig)
	})
}

func TestInitFile(t *testing.T) {
	keepDefault(t)
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first run")
	slog.Debug("hidden")

	path := filepath.Join(dir, LogFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"first run"`)
	assert.NotContains(t, string(data), "hidden")

	cfg.Format = "text"
	require.NoError(t, Init(dir, cfg, true))
	slog.Info("second run")

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "msg=\"second run\"")

	require.NoError(t, Init(dir, cfg, false))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data, "log file should be truncated")
}

func TestInitClosesPreviousFile(t *testing.T) {
	keepDefault(t)
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, Init(dir, cfg, false))
	first := current
	require.NotNil(t, first)

	require.NoError(t, Init(dir, cfg, true))
	require.NotNil(t, current)
	assert.NotSame(t, first, current)

	_, err := first.WriteString("late write")
	assert.ErrorIs(t, err, os.ErrClosed, "earlier log file should be closed")

	slog.Info("after reinit")
	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "after reinit")

	last := current
	cfg.Destination = "stderr"
	require.NoError(t, Init(dir, cfg, true))
	assert.Nil(t, current)
	_, err = last.WriteString("late write")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestClose(t *testing.T) {
	keepDefault(t)
	dir := t.TempDir()
	cfg := config.LogConfig{Destination: "file"}

	require.NoError(t, Init(dir, cfg, false))
	f := current
	require.NoError(t, Close())
	assert.Nil(t, current)

	_, err := f.WriteString("late write")
	assert.ErrorIs(t, err, os.ErrClosed)

	// nothing to close
	assert.NoError(t, Close())
}

func TestInitError(t *testing.T) {
	keepDefault(t)
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Destination: "file"}

	err := Init(dir, cfg, false)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Equal(t, filepath.Join(dir, LogFileName), gnErr.Vars[0])
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.res, level(tt.level), tt.level)
	}
}
