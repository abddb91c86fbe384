// Package iologger sets up the default slog logger of rdftaxon.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gnames/rdftaxon/pkg/config"
)

// LogFileName is the name of the log file in the log directory.
const LogFileName = "rdftaxon.log"

var (
	mu sync.Mutex
	// current is the log file used by the default logger, nil when the
	// log does not go to a file.
	current *os.File
)

// Init makes a logger for cfg the default slog logger. With the "file"
// destination the log goes to LogFileName in logDir, which is truncated
// unless keep is true. A log file opened by an earlier Init is closed
// once the new logger is in place.
func Init(logDir string, cfg config.LogConfig, keep bool) error {
	mu.Lock()
	defer mu.Unlock()

	w, err := destination(logDir, cfg.Destination, keep)
	if err != nil {
		return err
	}

	hOpts := &slog.HandlerOptions{Level: level(cfg.Level)}
	var h slog.Handler = slog.NewJSONHandler(w, hOpts)
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, hOpts)
	}

	slog.SetDefault(slog.New(h))

	prev := current
	current, _ = w.(*os.File)
	if current == os.Stdout || current == os.Stderr {
		current = nil
	}
	if prev != nil && prev != current {
		_ = prev.Close()
	}
	return nil
}

// Close closes the log file, if any, and sends further log records to
// STDERR.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	err := current.Close()
	current = nil
	return err
}

func destination(logDir, dest string, keep bool) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
	default:
		return os.Stderr, nil
	}

	path := filepath.Join(logDir, LogFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if keep {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, CreateLogFileError(path, err)
	}
	return f, nil
}

func level(s string) slog.Level {
	var res slog.Level
	// unknown levels fall back to info
	if err := res.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return res
}
