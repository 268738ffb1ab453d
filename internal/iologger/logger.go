// Package iologger sets up the default slog logger of GNtaxobox.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gntaxobox/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gntaxobox.log"

// Init replaces the default slog logger according to cfg. For the "file"
// destination the log goes to LogFile in logDir, which is truncated
// unless append is true. The returned closer releases the log file and
// is a no-op for standard streams.
func Init(logDir string, cfg config.LogConfig, append bool) (io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch cfg.Destination {
	case "stdout":
		w = os.Stdout
	case "file":
		path := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flags, 0644)
		if err != nil {
			return nil, CreateLogFileError(path, err)
		}
		w, closer = f, f
	}

	slog.SetDefault(slog.New(newHandler(w, cfg)))
	return closer, nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	switch cfg.Format {
	case "text", "tint":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
