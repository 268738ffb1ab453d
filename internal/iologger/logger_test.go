package iologger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/gnames/gntaxobox/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, parseLevel(v.level), v.level)
	}
}

func TestHandlerFormat(t *testing.T) {
	tests := []struct {
		format, prefix string
	}{
		{"json", "{"},
		{"text", "time="},
		{"tint", "time="},
		{"unknown", "{"},
	}
	for _, v := range tests {
		var buf bytes.Buffer
		h := newHandler(&buf, config.LogConfig{Format: v.format, Level: "info"})
		slog.New(h).Info("hello", "name", "Puma")
		assert.True(t, strings.HasPrefix(buf.String(), v.prefix), v.format)
		assert.Contains(t, buf.String(), "Puma", v.format)
	}
}

func TestInitFile(t *testing.T) {
	defaultLogger := slog.Default()
	defer slog.SetDefault(defaultLogger)

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "warn", Destination: "file"}
	path := filepath.Join(dir, LogFile)

	for i, appendLog := range []bool{false, true, false} {
		c, err := Init(dir, cfg, appendLog)
		require.NoError(t, err)
		slog.Info("skipped")
		slog.Warn("kept", "run", i)
		require.NoError(t, c.Close())

		bs, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(bs)), "\n")
		switch i {
		case 1:
			assert.Len(t, lines, 2)
		default:
			assert.Len(t, lines, 1)
		}
		assert.NotContains(t, string(bs), "skipped")
	}
}

func TestInitError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	_, err := Init(filepath.Join(t.TempDir(), "missing"), cfg, false)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Contains(t, gnErr.Vars[0], LogFile)
}
