// Package logging writes structured logs to a file, since the terminal
// belongs to the dashboard.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "rentflow"
	logFileName = "rentflow.log"
)

// Config selects the log level and destination.
type Config struct {
	Level string // "debug", "info", "warn", "error"; empty means info
	File  string // empty means the XDG state directory
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Init opens the log file and installs the global logger.
// The returned closer flushes and closes the file.
func Init(cfg Config) (io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		f.Close()
		return nil, err
	}

	SetOutput(f, level)
	return f, nil
}

// SetOutput installs a logger writing to w at the given level.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
