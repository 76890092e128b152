package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "color-game"

// DefaultLevel keeps a normal run silent; per-round tracing shows up at debug.
const DefaultLevel = "warn"

// New returns a timestamped logger writing to w at the named level
// ("debug", "info", "warn", "error"). A nil w means stderr.
func New(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything. Used by tests and as a nil-safe default.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
