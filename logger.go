package replay

import (
	"log/slog"

	"github.com/gogpu/replay/internal/logging"
)

// SetLogger configures the logger for replay and all its sub-packages.
// By default, replay produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by replay:
//   - [slog.LevelDebug]: cache misses and evictions, surface allocation
//   - [slog.LevelWarn]: malformed fonts, unknown executors
//
// Example:
//
//	replay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by replay.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
