package caption

import (
	"log/slog"

	"github.com/gogpu/caption/internal/logging"
)

// SetLogger configures the logger for caption and all its sub-packages.
// By default, caption produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by caption:
//   - [slog.LevelDebug]: parameter type mismatches, frame cache statistics
//   - [slog.LevelInfo]: compositor construction
//   - [slog.LevelWarn]: font fallbacks, unknown effect types
//
// Example:
//
//	caption.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by caption.
// The returned logger is never nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
