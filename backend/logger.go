package backend

import (
	"log/slog"
	"sync/atomic"

	"arcade/internal/logx"
)

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// race with a running backend.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logx.Nop())
}

// SetLogger configures the logger handed to every port built by Init.
// By default the backend produces no log output. Pass nil to silence it
// again.
//
// Log levels used by the backend:
//   - [slog.LevelDebug]: texture, font face and sound lifecycle
//   - [slog.LevelInfo]: backend and audio device init/shutdown
//   - [slog.LevelWarn]: non-fatal host errors (present, playback)
//
// Ports already built keep the logger they were given.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(logx.OrNop(l))
}

// Logger returns the current backend logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
