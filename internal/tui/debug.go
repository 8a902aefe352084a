package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
)

// DebugLogger logs keystrokes, mode and day changes, and errors to a file.
type DebugLogger struct {
	mu      sync.Mutex
	logger  *log.Logger
	closer  io.Closer
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// The file at path is truncated.
func InitDebugLogger(enabled bool, path string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = newDebugLogger(f, f)
	debugLog.log("DEBUG_START", "log_file", path)
	return nil
}

// newDebugLogger builds an enabled logger writing JSON lines to w.
func newDebugLogger(w io.Writer, closer io.Closer) *DebugLogger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           log.DebugLevel,
		Formatter:       log.JSONFormatter,
	})
	return &DebugLogger{logger: logger, closer: closer, enabled: true}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("DEBUG_END")
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, keyvals ...any) {
	if d == nil || !d.enabled || d.logger == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.logger.Debug(event, append([]any{"seq", d.seq}, keyvals...)...)
}

// LogKeyPress logs a key press.
func LogKeyPress(key string, mode app.Mode) {
	debugLog.log("KEY_PRESS", "key", key, "mode", mode.String())
}

// LogModeChange logs a mode change.
func LogModeChange(from, to app.Mode, key string) {
	if from == to {
		return
	}
	debugLog.log("MODE_CHANGE", "from", from.String(), "to", to.String(), "key", key)
}

// LogDayChange logs a successful day switch or reload.
func LogDayChange(s *app.State) {
	debugLog.log("DAY_CHANGE", "day", s.Day().String(), "talks", len(s.Talks()))
}

// LogReloadFailed logs a failed load; the previous day stays on screen.
func LogReloadFailed(s *app.State, err error) {
	debugLog.log("RELOAD_FAILED", "day", s.Day().String(), "error", err.Error())
}

// LogError logs an error.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.log("ERROR", "context", context, "error", err.Error())
}
