package showtxt

import "context"
import "log/slog"
import "sync/atomic"

// Discards all log records. Enabled returns false, so callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// Sets the logger used by showtxt. By default, nothing is logged.
// Passing nil restores the silent default. Safe for concurrent use.
//
// Log levels:
//   - [slog.LevelDebug]: cache fills and fallback lookups.
//   - [slog.LevelInfo]: interception begin and end.
//   - [slog.LevelWarn]: glyphs replaced by the missing glyph.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = newNopLogger() }
	loggerPtr.Store(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
