package cinder

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// logger is the active package logger. cinder is single-threaded (one engine,
// one frame loop), so a plain variable is sufficient.
var logger = slog.New(nopHandler{})

// SetLogger configures logging for the package. By default cinder produces no
// log output. Pass nil to restore the default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: resource create/destroy, frame-level detail
//   - [slog.LevelInfo]: engine lifecycle (init, terminate)
//   - [slog.LevelWarn]: caller misuse that is tolerated (draw after destroy,
//     draw before build)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return logger
}
