// Package logging holds the logger shared by caption and its sub-packages.
//
// The root package exposes SetLogger/Logger; sub-packages that cannot import
// the root package without a cycle log through this package instead.
package logging

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Set installs l as the shared logger. Nil restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Once deduplicates warnings by key, so a condition that repeats every frame
// is reported a single time per process.
type Once struct {
	seen sync.Map
}

// Warn logs msg at warn level the first time key is seen.
func (o *Once) Warn(key, msg string, args ...any) {
	if _, loaded := o.seen.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	Logger().Warn(msg, args...)
}
