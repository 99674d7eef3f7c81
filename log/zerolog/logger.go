// SPDX-License-Identifier: MIT

// Package zerolog backs log.Logger with github.com/rs/zerolog.
//
// Fields are handed to zerolog as a map, so zerolog's own encoders decide
// how each value is rendered (durations, errors, slices) and keys come out
// sorted.
package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bootci/log"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Empty or unknown names leave the output unfiltered.
	Level string
	// Out defaults to os.Stderr.
	Out io.Writer
	// JSON emits raw JSON lines instead of the human-readable console format.
	JSON bool
}

// Logger is a log.Logger writing through a zerolog.Logger. Context added
// with With lives in the zerolog context, not in a side map.
type Logger struct {
	zl zerolog.Logger
}

var _ log.Logger = (*Logger)(nil)

// New builds a timestamped zerolog logger from opts.
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(opts.Level); err == nil && opts.Level != "" {
		zl = zl.Level(level)
	}
	return Wrap(zl)
}

// Wrap adapts an existing zerolog logger.
func Wrap(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

func (l *Logger) Debug(msg string, fields ...log.Fields) { emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...log.Fields)  { emit(l.zl.Info(), msg, fields) }

func (l *Logger) Warn(err error, msg string, fields ...log.Fields) {
	emit(l.zl.Warn().Err(err), msg, fields)
}

func (l *Logger) Error(err error, msg string, fields ...log.Fields) {
	emit(l.zl.Error().Err(err), msg, fields)
}

// With returns a child logger carrying fields in its zerolog context.
func (l *Logger) With(fields log.Fields) log.Logger {
	if len(fields) == 0 {
		return l
	}
	return &Logger{zl: l.zl.With().Fields(map[string]any(fields)).Logger()}
}

// emit flattens the per-call field maps and sends the event. A nil event
// (level disabled) is a no-op in zerolog.
func emit(ev *zerolog.Event, msg string, fields []log.Fields) {
	var all log.Fields
	for _, f := range fields {
		all = all.Merge(f)
	}
	if len(all) > 0 {
		ev = ev.Fields(map[string]any(all))
	}
	ev.Msg(msg)
}
