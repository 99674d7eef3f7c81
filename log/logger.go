// SPDX-License-Identifier: MIT

// Package log defines the structured-logging surface shared by the
// bootstrap engine and the bootci command. Library code never chooses a
// backend: it logs through Logger, and Discard is used until a caller
// supplies an adapter such as log/zerolog.
package log

// ComponentKey is the field naming the part of bootci that emitted an entry.
const ComponentKey = "component"

// Fields are key/value pairs attached to a log entry.
type Fields map[string]any

// Merge returns a new Fields holding f overlaid with other; keys in other
// win. Neither receiver nor argument is modified.
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Logger is implemented by logging backends. Warn and Error take the
// error separately so backends can render it as a typed field.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(err error, msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// With returns a Logger that adds fields to every entry. The receiver
	// is unchanged.
	With(fields Fields) Logger
}

// Discard drops every entry.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debug(string, ...Fields)        {}
func (discard) Info(string, ...Fields)         {}
func (discard) Warn(error, string, ...Fields)  {}
func (discard) Error(error, string, ...Fields) {}
func (d discard) With(Fields) Logger           { return d }

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}

// Component tags l with the emitting component.
func Component(l Logger, name string) Logger {
	return OrDiscard(l).With(Fields{ComponentKey: name})
}
