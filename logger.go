// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the Logger: a named category with a severity threshold
// and an ordered list of sinks. Dispatch is fully synchronous: a log call
// formats the record once and invokes every sink in registration order before
// returning. A failing sink is reported on the diagnostics writer and never
// blocks the remaining sinks or the caller.

package catlog

import (
	"fmt"
	"time"
)

// Logger owns a category name, a severity threshold, and an ordered,
// non-empty list of sinks. Create instances through New or let the Registry
// build them from configuration; the category is immutable afterwards while
// the threshold may change at runtime via SetLevel.
type Logger struct {
	category  string
	pattern   string
	threshold atomicLevel
	sinks     []Sink
	resolver  CallSiteFunc
	clock     TimeSource
	now       func() time.Time
}

// Option customizes a Logger during construction.
type Option func(*Logger)

// WithPattern sets the logger's format pattern. An empty pattern keeps
// DefaultPattern.
func WithPattern(pattern string) Option {
	return func(l *Logger) { l.pattern = pattern }
}

// WithCallSite replaces the stack-based call-site resolver, for wrapper
// packages that need extra frames skipped or for tests.
func WithCallSite(fn CallSiteFunc) Option {
	return func(l *Logger) { l.resolver = fn }
}

// WithTimeSource supplies the domain clock backing the %DATE placeholder.
func WithTimeSource(ts TimeSource) Option {
	return func(l *Logger) { l.clock = ts }
}

// New constructs a Logger. It panics on an empty category, an invalid
// threshold, or an empty sink list: these indicate a defect in the calling
// code, not a runtime condition to recover from.
func New(category string, threshold Level, sinks []Sink, opts ...Option) *Logger {
	if category == "" {
		panic("catlog: logger category must not be empty")
	}
	mustLevel(threshold, true)
	if len(sinks) == 0 {
		panic("catlog: logger requires at least one sink")
	}
	for _, s := range sinks {
		if s == nil {
			panic("catlog: logger sinks must not be nil")
		}
	}
	l := &Logger{
		category: category,
		sinks:    append([]Sink(nil), sinks...),
		now:      time.Now,
	}
	l.threshold.Store(int32(threshold))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Category returns the logger's immutable category name.
func (l *Logger) Category() string { return l.category }

// Pattern returns the pattern used to render this logger's records.
func (l *Logger) Pattern() string {
	if l.pattern == "" {
		return DefaultPattern
	}
	return l.pattern
}

// Level returns the current severity threshold.
func (l *Logger) Level() Level { return Level(l.threshold.Load()) }

// SetLevel replaces the severity threshold. OFF silences the logger.
// An unrecognized level panics; in-flight log calls are unaffected.
func (l *Logger) SetLevel(lvl Level) {
	mustLevel(lvl, true)
	l.threshold.Store(int32(lvl))
}

// IsEnabled reports whether a record at lvl would reach the sinks, letting
// callers skip expensive message construction. lvl must be a loggable
// severity (not OFF).
func (l *Logger) IsEnabled(lvl Level) bool {
	mustLevel(lvl, false)
	return lvl >= Level(l.threshold.Load())
}

// logOptions carries the optional parts of a log call.
type logOptions struct {
	err error
	tag string
}

// LogOption attaches optional metadata to a single log call.
type LogOption func(*logOptions)

// WithError attaches an error value, substituted for %ERROR in the pattern.
func WithError(err error) LogOption {
	return func(o *logOptions) { o.err = err }
}

// WithTag attaches a locale/context tag, substituted for %COUNTRY.
func WithTag(tag string) LogOption {
	return func(o *logOptions) { o.tag = tag }
}

// Log dispatches a record at lvl. The message may be a string or a
// structured value; structured values are rendered by the bounded-depth
// dump. The record is gated on the threshold, formatted once, and delivered
// to every sink in registration order. lvl must be a recognized, loggable
// severity: OFF or an out-of-range value panics.
func (l *Logger) Log(lvl Level, msg any, opts ...LogOption) {
	mustLevel(lvl, false)
	if lvl < Level(l.threshold.Load()) {
		return
	}
	var o logOptions
	for _, opt := range opts {
		opt(&o)
	}
	l.dispatch(lvl, msg, o)
}

func (l *Logger) dispatch(lvl Level, msg any, o logOptions) {
	line := formatWith(l.pattern, Record{Level: lvl, Message: msg, Err: o.err, Tag: o.tag}, l.resolver, l.clock, l.now)
	for _, s := range l.sinks {
		l.notify(s, lvl, line, o.err, o.tag)
	}
}

// notify delivers the rendered line to a single sink, containing failures so
// they cannot abort the remaining sinks or propagate to the caller.
func (l *Logger) notify(s Sink, lvl Level, line string, err error, tag string) {
	defer func() {
		if r := recover(); r != nil {
			diagf("sink panic in logger %q: %v", l.category, r)
		}
	}()
	if nerr := s.Notify(l, lvl, line, err, tag); nerr != nil {
		diagf("sink error in logger %q: %v", l.category, nerr)
	}
}

// Debug logs a message at the DEBUG level.
func (l *Logger) Debug(msg any, opts ...LogOption) { l.Log(DEBUG, msg, opts...) }

// Info logs a message at the INFO level.
func (l *Logger) Info(msg any, opts ...LogOption) { l.Log(INFO, msg, opts...) }

// Warn logs a message at the WARN level.
func (l *Logger) Warn(msg any, opts ...LogOption) { l.Log(WARN, msg, opts...) }

// Error logs a message at the ERROR level.
func (l *Logger) Error(msg any, opts ...LogOption) { l.Log(ERROR, msg, opts...) }

// Fatal logs a message at the FATAL level. It does not terminate the
// process; FATAL is the most severe loggable rank, nothing more.
func (l *Logger) Fatal(msg any, opts ...LogOption) { l.Log(FATAL, msg, opts...) }

// Debugf logs a formatted message at the DEBUG level.
func (l *Logger) Debugf(format string, args ...any) { l.Log(DEBUG, fmt.Sprintf(format, args...)) }

// Infof logs a formatted message at the INFO level.
func (l *Logger) Infof(format string, args ...any) { l.Log(INFO, fmt.Sprintf(format, args...)) }

// Warnf logs a formatted message at the WARN level.
func (l *Logger) Warnf(format string, args ...any) { l.Log(WARN, fmt.Sprintf(format, args...)) }

// Errorf logs a formatted message at the ERROR level.
func (l *Logger) Errorf(format string, args ...any) { l.Log(ERROR, fmt.Sprintf(format, args...)) }

// Fatalf logs a formatted message at the FATAL level.
func (l *Logger) Fatalf(format string, args ...any) { l.Log(FATAL, fmt.Sprintf(format, args...)) }
