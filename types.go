// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file defines the core data structures and interfaces used throughout the
// library: severity levels, the Sink capability, call-site information, and the
// message context handed to the pattern formatter.

package catlog

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Level represents the severity of a log entry.
// The zero value for Level is DEBUG.
type Level int32

// Log level constants, ordered by increasing severity.
const (
	// DEBUG level is for detailed information, typically of interest only when diagnosing problems.
	DEBUG Level = iota
	// INFO level is for informational messages that highlight the progress of the application.
	INFO
	// WARN level is for potentially harmful situations or events that are not errors.
	WARN
	// ERROR level is for error events that might still allow the application to continue running.
	ERROR
	// FATAL level is for severe error events that will presumably lead the application to abort.
	FATAL
	// OFF silences a logger entirely. It is a threshold-only sentinel: a logger
	// may have its threshold set to OFF, but logging a message at OFF is a
	// programmer error.
	OFF
)

// String returns the uppercase string representation of the log level.
func (lvl Level) String() string {
	switch lvl {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name into a Level. Matching is case-insensitive
// and surrounding whitespace is ignored.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	case "OFF":
		return OFF, nil
	}
	return DEBUG, fmt.Errorf("catlog: unrecognized level %q", s)
}

// mustLevel validates that lvl is a recognized severity. Passing an
// unrecognized level, or OFF where allowOff is false, is a programmer error
// and panics with a descriptive message.
func mustLevel(lvl Level, allowOff bool) {
	if lvl < DEBUG || lvl > OFF {
		panic(fmt.Sprintf("catlog: invalid level %d", int32(lvl)))
	}
	if lvl == OFF && !allowOff {
		panic("catlog: OFF is a threshold-only sentinel and cannot be logged at")
	}
}

// Sink is the delivery capability a Logger dispatches rendered records to.
// A sink receives the owning logger, the record's level, the fully rendered
// log line, and the optional error value and context tag that accompanied the
// log call. Errors returned by Notify (and panics raised inside it) are
// reported on the diagnostics writer and never reach the caller of Log.
type Sink interface {
	Notify(l *Logger, lvl Level, line string, err error, tag string) error
}

// CallSite describes the originating source location of a log call,
// excluding frames that belong to the logging facility itself. All fields
// are plain strings so that resolver failures can degrade to "n/a" markers.
type CallSite struct {
	Path   string // full source path of the call site
	File   string // Path with directory components stripped
	Line   string // decimal line number
	Method string // enclosing function or method name
	Stack  string // raw, unfiltered stack dump for %STACKTRACE
}

// CallSiteFunc produces the call site of the log call currently being
// formatted. The pattern formatter invokes it only when the pattern actually
// references a call-site placeholder, since walking the stack is costly.
type CallSiteFunc func() (CallSite, error)

// TimeSource supplies the value of the %DATE placeholder. It abstracts an
// in-simulation or domain clock; when no source is configured, %DATE renders
// as an empty string. Wall-clock time is always available through %RDATE.
type TimeSource interface {
	Stamp() string
}

// Record is the transient message context handed to the pattern formatter.
type Record struct {
	Level   Level
	Message any    // string, or a structured value rendered by the bounded-depth dump
	Err     error  // optional error substituted for %ERROR
	Tag     string // optional locale/context tag substituted for %COUNTRY
}

// atomicLevel provides atomic operations for the Level type (int32).
type atomicLevel struct{ v int32 }

func (a *atomicLevel) Load() int32     { return atomic.LoadInt32(&a.v) }
func (a *atomicLevel) Store(val int32) { atomic.StoreInt32(&a.v, val) }
