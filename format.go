// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the pattern formatter: it renders a message context into
// the final log line by global placeholder substitution, gating the expensive
// call-site resolution on the tokens the pattern actually contains.

package catlog

import (
	"strings"
	"time"
)

// DefaultPattern is used whenever a logger is constructed without an explicit
// pattern. %COUNTRY carries the generic context tag of the record.
const DefaultPattern = "[%DATE] [%LEVEL] [%COUNTRY] %MESSAGE at %FILE:%LINE(%METHOD)\n"

// rdateLayout renders %RDATE, the wall-clock timestamp.
const rdateLayout = "2006-01-02 15:04:05"

// naMarker substitutes call-site placeholders when resolution fails.
const naMarker = "n/a"

// callSiteTokens are the placeholders whose presence triggers call-site
// resolution. Patterns without any of them never pay for a stack walk.
var callSiteTokens = [...]string{"%PATH", "%FILE", "%LINE", "%METHOD", "%STACKTRACE"}

// escSentinel temporarily stands in for literal '%' characters from user data
// so they can never be interpreted as placeholder tokens.
const escSentinel = "\x00"

// Format renders a log line from pattern and rec. An empty pattern selects
// DefaultPattern. resolve is consulted only when the pattern contains a
// call-site placeholder; pass nil to use the package's default stack-based
// resolver. Formatting always returns a string and never panics: a failing
// resolver degrades the call-site placeholders to "n/a".
func Format(pattern string, rec Record, resolve CallSiteFunc) string {
	return formatWith(pattern, rec, resolve, nil, nil)
}

// formatWith is the full formatting pipeline with injectable time sources.
// clock feeds %DATE (nil renders it empty), now feeds %RDATE (nil means
// time.Now).
func formatWith(pattern string, rec Record, resolve CallSiteFunc, clock TimeSource, now func() time.Time) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	out := pattern

	if needsCallSite(out) {
		cs := safeResolve(resolve)
		out = strings.ReplaceAll(out, "%STACKTRACE", cs.Stack)
		out = strings.ReplaceAll(out, "%PATH", cs.Path)
		out = strings.ReplaceAll(out, "%FILE", cs.File)
		out = strings.ReplaceAll(out, "%LINE", cs.Line)
		out = strings.ReplaceAll(out, "%METHOD", cs.Method)
	}

	if now == nil {
		now = time.Now
	}
	out = strings.ReplaceAll(out, "%RDATE", now().Format(rdateLayout))

	stamp := ""
	if clock != nil {
		stamp = clock.Stamp()
	}
	out = strings.ReplaceAll(out, "%DATE", stamp)

	out = strings.ReplaceAll(out, "%LEVEL", rec.Level.String())
	out = strings.ReplaceAll(out, "%MESSAGE", escapePercent(renderMessage(rec.Message)))
	out = strings.ReplaceAll(out, "%COUNTRY", escapePercent(rec.Tag))

	// %ERROR is left as a literal token when no error accompanies the record.
	// The original facility behaved this way and downstream patterns may rely
	// on it, so it is kept rather than substituting an empty string.
	if rec.Err != nil {
		out = strings.ReplaceAll(out, "%ERROR", escapePercent(rec.Err.Error()))
	}

	return strings.ReplaceAll(out, escSentinel, "%")
}

// needsCallSite reports whether pattern references any call-site placeholder.
func needsCallSite(pattern string) bool {
	for _, tok := range callSiteTokens {
		if strings.Contains(pattern, tok) {
			return true
		}
	}
	return false
}

// safeResolve invokes resolve, containing any failure. A nil resolve falls
// back to the default stack-based resolver. Errors and panics both degrade
// to the neutral "n/a" call site.
func safeResolve(resolve CallSiteFunc) (cs CallSite) {
	cs = CallSite{Path: naMarker, File: naMarker, Line: naMarker, Method: naMarker, Stack: naMarker}
	if resolve == nil {
		resolve = ResolveCallSite
	}
	defer func() {
		if r := recover(); r != nil {
			diagf("call-site resolver panic: %v", r)
			cs = CallSite{Path: naMarker, File: naMarker, Line: naMarker, Method: naMarker, Stack: naMarker}
		}
	}()
	if got, err := resolve(); err == nil {
		cs = got
	}
	return cs
}

// escapePercent swaps literal '%' characters for a sentinel that survives
// placeholder substitution untouched and is restored at the end of the
// pipeline. NUL bytes already present in the data are stripped first, so
// they cannot collide with the sentinel and surface as '%' after the
// restore.
func escapePercent(s string) string {
	s = strings.ReplaceAll(s, escSentinel, "")
	return strings.ReplaceAll(s, "%", escSentinel)
}
