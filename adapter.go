// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file provides the Adapter, a printf-style facade over LoggerWithCtx for
// handing a logger to packages that should not depend on this library's full
// API. SimpleLogger and ExtendedLogger are the minimal interfaces such
// packages can declare.

package catlog

import (
	"context"
	"fmt"
)

// SimpleLogger is a minimal printf-style logging interface for external
// packages.
type SimpleLogger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ExtendedLogger extends SimpleLogger with Fatal.
type ExtendedLogger interface {
	SimpleLogger
	Fatal(format string, args ...any)
}

// Adapter wraps a LoggerWithCtx so callers can log without passing a context
// on every call. It satisfies ExtendedLogger.
type Adapter struct {
	lw LoggerWithCtx
}

var _ ExtendedLogger = (*Adapter)(nil)

// NewAdapter creates an Adapter from lw. It panics when lw carries no
// Logger.
func NewAdapter(lw LoggerWithCtx) *Adapter {
	if lw.l == nil {
		panic("catlog: NewAdapter received LoggerWithCtx with nil *Logger")
	}
	if lw.ctx == nil {
		lw.ctx = context.Background()
	}
	return &Adapter{lw: lw}
}

// NewAdapterFor resolves category against the package-level registry and
// binds the result to ctx.
func NewAdapterFor(ctx context.Context, category string) *Adapter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Adapter{lw: GetLogger(category).WithContext(ctx)}
}

// Context returns the adapter's bound context.
func (a *Adapter) Context() context.Context {
	return a.lw.ctx
}

// WithContext returns a new Adapter bound to ctx, sharing the same *Logger.
func (a *Adapter) WithContext(ctx context.Context) *Adapter {
	return &Adapter{lw: LoggerWithCtx{l: a.lw.l, ctx: ctx}}
}

// WithTag returns a new Adapter whose context carries tag.
func (a *Adapter) WithTag(tag string) *Adapter {
	return a.WithContext(ContextWithTag(a.lw.ctx, tag))
}

// Debug logs a formatted message at the DEBUG level.
func (a *Adapter) Debug(format string, args ...any) {
	a.lw.Log(DEBUG, fmt.Sprintf(format, args...))
}

// Info logs a formatted message at the INFO level.
func (a *Adapter) Info(format string, args ...any) {
	a.lw.Log(INFO, fmt.Sprintf(format, args...))
}

// Warn logs a formatted message at the WARN level.
func (a *Adapter) Warn(format string, args ...any) {
	a.lw.Log(WARN, fmt.Sprintf(format, args...))
}

// Error logs a formatted message at the ERROR level.
func (a *Adapter) Error(format string, args ...any) {
	a.lw.Log(ERROR, fmt.Sprintf(format, args...))
}

// Fatal logs a formatted message at the FATAL level. Like Logger.Fatal it
// does not terminate the process.
func (a *Adapter) Fatal(format string, args ...any) {
	a.lw.Log(FATAL, fmt.Sprintf(format, args...))
}
