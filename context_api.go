// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file provides the context.Context integration: attaching a context tag
// to a ctx, deriving one back out (falling back to the active OpenTelemetry
// trace ID), and the LoggerWithCtx wrapper that binds a Logger to a context
// so log calls pick the tag up automatically.

package catlog

import "context"

// ctxTagKey is a private type to prevent context key collisions.
type ctxTagKey struct{}

// ContextWithTag attaches a context tag to ctx. The tag surfaces through the
// %COUNTRY placeholder on log calls made via a LoggerWithCtx.
func ContextWithTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, ctxTagKey{}, tag)
}

// TagFromContext derives the context tag for a log call. An explicitly
// attached tag wins; otherwise the trace ID of the active OpenTelemetry span
// is used, so %COUNTRY can carry trace correlation. Returns an empty string
// when neither is present.
func TagFromContext(ctx context.Context) string {
	if tag, ok := ctx.Value(ctxTagKey{}).(string); ok && tag != "" {
		return tag
	}
	return traceTag(ctx)
}

// LoggerWithCtx is a lightweight wrapper binding a *Logger to a
// context.Context. Log calls made through it derive their context tag from
// the context unless an explicit WithTag option overrides it.
type LoggerWithCtx struct {
	l   *Logger
	ctx context.Context
}

// WithContext binds the logger to ctx.
func (l *Logger) WithContext(ctx context.Context) LoggerWithCtx {
	return LoggerWithCtx{l: l, ctx: ctx}
}

// Logger returns the wrapped *Logger.
func (lw LoggerWithCtx) Logger() *Logger { return lw.l }

// Context returns the bound context.
func (lw LoggerWithCtx) Context() context.Context { return lw.ctx }

// Log dispatches a record, deriving the context tag from the bound context.
// An explicit WithTag option takes precedence because options apply in order.
func (lw LoggerWithCtx) Log(lvl Level, msg any, opts ...LogOption) {
	if tag := TagFromContext(lw.ctx); tag != "" {
		opts = append([]LogOption{WithTag(tag)}, opts...)
	}
	lw.l.Log(lvl, msg, opts...)
}

// Debug logs a message at the DEBUG level.
func (lw LoggerWithCtx) Debug(msg any, opts ...LogOption) { lw.Log(DEBUG, msg, opts...) }

// Info logs a message at the INFO level.
func (lw LoggerWithCtx) Info(msg any, opts ...LogOption) { lw.Log(INFO, msg, opts...) }

// Warn logs a message at the WARN level.
func (lw LoggerWithCtx) Warn(msg any, opts ...LogOption) { lw.Log(WARN, msg, opts...) }

// Error logs a message at the ERROR level.
func (lw LoggerWithCtx) Error(msg any, opts ...LogOption) { lw.Log(ERROR, msg, opts...) }

// Fatal logs a message at the FATAL level.
func (lw LoggerWithCtx) Fatal(msg any, opts ...LogOption) { lw.Log(FATAL, msg, opts...) }
