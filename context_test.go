// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package catlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func spanContextWithTraceID(t *testing.T, hexID string) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex(hexID)
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestTagFromContext(t *testing.T) {
	require.Empty(t, TagFromContext(context.Background()))

	ctx := ContextWithTag(context.Background(), "vi-VN")
	require.Equal(t, "vi-VN", TagFromContext(ctx))
}

func TestTagFromContextDerivesTraceID(t *testing.T) {
	const hexID = "0102030405060708090a0b0c0d0e0f10"
	ctx := spanContextWithTraceID(t, hexID)
	require.Equal(t, hexID, TagFromContext(ctx))
}

func TestExplicitTagBeatsTraceID(t *testing.T) {
	ctx := spanContextWithTraceID(t, "0102030405060708090a0b0c0d0e0f10")
	ctx = ContextWithTag(ctx, "vi-VN")
	require.Equal(t, "vi-VN", TagFromContext(ctx))
}

func TestContextTagFlowsIntoPattern(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink}, WithPattern("[%COUNTRY] %MESSAGE\n"))

	ctx := ContextWithTag(context.Background(), "vi-VN")
	l.WithContext(ctx).Info("xin chào")

	require.Equal(t, "[vi-VN] xin chào\n", sink.last().line)
	require.Equal(t, "vi-VN", sink.last().tag)
}

func TestExplicitOptionOverridesContextTag(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink}, WithPattern("[%COUNTRY] %MESSAGE\n"))

	ctx := ContextWithTag(context.Background(), "from-context")
	l.WithContext(ctx).Warn("m", WithTag("explicit"))

	require.Equal(t, "[explicit] m\n", sink.last().line)
}

func TestLoggerWithCtxAccessors(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink})
	ctx := ContextWithTag(context.Background(), "x")

	lw := l.WithContext(ctx)
	require.Same(t, l, lw.Logger())
	require.Equal(t, ctx, lw.Context())
}

func TestLoggerWithCtxRespectsThreshold(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", ERROR, []Sink{sink})
	lw := l.WithContext(ContextWithTag(context.Background(), "x"))

	lw.Debug("d")
	lw.Info("i")
	lw.Warn("w")
	require.Zero(t, sink.count())

	lw.Error("e")
	lw.Fatal("f")
	require.Equal(t, 2, sink.count())
}
