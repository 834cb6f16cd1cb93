// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file integrates with OpenTelemetry: when a log call carries a
// context.Context with an active span, the span's trace ID can serve as the
// record's context tag, correlating log lines with tracing data.

package catlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// traceTag extracts the trace ID from the OpenTelemetry span context within
// ctx. It returns an empty string when no valid trace ID is present.
func traceTag(ctx context.Context) string {
	if span := trace.SpanFromContext(ctx); span != nil {
		sc := span.SpanContext()
		if sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}
	return ""
}
