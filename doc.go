// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog is a lightweight, embeddable logging facility. Callers
// obtain a named logger by category, and each logger dispatches rendered
// records to one or more sinks (console, rotating file, email) subject to a
// severity threshold.
//
// Severity levels, ordered:
//   - DEBUG: detailed information for diagnosing problems.
//   - INFO: progress of the application.
//   - WARN: potentially harmful situations that are not errors.
//   - ERROR: error events the application may survive.
//   - FATAL: severe errors that will presumably lead the application to abort.
//   - OFF: threshold-only sentinel that silences a logger entirely.
//
// Main features:
//   - Category resolution: exact match, longest-matching-prefix fallback,
//     ROOT fallback. Resolution never fails.
//   - Pattern formatting: rendered lines are driven by a small, fixed
//     placeholder vocabulary (%DATE %RDATE %LEVEL %MESSAGE %COUNTRY %FILE
//     %PATH %LINE %METHOD %STACKTRACE %ERROR). Literal '%' in user data is
//     never interpreted as a token.
//   - Call-site extraction: file, line and enclosing function of the log
//     call, resolved only when the pattern actually references them, with
//     facility-internal frames filtered out.
//   - Sinks: console, date-rotating file, size-rotating file (lumberjack),
//     and SMTP delivery. Sink failures are reported on a diagnostics writer
//     and never reach the caller.
//   - Configuration: YAML file naming every category, discovered through the
//     CATLOG_CONFIG environment variable or loaded explicitly; reloads
//     replace the whole mapping atomically.
//   - OTel correlation: log calls bound to a context.Context pick up the
//     active span's trace ID as their context tag.
//
// Basic usage:
//
//	log := catlog.GetLogger("billing.invoices")
//	log.Infof("invoice %d issued", id)
//	log.Error("charge failed", catlog.WithError(err))
//
// With an explicit registry and configuration:
//
//	reg := catlog.NewRegistry()
//	if err := reg.Load("logging.yaml"); err != nil {
//		// the registry fell back to its console/INFO default
//	}
//	reg.Resolve("billing").Warn("falling behind")
//
// Log calls are synchronous: a call returns after the record is formatted
// and every sink has been attempted. There is no internal buffering or
// batching.
package catlog
