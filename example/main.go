// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phuonguno98/catlog"
	"go.opentelemetry.io/otel"
)

// config defines two categories on top of ROOT: "payment" logs everything
// down to DEBUG into a dated file next to the console, while everything else
// inherits ROOT's INFO threshold.
const config = `
pattern: "[%RDATE] [%LEVEL] [%COUNTRY] %MESSAGE\n"
loggers:
  ROOT:
    level: INFO
    sinks:
      - type: console
  payment:
    level: DEBUG
    pattern: "[%RDATE] [%LEVEL] %MESSAGE at %FILE:%LINE\n"
    sinks:
      - type: console
      - type: file
        template: "payment-%s.log"
        date_format: "2006-01-02"
`

// main demonstrates category resolution, pattern formatting, context tags
// and trace correlation.
func main() {
	reg := catlog.NewRegistry()
	if err := reg.LoadConfig([]byte(config)); err != nil {
		fmt.Fprintf(os.Stderr, "config rejected: %v\n", err)
		return
	}

	// 1. Category resolution: "payment.gateway" has no logger of its own and
	// resolves to the "payment" prefix; "inventory" falls back to ROOT.
	pay := reg.Resolve("payment.gateway")
	inv := reg.Resolve("inventory")

	pay.Debugf("authorizing card ending %s", "4242")
	inv.Info("stock level synchronized")

	// 2. Threshold gating: ROOT sits at INFO, so this line goes nowhere.
	inv.Debug("this is filtered out")

	// 3. Optional record metadata.
	pay.Error("charge declined", catlog.WithError(errors.New("insufficient funds")))

	// 4. Structured messages are dumped with a bounded depth.
	pay.Info(map[string]any{"order": 8812, "total": "19.90 EUR"})

	// 5. Context tags flow into %COUNTRY; inside an OpenTelemetry span the
	// trace ID is derived automatically when no explicit tag is attached.
	ctx := catlog.ContextWithTag(context.Background(), "vi-VN")
	root := reg.Resolve("")
	root.WithContext(ctx).Info("localized greeting rendered")

	tr := otel.Tracer("example")
	ctx, span := tr.Start(context.Background(), "checkout")
	root.WithContext(ctx).Info("inside span")
	span.End()

	// Show the files the dated file sink produced.
	matches, _ := filepath.Glob("payment-*.log")
	for _, m := range matches {
		fmt.Printf("wrote %s\n", m)
	}
}
