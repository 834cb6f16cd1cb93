// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the diagnostics channel: a side writer, distinct from
// the logging pipeline itself, where sink delivery failures and internal
// conditions are reported. Keeping it separate avoids recursive logging
// failures.

package catlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	diagMu sync.RWMutex
	diagW  io.Writer = os.Stderr
)

// SetDiagnostics redirects the facility's diagnostic output. Passing nil
// restores the default, os.Stderr.
func SetDiagnostics(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	diagMu.Lock()
	diagW = w
	diagMu.Unlock()
}

// diagf reports an internal condition on the diagnostics writer.
func diagf(format string, args ...any) {
	diagMu.RLock()
	w := diagW
	diagMu.RUnlock()
	_, _ = fmt.Fprintf(w, "catlog: "+format+"\n", args...)
}
