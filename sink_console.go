// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the console sink, the default delivery target.

package catlog

import (
	"io"
	"os"
	"sync"
)

// ConsoleSink writes rendered log lines to a writer, os.Stdout by default.
// Writes are serialized so concurrent loggers sharing a sink do not
// interleave lines.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink returns a console sink writing to w. A nil writer selects
// os.Stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

// Notify writes the rendered line.
func (s *ConsoleSink) Notify(_ *Logger, _ Level, line string, _ error, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}
