// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the date-rotating file sink: the file name is derived
// from a template with a single substitution slot and a date layout, and
// whenever the formatted date changes between writes the current handle is
// closed and the new dated path is opened in append mode. Writes are
// line-buffered and flushed after every record.

package catlog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// defaultDateLayout names one file per calendar day.
const defaultDateLayout = "2006-01-02"

// FileSink appends rendered log lines to a dated file. If the target path
// cannot be opened the sink disables itself permanently: the failing write
// reports the condition once and every subsequent write is a silent no-op.
type FileSink struct {
	mu       sync.Mutex
	template string
	layout   string
	now      func() time.Time

	cur      string
	f        *os.File
	w        *bufio.Writer
	disabled bool
}

// NewFileSink creates a file sink. template must contain exactly one %s
// slot, which receives the current date formatted with layout (an empty
// layout selects one file per day).
func NewFileSink(template, layout string) (*FileSink, error) {
	if strings.Count(template, "%s") != 1 {
		return nil, fmt.Errorf("catlog: file template %q must contain exactly one %%s slot", template)
	}
	if layout == "" {
		layout = defaultDateLayout
	}
	return &FileSink{template: template, layout: layout, now: time.Now}, nil
}

// Notify appends the rendered line to the file named by the current date,
// rotating to a new file when the date has changed since the last write.
func (s *FileSink) Notify(_ *Logger, _ Level, line string, _ error, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return nil
	}
	date := s.now().Format(s.layout)
	if s.f == nil || date != s.cur {
		if err := s.reopen(date); err != nil {
			s.disabled = true
			return fmt.Errorf("file sink disabled: %w", err)
		}
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.Flush()
}

// reopen closes the current handle, if any, and opens the path for date in
// append mode, creating it when missing.
func (s *FileSink) reopen(date string) error {
	if s.f != nil {
		_ = s.w.Flush()
		_ = s.f.Close()
		s.f, s.w = nil, nil
	}
	path := fmt.Sprintf(s.template, date)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	s.f = f
	s.w = bufio.NewWriter(f)
	s.cur = date
	return nil
}

// Close flushes and releases the open file handle. The sink may be reused
// afterwards; the next write reopens the dated path.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	ferr := s.w.Flush()
	cerr := s.f.Close()
	s.f, s.w, s.cur = nil, nil, ""
	if ferr != nil {
		return ferr
	}
	return cerr
}
