// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the size-rotating file sink, a variant of the file
// sink that caps file size and retention instead of rolling by date. It is
// backed by the lumberjack library.

package catlog

import (
	"errors"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig configures a size-rotating file sink.
type RotationConfig struct {
	// Filename is the path of the active log file. Required.
	Filename string
	// MaxSizeMB is the maximum size in megabytes before the file is rotated.
	MaxSizeMB int
	// MaxAge is the maximum number of days to retain rotated files.
	MaxAge int
	// MaxBackups is the maximum number of rotated files to keep.
	MaxBackups int
	// Compress determines whether rotated files are gzip-compressed.
	Compress bool
}

// RotatingFileSink appends rendered log lines to a file that rotates by
// size, delegating rotation mechanics to lumberjack.
type RotatingFileSink struct {
	lj *lumberjack.Logger
}

// NewRotatingFileSink creates a size-rotating file sink from cfg.
func NewRotatingFileSink(cfg RotationConfig) (*RotatingFileSink, error) {
	if cfg.Filename == "" {
		return nil, errors.New("catlog: rotating file sink requires a filename")
	}
	return &RotatingFileSink{lj: &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}}, nil
}

// Notify appends the rendered line, rotating when the size cap is reached.
func (s *RotatingFileSink) Notify(_ *Logger, _ Level, line string, _ error, _ string) error {
	_, err := s.lj.Write([]byte(line))
	return err
}

// Close releases the underlying file handle.
func (s *RotatingFileSink) Close() error {
	return s.lj.Close()
}
