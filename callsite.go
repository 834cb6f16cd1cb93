// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements call-site resolution: walking the current stack outward
// from the formatting call, skipping the facility's own frames and any
// denylisted wrapper modules, and reporting the first frame that belongs to
// the caller.

package catlog

import (
	"errors"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

// modulePath identifies the facility's own frames during stack filtering.
const modulePath = "github.com/phuonguno98/catlog"

// maxStackDepth caps the number of program counters collected per resolution.
const maxStackDepth = 64

// StackResolver resolves call sites from the runtime stack. Frames whose
// function name contains any of the configured skip fragments are ignored,
// as are the facility's own frames. The zero value skips only facility
// frames; NewStackResolver adds further fragments for wrapper packages that
// forward log calls.
type StackResolver struct {
	skip []string
}

// NewStackResolver returns a resolver that additionally skips frames whose
// function name contains any of the given fragments.
func NewStackResolver(skip ...string) *StackResolver {
	return &StackResolver{skip: append([]string(nil), skip...)}
}

// defaultResolver serves Format calls that do not supply their own resolver.
var defaultResolver = NewStackResolver()

// ResolveCallSite resolves the call site using the package default resolver.
func ResolveCallSite() (CallSite, error) {
	return defaultResolver.Resolve()
}

// Resolve walks the current call stack and returns the first frame that does
// not belong to the logging facility or a denylisted wrapper. When every
// frame is internal, it returns an "n/a" call site rather than an error; an
// error is returned only when no stack is available at all.
func (r *StackResolver) Resolve() (CallSite, error) {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return CallSite{}, errors.New("catlog: no call stack available")
	}
	stack := string(debug.Stack())
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !r.skipped(frame) {
			return CallSite{
				Path:   frame.File,
				File:   filepath.Base(frame.File),
				Line:   strconv.Itoa(frame.Line),
				Method: frame.Function,
				Stack:  stack,
			}, nil
		}
		if !more {
			break
		}
	}
	return CallSite{Path: naMarker, File: naMarker, Line: naMarker, Method: naMarker, Stack: stack}, nil
}

// skipped reports whether frame belongs to the facility or a denylisted
// wrapper. Test files of this package are exempt from the facility rule so
// that the package's own tests can observe themselves as call sites.
func (r *StackResolver) skipped(frame runtime.Frame) bool {
	for _, frag := range r.skip {
		if frag != "" && strings.Contains(frame.Function, frag) {
			return true
		}
	}
	if strings.HasPrefix(frame.Function, modulePath+".") && !strings.HasSuffix(frame.File, "_test.go") {
		return true
	}
	return false
}
