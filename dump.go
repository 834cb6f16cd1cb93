// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file renders structured message values into a bounded-depth,
// human-readable dump before pattern substitution. Values nested beyond the
// depth limit render as an elision marker; callable values render as an
// opaque marker rather than their implementation.

package catlog

import (
	"fmt"
	"reflect"
	"strings"
)

// dumpDepthLimit bounds recursion when rendering nested values.
const dumpDepthLimit = 5

const (
	elidedMarker = "..."
	funcMarker   = "<func>"
)

// renderMessage produces the textual form of a log message. Strings pass
// through unchanged; errors render their message; everything else goes
// through the bounded-depth dump.
func renderMessage(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	}
	return renderValue(reflect.ValueOf(v), 0)
}

// renderValue renders rv at the given nesting depth. Maps and structs at the
// top level render one entry per line; nested ones render inline.
func renderValue(rv reflect.Value, depth int) string {
	if !rv.IsValid() {
		return "nil"
	}
	if depth >= dumpDepthLimit {
		return elidedMarker
	}
	switch rv.Kind() {
	case reflect.Func:
		return funcMarker
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		// Each hop counts against the depth limit so that self-referential
		// pointer chains terminate in an elision marker.
		return renderValue(rv.Elem(), depth+1)
	case reflect.Map:
		return renderMap(rv, depth)
	case reflect.Struct:
		return renderStruct(rv, depth)
	case reflect.Slice, reflect.Array:
		return renderList(rv, depth)
	default:
		// fmt formats a reflect.Value as the concrete value it holds, which
		// also covers values obtained from unexported fields.
		return fmt.Sprint(rv)
	}
}

func renderMap(rv reflect.Value, depth int) string {
	entries := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, renderValue(iter.Key(), depth+1)+" = "+renderValue(iter.Value(), depth+1))
	}
	return joinEntries(entries, depth)
}

func renderStruct(rv reflect.Value, depth int) string {
	t := rv.Type()
	entries := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		entries = append(entries, f.Name+" = "+renderValue(rv.Field(i), depth+1))
	}
	return joinEntries(entries, depth)
}

func renderList(rv reflect.Value, depth int) string {
	items := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items = append(items, renderValue(rv.Index(i), depth+1))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// joinEntries lays out key/value entries: one per line at the top level so a
// dumped table reads naturally in a log, inline in braces when nested.
func joinEntries(entries []string, depth int) string {
	if depth == 0 {
		return strings.Join(entries, "\n")
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
