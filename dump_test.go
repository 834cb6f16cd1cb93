// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package catlog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stringerMsg struct{}

func (stringerMsg) String() string { return "via stringer" }

func TestRenderMessageScalars(t *testing.T) {
	require.Equal(t, "", renderMessage(nil))
	require.Equal(t, "plain", renderMessage("plain"))
	require.Equal(t, "42", renderMessage(42))
	require.Equal(t, "3.5", renderMessage(3.5))
	require.Equal(t, "true", renderMessage(true))
}

func TestRenderMessagePrefersErrorAndStringer(t *testing.T) {
	require.Equal(t, "boom", renderMessage(errors.New("boom")))
	require.Equal(t, "via stringer", renderMessage(stringerMsg{}))
}

func TestRenderMapOneEntryPerLine(t *testing.T) {
	out := renderMessage(map[string]int{"a": 1, "b": 2})
	require.ElementsMatch(t, []string{"a = 1", "b = 2"}, strings.Split(out, "\n"))
}

func TestRenderStructSkipsUnexported(t *testing.T) {
	type order struct {
		ID     int
		Total  string
		hidden bool
	}
	out := renderMessage(order{ID: 7, Total: "9.90", hidden: true})
	require.ElementsMatch(t, []string{"ID = 7", "Total = 9.90"}, strings.Split(out, "\n"))
}

func TestRenderNestedValuesInline(t *testing.T) {
	out := renderMessage(map[string]any{"inner": map[string]int{"x": 1}})
	require.Equal(t, "inner = {x = 1}", out)
}

func TestRenderSlice(t *testing.T) {
	out := renderMessage(map[string]any{"ids": []int{1, 2, 3}})
	require.Equal(t, "ids = [1, 2, 3]", out)
}

func TestRenderFuncValuesOpaque(t *testing.T) {
	out := renderMessage(map[string]any{"cb": func() {}})
	require.Equal(t, "cb = <func>", out)
}

func TestRenderPointerDereferences(t *testing.T) {
	n := 5
	out := renderMessage(map[string]any{"p": &n})
	require.Equal(t, "p = 5", out)
}

func TestRenderDepthLimit(t *testing.T) {
	v := map[string]any{"leaf": 1}
	for i := 0; i < 6; i++ {
		v = map[string]any{"n": v}
	}
	out := renderMessage(v)
	require.Contains(t, out, elidedMarker)
	require.NotContains(t, out, "leaf")
}

func TestRenderCyclicValueTerminates(t *testing.T) {
	cyc := map[string]any{}
	cyc["self"] = cyc
	out := renderMessage(cyc)
	require.Contains(t, out, elidedMarker)
}

type loopPtr *loopPtr

func TestRenderPointerCycleTerminates(t *testing.T) {
	var v loopPtr
	v = loopPtr(&v)
	require.Equal(t, elidedMarker, renderMessage(v))

	out := renderMessage(map[string]any{"p": v})
	require.Contains(t, out, elidedMarker)
}
