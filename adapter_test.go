// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package catlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdapterFormatsAndDispatches(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink}, WithPattern("%LEVEL %MESSAGE\n"))

	a := NewAdapter(l.WithContext(context.Background()))
	a.Info("processed %d items", 3)

	require.Equal(t, "INFO processed 3 items\n", sink.last().line)
}

func TestAdapterCarriesContextTag(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink}, WithPattern("[%COUNTRY] %MESSAGE\n"))

	a := NewAdapter(l.WithContext(context.Background())).WithTag("vi-VN")
	a.Warn("slow response")

	require.Equal(t, "[vi-VN] slow response\n", sink.last().line)
}

func TestAdapterRequiresLogger(t *testing.T) {
	require.Panics(t, func() { NewAdapter(LoggerWithCtx{}) })
}

func TestNewAdapterForResolvesCategory(t *testing.T) {
	t.Setenv(ConfigEnvKey, "")
	a := NewAdapterFor(context.Background(), "billing.invoices")
	require.NotNil(t, a)
	require.Equal(t, RootCategory, a.lw.l.Category())
	require.NotNil(t, a.Context())
}

func TestAdapterWithContextSharesLogger(t *testing.T) {
	sink := &memorySink{}
	l := New("svc", DEBUG, []Sink{sink})

	a := NewAdapter(l.WithContext(context.Background()))
	b := a.WithContext(ContextWithTag(context.Background(), "x"))
	require.Same(t, a.lw.l, b.lw.l)
	require.NotEqual(t, a.Context(), b.Context())
}
