// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package catlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileSinkTemplateValidation(t *testing.T) {
	_, err := NewFileSink("fixed.log", "")
	require.Error(t, err)

	_, err = NewFileSink("%s-%s.log", "")
	require.Error(t, err)

	s, err := NewFileSink("app-%s.log", "")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestFileSinkRotatesWhenDateChanges(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(filepath.Join(dir, "app-%s.log"), "2006-01-02")
	require.NoError(t, err)

	day := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	require.NoError(t, s.Notify(nil, INFO, "one\n", nil, ""))
	day = day.Add(2 * time.Minute) // crosses midnight into 2024-03-06
	require.NoError(t, s.Notify(nil, INFO, "two\n", nil, ""))
	require.NoError(t, s.Close())

	first, err := os.ReadFile(filepath.Join(dir, "app-2024-03-05.log"))
	require.NoError(t, err)
	require.Equal(t, "one\n", string(first))

	second, err := os.ReadFile(filepath.Join(dir, "app-2024-03-06.log"))
	require.NoError(t, err)
	require.Equal(t, "two\n", string(second))
}

func TestFileSinkAppendsWithinSameDate(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(filepath.Join(dir, "app-%s.log"), "2006-01-02")
	require.NoError(t, err)

	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	require.NoError(t, s.Notify(nil, INFO, "one\n", nil, ""))
	require.NoError(t, s.Notify(nil, INFO, "two\n", nil, ""))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app-2024-03-05.log"))
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(data))
}

func TestFileSinkReusableAfterClose(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(filepath.Join(dir, "app-%s.log"), "2006-01-02")
	require.NoError(t, err)

	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	require.NoError(t, s.Notify(nil, INFO, "one\n", nil, ""))
	require.NoError(t, s.Close())
	require.NoError(t, s.Notify(nil, INFO, "two\n", nil, ""))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app-2024-03-05.log"))
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(data))
}

func TestFileSinkDisablesAfterOpenFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(filepath.Join(dir, "missing", "app-%s.log"), "")
	require.NoError(t, err)

	err = s.Notify(nil, INFO, "one\n", nil, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "disabled")

	// Later writes are silent no-ops, even though the directory now exists.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "missing"), 0o755))
	require.NoError(t, s.Notify(nil, INFO, "two\n", nil, ""))
	_, err = os.ReadFile(filepath.Join(dir, "missing", "app-"+time.Now().Format(defaultDateLayout)+".log"))
	require.Error(t, err)
}

func TestRotatingFileSinkWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	s, err := NewRotatingFileSink(RotationConfig{Filename: path, MaxSizeMB: 1})
	require.NoError(t, err)

	require.NoError(t, s.Notify(nil, INFO, "hit\n", nil, ""))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hit\n", string(data))
}

func TestRotatingFileSinkRequiresFilename(t *testing.T) {
	_, err := NewRotatingFileSink(RotationConfig{})
	require.Error(t, err)
}

func TestConsoleSinkWritesLine(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf)
	require.NoError(t, s.Notify(nil, INFO, "line\n", nil, ""))
	require.Equal(t, "line\n", buf.String())
}
