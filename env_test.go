// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

package catlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("CATLOG_TEST_KEY", "value")
	env := &OSEnv{}
	require.Equal(t, "value", env.Getenv("CATLOG_TEST_KEY"))
	require.Empty(t, env.Getenv("CATLOG_TEST_MISSING"))
}
