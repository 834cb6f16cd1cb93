// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file abstracts environment variable access so registry initialization
// can be exercised in tests without touching the process environment.

package catlog

import "os"

// EnvReader defines an interface for environment variable access.
type EnvReader interface {
	Getenv(key string) string
}

// OSEnv implements EnvReader using the standard os package.
type OSEnv struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}
