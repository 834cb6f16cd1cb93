// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the logger registry: the process-wide mapping from
// category to Logger. Resolution tries an exact match, then the longest
// registered category that is a literal prefix of the requested one, and
// finally falls back to ROOT. The mapping initializes lazily from the
// environment-named configuration file or from a hardcoded default, and a
// reload atomically replaces it wholesale.

package catlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// RootCategory is the reserved category every registry must contain.
const RootCategory = "ROOT"

// ConfigEnvKey names the environment variable consulted during first-ever
// initialization for the location of a configuration file.
const ConfigEnvKey = "CATLOG_CONFIG"

// Registry maps categories to loggers. Steady-state resolution reads an
// atomic snapshot of the mapping and takes no lock; first initialization and
// configuration reloads are serialized by a mutex and replace the mapping
// atomically.
type Registry struct {
	mu      sync.Mutex
	loggers atomic.Value // map[string]*Logger
	env     EnvReader
	clock   TimeSource
}

// RegistryOption customizes a Registry during construction.
type RegistryOption func(*Registry)

// WithEnvReader injects the environment lookup used for configuration
// discovery. The default reads the process environment.
func WithEnvReader(r EnvReader) RegistryOption {
	return func(reg *Registry) { reg.env = r }
}

// WithClock supplies the domain time source handed to every logger the
// registry constructs, backing their %DATE placeholder.
func WithClock(ts TimeSource) RegistryOption {
	return func(reg *Registry) { reg.clock = ts }
}

// NewRegistry creates an empty registry. The category mapping is built
// lazily on the first Resolve call.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{env: &OSEnv{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the best-matching logger for category. An empty category
// resolves to ROOT; otherwise an exact match wins, then the longest
// registered category that is a prefix of the requested one, then ROOT.
// Resolve never fails: it panics only if ROOT itself is missing after
// initialization, which is a configuration-invariant violation.
func (r *Registry) Resolve(category string) *Logger {
	m := r.snapshot()
	root, ok := m[RootCategory]
	if !ok {
		panic("catlog: registry is missing the ROOT logger")
	}
	if category == "" {
		return root
	}
	if l, ok := m[category]; ok {
		return l
	}
	// Longest matching prefix wins. Prefixes of equal length are equal
	// strings, so the winner is unique regardless of map iteration order.
	var best *Logger
	bestLen := -1
	for cat, l := range m {
		if strings.HasPrefix(category, cat) && len(cat) > bestLen {
			best, bestLen = l, len(cat)
		}
	}
	if best != nil {
		return best
	}
	return root
}

// Load reads the YAML logger definition at path and atomically replaces the
// registry's mapping. A definition without a ROOT logger is rejected; on any
// failure the registry falls back to the synthesized default and the reason
// is logged through the fresh ROOT logger.
func (r *Registry) Load(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadPathLocked(path)
}

// LoadConfig is Load for an in-memory YAML definition.
func (r *Registry) LoadConfig(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadConfigLocked(data)
}

// snapshot returns the current mapping, initializing it first if needed.
func (r *Registry) snapshot() map[string]*Logger {
	if m, ok := r.loggers.Load().(map[string]*Logger); ok {
		return m
	}
	r.ensureInit()
	m, _ := r.loggers.Load().(map[string]*Logger)
	return m
}

// ensureInit performs the create-if-absent step under the mutex. It is
// idempotent: once a mapping exists, later calls are no-ops.
func (r *Registry) ensureInit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loggers.Load().(map[string]*Logger); ok {
		return
	}
	if path := r.env.Getenv(ConfigEnvKey); path != "" {
		_ = r.loadPathLocked(path) // failure already fell back to the default
		return
	}
	r.installDefaultLocked(nil)
}

func (r *Registry) loadPathLocked(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		werr := fmt.Errorf("read config: %w", err)
		r.installDefaultLocked(werr)
		return werr
	}
	return r.loadConfigLocked(data)
}

func (r *Registry) loadConfigLocked(data []byte) error {
	m, err := r.buildLoggers(data)
	if err != nil {
		r.installDefaultLocked(err)
		return err
	}
	r.replaceLocked(m)
	return nil
}

// installDefaultLocked synthesizes the default mapping: a single ROOT logger
// at INFO with one console sink. When cause is non-nil the fallback was
// triggered by a rejected configuration, and the reason is warned through
// the just-created ROOT logger.
func (r *Registry) installDefaultLocked(cause error) {
	root := New(RootCategory, INFO, []Sink{NewConsoleSink(nil)}, r.loggerOptions("")...)
	r.replaceLocked(map[string]*Logger{RootCategory: root})
	if cause != nil {
		root.Warn(fmt.Sprintf("configuration rejected, using defaults: %v", cause))
	}
}

// replaceLocked atomically publishes the new mapping and closes the sinks of
// the replaced one; old loggers are discarded wholesale, never merged.
func (r *Registry) replaceLocked(m map[string]*Logger) {
	old, _ := r.loggers.Load().(map[string]*Logger)
	r.loggers.Store(m)
	closeSinks(old)
}

// closeSinks releases resources held by the sinks of a replaced mapping.
// Sinks shared between loggers are closed once.
func closeSinks(m map[string]*Logger) {
	closed := make(map[Sink]bool)
	for _, l := range m {
		for _, s := range l.sinks {
			if closed[s] {
				continue
			}
			closed[s] = true
			if c, ok := s.(io.Closer); ok {
				if err := c.Close(); err != nil {
					diagf("closing sink of logger %q: %v", l.category, err)
				}
			}
		}
	}
}

// defaultRegistry is the package-level registry behind GetLogger and Load.
var defaultRegistry = NewRegistry()

// Default returns the package-level registry.
func Default() *Registry { return defaultRegistry }

// GetLogger resolves category against the package-level registry,
// initializing it on first use.
func GetLogger(category string) *Logger { return defaultRegistry.Resolve(category) }

// Load replaces the package-level registry's mapping from the YAML
// definition at path.
func Load(path string) error { return defaultRegistry.Load(path) }
