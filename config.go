// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file parses the YAML configuration source into a full category→Logger
// mapping. A definition must name the ROOT logger; parse and validation
// failures return a descriptive error and never partial data.

package catlog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the top-level YAML document.
type fileConfig struct {
	// Pattern is the default format pattern for loggers that do not carry
	// their own. Empty selects DefaultPattern.
	Pattern string                  `yaml:"pattern"`
	Loggers map[string]loggerConfig `yaml:"loggers"`
}

// loggerConfig defines one category.
type loggerConfig struct {
	Level   string       `yaml:"level"`
	Pattern string       `yaml:"pattern"`
	Sinks   []sinkConfig `yaml:"sinks"`
}

// sinkConfig defines one sink of a logger. Type selects the variant;
// the remaining fields apply to the matching variant only.
type sinkConfig struct {
	Type string `yaml:"type"`

	// console
	Target string `yaml:"target"` // stdout (default) or stderr

	// file (date-rotating)
	Template   string `yaml:"template"`
	DateFormat string `yaml:"date_format"`

	// rotating-file (size-rotating)
	Filename   string `yaml:"filename"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAge     int    `yaml:"max_age"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`

	// smtp
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	From     string   `yaml:"from"`
	To       []string `yaml:"to"`
	Subject  string   `yaml:"subject"`
}

// buildLoggers parses data and constructs the full category mapping.
func (r *Registry) buildLoggers(data []byte) (map[string]*Logger, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Loggers) == 0 {
		return nil, errors.New("config defines no loggers")
	}
	if _, ok := cfg.Loggers[RootCategory]; !ok {
		return nil, fmt.Errorf("config is missing the %q logger", RootCategory)
	}
	out := make(map[string]*Logger, len(cfg.Loggers))
	for cat, lc := range cfg.Loggers {
		if cat == "" {
			return nil, errors.New("config contains an empty category")
		}
		lvl := INFO
		if lc.Level != "" {
			parsed, err := ParseLevel(lc.Level)
			if err != nil {
				return nil, fmt.Errorf("logger %q: %w", cat, err)
			}
			lvl = parsed
		}
		sinks, err := buildSinks(lc.Sinks)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", cat, err)
		}
		pattern := lc.Pattern
		if pattern == "" {
			pattern = cfg.Pattern
		}
		out[cat] = New(cat, lvl, sinks, r.loggerOptions(pattern)...)
	}
	return out, nil
}

// loggerOptions assembles the construction options the registry applies to
// every logger it builds.
func (r *Registry) loggerOptions(pattern string) []Option {
	var opts []Option
	if pattern != "" {
		opts = append(opts, WithPattern(pattern))
	}
	if r.clock != nil {
		opts = append(opts, WithTimeSource(r.clock))
	}
	return opts
}

// buildSinks constructs the sink list of one logger. A logger defined
// without sinks gets a single stdout console sink, keeping the non-empty
// sink invariant.
func buildSinks(cfgs []sinkConfig) ([]Sink, error) {
	if len(cfgs) == 0 {
		return []Sink{NewConsoleSink(nil)}, nil
	}
	sinks := make([]Sink, 0, len(cfgs))
	for i, sc := range cfgs {
		s, err := buildSink(sc)
		if err != nil {
			return nil, fmt.Errorf("sink %d: %w", i, err)
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}

func buildSink(sc sinkConfig) (Sink, error) {
	switch sc.Type {
	case "console", "":
		switch sc.Target {
		case "", "stdout":
			return NewConsoleSink(os.Stdout), nil
		case "stderr":
			return NewConsoleSink(os.Stderr), nil
		default:
			return nil, fmt.Errorf("unknown console target %q", sc.Target)
		}
	case "file":
		return NewFileSink(sc.Template, sc.DateFormat)
	case "rotating-file":
		return NewRotatingFileSink(RotationConfig{
			Filename:   sc.Filename,
			MaxSizeMB:  sc.MaxSizeMB,
			MaxAge:     sc.MaxAge,
			MaxBackups: sc.MaxBackups,
			Compress:   sc.Compress,
		})
	case "smtp":
		return NewSMTPSink(SMTPConfig{
			Host:     sc.Host,
			Port:     sc.Port,
			Username: sc.Username,
			Password: sc.Password,
			From:     sc.From,
			To:       sc.To,
			Subject:  sc.Subject,
		})
	default:
		return nil, fmt.Errorf("unknown sink type %q", sc.Type)
	}
}
