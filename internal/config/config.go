// Package config loads and validates the mindelay YAML configuration.
//
// A file only needs the keys it overrides; everything else keeps the value
// from DefaultConfig. Unknown keys are rejected so typos do not pass silently.
//
//	log:
//	  level: warn            # debug | info | warn | error
//	  format: auto           # text | json | auto (text on a terminal, json otherwise)
//	telemetry:
//	  trace: none            # none | stdout
//	  metric: none           # none | stdout | prometheus
//	  textfile_path: ""      # required when metric is prometheus
//	limits:
//	  max_nodes: 0           # 0 means unbounded
//	  max_edges: 0
//	output:
//	  graph_name: ""         # DOT graph id; empty renders "digraph {"
//	engine:
//	  check_invariants: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates the configuration could not be read or failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Limits    LimitsConfig    `yaml:"limits"`
	Output    OutputConfig    `yaml:"output"`
	Engine    EngineConfig    `yaml:"engine"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// TelemetryConfig selects OpenTelemetry exporters.
type TelemetryConfig struct {
	Trace        string `yaml:"trace" validate:"oneof=none stdout"`
	Metric       string `yaml:"metric" validate:"oneof=none stdout prometheus"`
	TextfilePath string `yaml:"textfile_path" validate:"required_if=Metric prometheus"`
}

// LimitsConfig bounds the graph store. Zero means unbounded.
type LimitsConfig struct {
	MaxNodes int `yaml:"max_nodes" validate:"gte=0"`
	MaxEdges int `yaml:"max_edges" validate:"gte=0"`
}

// OutputConfig shapes the DOT output.
type OutputConfig struct {
	GraphName string `yaml:"graph_name" validate:"max=256"`
}

// EngineConfig tunes the shortest-path engine.
type EngineConfig struct {
	CheckInvariants bool `yaml:"check_invariants"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
		Telemetry: TelemetryConfig{
			Trace:  "none",
			Metric: "none",
		},
	}
}

var validate = validator.New()

// Load reads path over DefaultConfig and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err = Decode(bytes.NewReader(data), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode merges the YAML document from r into cfg and validates the result.
// An empty document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg.Validate()
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps Level to a slog.Level. Unknown values fall back to warn.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
