// Package config loads process startup configuration from an optional
// YAML file (spec §6 CLI surface, SPEC_FULL.md §6.3), re-purposing
// gopkg.in/yaml.v3 from the conformance fixture schema to interpreter
// startup configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI entry point wires into an
// interp.Context. Default() returns the documented baseline: ten workers,
// no debug sink. The zero value has MaxWorkers 0, i.e. serial mode.
type Config struct {
	MaxWorkers int    `yaml:"max_workers"`
	DebugPath  string `yaml:"debug_path"`
}

// DefaultMaxWorkers is MAX_WORKERS' specified default (spec §4.5).
const DefaultMaxWorkers = 10

// Default returns the documented baseline configuration.
func Default() Config {
	return Config{MaxWorkers: DefaultMaxWorkers}
}

// Load reads and parses a YAML config file at path. Fields absent from the
// file keep their Default() values. A missing or unreadable file is an
// error, returned together with the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
