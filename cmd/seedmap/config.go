package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Run modes.
const (
	ModeRanges = "ranges" // seeds are (start, length) pairs
	ModeSeeds  = "seeds"  // every seed is evaluated on its own
)

var errBadConfig = errors.New("seedmap: invalid configuration")

// Config is the run configuration. Every field can also be set by a flag
// of the same name; flags given on the command line win over the file.
type Config struct {
	Input    string `yaml:"input"`
	Mode     string `yaml:"mode"`
	Workers  int    `yaml:"workers"`
	Coalesce bool   `yaml:"coalesce"`
	Verbose  bool   `yaml:"verbose"`
	Timing   bool   `yaml:"timing"`
}

// DefaultConfig mirrors the historical behaviour: ./input.txt, seed ranges,
// a single worker.
func DefaultConfig() Config {
	return Config{
		Input:   "input.txt",
		Mode:    ModeRanges,
		Workers: 1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", errBadConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", errBadConfig)
	}
	if c.Mode != ModeRanges && c.Mode != ModeSeeds {
		return fmt.Errorf("%w: mode %q (want %q or %q)", errBadConfig, c.Mode, ModeRanges, ModeSeeds)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", errBadConfig, c.Workers)
	}

	return nil
}
