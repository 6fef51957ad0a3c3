// Package config loads gbkit defaults from an optional YAML file.
// Flags always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gbkit-core/dna"
)

// Config holds tool-wide defaults.
type Config struct {
	// Format is the default output format for listing commands
	// (tsv, jsonl, pretty).
	Format string `yaml:"format"`
	// Complement selects what reverse-complementing does with
	// characters that have no IUPAC complement: "pass-through" keeps
	// them, "strict" fails.
	Complement string `yaml:"complement"`
	// Color enables ANSI color in pretty output.
	Color bool `yaml:"color"`
	// Database is the default path for the feature index.
	Database string `yaml:"database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:     "tsv",
		Complement: "pass-through",
		Color:      true,
		Database:   "gbkit.db",
	}
}

// Load reads path over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := cfg.Policy(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Policy maps the complement setting to its dna.Policy.
func (c Config) Policy() (dna.Policy, error) {
	switch c.Complement {
	case "", "pass-through":
		return dna.PassThrough, nil
	case "strict":
		return dna.Strict, nil
	}
	return dna.PassThrough, fmt.Errorf("unknown complement policy %q", c.Complement)
}
