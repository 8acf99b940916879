package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up next to the invocation.
const DefaultFile = "bretcon.yaml"

// Config represents the top-level bretcon.yaml configuration. Every field
// has a default; the file itself is optional.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls the exported CSV.
type OutputConfig struct {
	Filename string `yaml:"filename"`
}

// BatchConfig controls the batch directory workflow.
type BatchConfig struct {
	OutDir string `yaml:"out_dir"`
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a bretcon.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault reads path if it exists and falls back to Default when it
// does not.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the canonical configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Output.Filename == "" {
		c.Output.Filename = "bretcon_upload.csv"
	}
	if c.Batch.OutDir == "" {
		c.Batch.OutDir = "out"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
