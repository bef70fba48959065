// Package project handles the optional sysy.yaml project file.
//
// A project file pins the entry source and the default command-line
// behavior, so `sysyc check` can run without arguments from anywhere
// inside the project tree.
package project

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level sysy.yaml configuration.
type Config struct {
	// Entry is the source file to check, relative to sysy.yaml.
	Entry string `yaml:"entry"`

	// Color controls diagnostic coloring: "auto", "always" or "never".
	// Defaults to "auto".
	Color string `yaml:"color,omitempty"`

	// DumpAST prints the tree outline after a successful check.
	DumpAST bool `yaml:"dump-ast,omitempty"`
}

// LoadConfig reads and parses a sysy.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses sysy.yaml content from bytes. Unknown keys are
// rejected so a typo does not silently fall back to a default.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for sysy.yaml starting from dir and walking up to
// parent directories. Returns the path to the config file if found, or
// an empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"sysy.yaml", "sysy.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// EntryPath resolves the entry source relative to the config file's
// directory.
func (c *Config) EntryPath(configPath string) string {
	if filepath.IsAbs(c.Entry) {
		return c.Entry
	}
	return filepath.Join(filepath.Dir(configPath), c.Entry)
}

func (c *Config) validate(path string) error {
	if c.Entry == "" {
		return fmt.Errorf("%s: entry is required", path)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
}
