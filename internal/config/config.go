// Package config loads the optional YAML configuration file of the dcmcsv
// command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command-line flags. Unset fields leave the flag
// defaults in place.
type Config struct {
	Tags      []string `yaml:"tags,omitempty"`      // Identifiers, as for --tag
	TagFiles  []string `yaml:"tag_files,omitempty"` // Relative paths are resolved against the config file
	Until     string   `yaml:"until,omitempty"`     // Read boundary identifier
	Jobs      *int     `yaml:"jobs,omitempty"`      // Pool size (0 = number of CPUs)
	Extension string   `yaml:"extension,omitempty"` // Directory filter, e.g. ".dcm"
	Output    string   `yaml:"output,omitempty"`    // CSV destination (default stdout)
	Charset   string   `yaml:"charset,omitempty"`   // Fallback Specific Character Set term
	Lenient   bool     `yaml:"lenient,omitempty"`   // Keep partial data of truncated files
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if c.Jobs != nil && *c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", *c.Jobs)
	}

	if c.Extension != "" && strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}

	for i, tag := range c.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags[%d] is empty", i)
		}
	}

	for i, f := range c.TagFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("tag_files[%d] is empty", i)
		}
	}

	return nil
}

// Load reads, parses and validates the file at path. Unknown keys are
// rejected so that typos do not pass silently. An empty file is a valid,
// empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dir := filepath.Dir(path)
	for i, f := range config.TagFiles {
		if !filepath.IsAbs(f) {
			config.TagFiles[i] = filepath.Join(dir, f)
		}
	}

	return &config, nil
}
