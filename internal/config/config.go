// Package config loads the jsplex configuration.
//
// Settings are read from a YAML file, then overridden by JSPLEX_* environment
// variables. Command line flags are applied last by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the jsplex settings.
type Config struct {
	// Color is one of auto, always or never.
	Color string `yaml:"color"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// ShowState prints the serialized scanner state after each item.
	ShowState bool `yaml:"show_state"`

	// Format is the item output format: text or yaml.
	Format string `yaml:"format"`

	// Extensions are the file extensions lexed when walking directories.
	Extensions []string `yaml:"extensions"`

	// Detect also lexes files whose extension is unknown but whose content
	// is detected as JSP.
	Detect bool `yaml:"detect"`

	// MaxValueWidth clips item values in text output. Zero means the
	// terminal width.
	MaxValueWidth int `yaml:"max_value_width"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Color:      ColorAuto,
		LogLevel:   "info",
		Format:     FormatText,
		Extensions: []string{".jsp", ".jspf", ".jspx", ".tag"},
	}
}

// FromYAML parses a configuration from YAML bytes on top of the defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("color: invalid value %q (expected auto, always or never)", c.Color)
	}
	if !slices.Contains([]string{FormatText, FormatYAML}, c.Format) {
		return fmt.Errorf("format: invalid value %q (expected text or yaml)", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: invalid value %q", c.LogLevel)
	}
	if c.MaxValueWidth < 0 {
		return fmt.Errorf("max_value_width: must not be negative, got %d", c.MaxValueWidth)
	}
	return nil
}

// HasExtension returns true if the file name ends with one of the configured
// extensions.
func (c *Config) HasExtension(name string) bool {
	for _, ext := range c.Extensions {
		if len(name) >= len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return true
		}
	}
	return false
}
