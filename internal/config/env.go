package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of the environment variables overriding settings.
const EnvPrefix = "JSPLEX_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
var envMappings = map[string]envMapping{
	"COLOR":           {field: "color", typ: envTypeString},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString},
	"SHOW_STATE":      {field: "show_state", typ: envTypeBool},
	"FORMAT":          {field: "format", typ: envTypeString},
	"EXTENSIONS":      {field: "extensions", typ: envTypeSlice},
	"DETECT":          {field: "detect", typ: envTypeBool},
	"MAX_VALUE_WIDTH": {field: "max_value_width", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
func LoadFromEnv(cfg *Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}
	for suffix, mapping := range envMappings {
		envVar := EnvPrefix + suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvValue(cfg *Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		switch mapping.field {
		case "color":
			cfg.Color = value
		case "log_level":
			cfg.LogLevel = value
		case "format":
			cfg.Format = value
		}
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		switch mapping.field {
		case "show_state":
			cfg.ShowState = b
		case "detect":
			cfg.Detect = b
		}
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		cfg.MaxValueWidth = i
	case envTypeSlice:
		cfg.Extensions = parseSliceValue(value)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
