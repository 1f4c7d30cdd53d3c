// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configFormat names the on-disk encodings a configuration file may use.
type configFormat int

const (
	configFormatJSON configFormat = iota // .json and anything unrecognized
	configFormatYAML                     // .yaml, .yml
)

// configSchema is the JSON Schema every configuration document must
// satisfy before its values are accepted. It pins the document shape:
// unknown keys and wrongly typed values are hard errors, while
// out-of-range numbers are left to loadConfig to clamp back to defaults.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "defaults": {
      "type": "object",
      "properties": {
        "bufferSize": {"type": "integer"},
        "timeoutSeconds": {"type": "integer"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

// Fallback values applied when no config file is given or a configured
// value is out of range.
const (
	defaultBufferSize     = 16384
	defaultTimeoutSeconds = 15
)

// Config carries the default knobs for the certificate inspection tools.
//
// It loads from a JSON or YAML file named by the --config flag or the
// MCP_INSPECTOR_CONFIG_FILE environment variable, with defaults filling
// any gap. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for inspection tool calls
	Defaults struct {
		// BufferSize: Capacity in bytes of the extraction buffer backing
		// tool calls that do not pass max_bytes
		BufferSize int `json:"bufferSize" yaml:"bufferSize"`
		// Timeout: Dial timeout in seconds for peer certificate fetches
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"defaults" yaml:"defaults"`
}

// detectConfigFormat maps a file extension to its configFormat, matching
// case-insensitively. Unknown extensions are treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig parses the raw document into config with the parser the
// format calls for.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	if format == configFormatYAML {
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse JSON config file: %w", err)
	}
	return nil
}

// validateConfig checks a raw configuration document against configSchema.
// YAML documents are re-encoded as JSON first so one schema covers both
// formats. A schema failure reports every violation in the document, not
// just the first.
func validateConfig(data []byte, format configFormat) error {
	jsonData := data
	if format == configFormatYAML {
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert YAML config for validation: %w", err)
		}
		jsonData = converted
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, violation := range result.Errors() {
			violations = append(violations, violation.String())
		}
		return fmt.Errorf("config rejected by schema: %s", strings.Join(violations, "; "))
	}

	return nil
}

// loadConfig resolves the server configuration: defaults first, then the
// file at configPath (or at MCP_INSPECTOR_CONFIG_FILE when configPath is
// empty) layered on top. Every file must pass configSchema before its
// values are used.
//
// Non-positive numbers pass the schema (it only pins types) and are
// silently clamped back to the defaults, so a config that says
// "bufferSize: 0" behaves like one that says nothing at all.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.BufferSize = defaultBufferSize
	config.Defaults.Timeout = defaultTimeoutSeconds

	if configPath == "" {
		configPath = os.Getenv("MCP_INSPECTOR_CONFIG_FILE")
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Shape check first, field values second
	format := detectConfigFormat(configPath)
	if err := validateConfig(data, format); err != nil {
		return nil, err
	}
	if err := unmarshalConfig(data, config, format); err != nil {
		return nil, err
	}

	if config.Defaults.BufferSize <= 0 {
		config.Defaults.BufferSize = defaultBufferSize
	}
	if config.Defaults.Timeout <= 0 {
		config.Defaults.Timeout = defaultTimeoutSeconds
	}

	return config, nil
}
