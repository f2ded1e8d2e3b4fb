package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a YAML or JSON card configuration from disk and normalizes it.
func Load(path string) (*CardConfig, error) {
	raw, err := LoadRaw(path)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// LoadRaw reads a configuration file into its loosely-typed form without normalizing.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cardErrors.NewParseError(path, 0, err)
	}
	return DecodeRaw(data, path)
}

// Parse decodes an in-memory YAML or JSON document and normalizes it.
// The path is used for error reporting only.
func Parse(data []byte, path string) (*CardConfig, error) {
	raw, err := DecodeRaw(data, path)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// DecodeRaw decodes a YAML or JSON document into a string-keyed map.
// JSON is valid YAML, so a single decoder serves both formats.
func DecodeRaw(data []byte, path string) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, cardErrors.NewParseError(path, extractLine(err), err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// EncodeYAML renders the configuration as a YAML document.
func EncodeYAML(cfg CardConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
