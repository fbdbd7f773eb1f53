package level

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".json"}
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return l, nil
}

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (Level, error) {
	var l Level
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return l, nil
}

// ParseJSON parses a JSON level file using the camelCase field names of
// the browser-era level format.
func ParseJSON(data []byte) (Level, error) {
	var l Level
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Level{}, fmt.Errorf("json decode: %w", err)
	}
	return l, nil
}

// Parse routes to the parser for the given extension.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// EncodeYAML renders a level as YAML, e.g. to export a built-in level.
func EncodeYAML(l Level) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}
