package spec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a validated spec. The document is
// converted to JSON first so both forms share the same strict decoder.
func ParseYAML(data []byte) (*VizSpec, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: "invalid YAML spec", Err: err}
	}

	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, &ParseError{Reason: "spec must be a YAML mapping"}
	}

	encoded, err := json.Marshal(mapping)
	if err != nil {
		return nil, &ParseError{Reason: "YAML spec is not JSON compatible", Err: err}
	}
	return ParseJSON(encoded)
}

// ParseFile reads a spec from disk, choosing YAML for .yaml/.yml files and
// JSON otherwise
func ParseFile(path string) (*VizSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Reason: "read spec file", Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}
