// Package ingestion loads developer profiles and job postings from JSON or YAML files.
package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a file converted to JSON.
type Document struct {
	JSON     []byte
	Metadata Metadata
}

// DetectFormat picks the format from the file extension. Unknown extensions are sniffed:
// content starting with '{' or '[' is JSON, anything else YAML.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// LoadDocument reads path and returns its content as JSON.
func LoadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := DetectFormat(path, content)
	doc, err := ToJSON(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &Document{JSON: doc, Metadata: newMetadata(path, format, doc)}, nil
}

// ToJSON converts content in the given format to JSON. JSON input is checked and
// returned unchanged.
func ToJSON(content []byte, format Format) ([]byte, error) {
	if format == FormatJSON {
		if !json.Valid(content) {
			return nil, errors.New("invalid JSON")
		}
		return content, nil
	}

	var v any
	if err := yaml.Unmarshal(content, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	out, err := json.Marshal(jsonCompatible(v))
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

// jsonCompatible rewrites YAML mappings with non-string keys into string-keyed maps.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = jsonCompatible(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = jsonCompatible(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = jsonCompatible(item)
		}
		return t
	default:
		return v
	}
}
