package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is one parsed YAML product file. Values keep the types the
// YAML decoder gave them (string, int, float64, nested maps).
type Document map[string]any

// ErrEmptyDocument is returned for files that parse to nothing usable
// (empty file, bare "null", whitespace only).
var ErrEmptyDocument = errors.New("empty or invalid YAML document")

// LoadDocument reads and parses one YAML file. A document whose top level
// is not a non-empty mapping (scalar, list, empty) is an error; callers
// treat any error here as a per-file failure, never a batch failure.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}
