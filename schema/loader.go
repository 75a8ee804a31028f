package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/kind"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return &s, nil
}

// UnmarshalYAML decodes a schema embedded in a larger document, such as a
// component file, and fills in its implied settings.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type plain Schema

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*s = Schema(p)
	applyDefaults(s)

	return nil
}

// Marshal serializes a Schema to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// applyDefaults fills in the object type for schemas that declare entries
// and keeps the schema-level and per-field hierarchy markers in sync.
func applyDefaults(s *Schema) {
	if s.Type == 0 && len(s.Entries) > 0 {
		s.Type = kind.KindObject
	}

	if s.Hierarchy == "" {
		for _, f := range s.Entries {
			if f.Hierarchy {
				s.Hierarchy = f.Key
				break
			}
		}
	}

	for i := range s.Entries {
		if s.Entries[i].Key == s.Hierarchy && s.Hierarchy != "" {
			s.Entries[i].Hierarchy = true
		}
	}
}
