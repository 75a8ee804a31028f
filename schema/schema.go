package schema

import (
	"github.com/kinggod/d3-components/kind"
)

// Field declares one target key of a normalized record.
type Field struct {
	// Key is the name the value is stored under in the output record.
	Key string `json:"key" yaml:"key"`
	// Type is the kind the mapped value is cast to.
	Type kind.Kind `json:"type" yaml:"type"`
	// Mappings are alias source keys, tried in order after Key itself.
	Mappings []string `json:"mappings,omitempty" yaml:"mappings,omitempty"`
	// Hierarchy marks the field that holds nested child records.
	Hierarchy bool `json:"hierarchy,omitempty" yaml:"hierarchy,omitempty"`
}

// Schema is the ordered field list one chart component declares for its
// data. Declaration order matters: a source key is consumed by the first
// field that claims it.
type Schema struct {
	// Type is KindObject when records are mapped field by field; any
	// other schema only filters, wraps and flattens its input.
	Type kind.Kind `json:"type,omitempty" yaml:"type,omitempty"`
	// Entries are the declared fields, in priority order.
	Entries []Field `json:"entries" yaml:"entries"`
	// Hierarchy names the field holding nested child records, if any.
	Hierarchy string `json:"hierarchy,omitempty" yaml:"hierarchy,omitempty"`
}

// New returns an object schema with the given fields.
func New(fields ...Field) *Schema {
	s := &Schema{Type: kind.KindObject, Entries: fields}
	applyDefaults(s)

	return s
}

// IsObject reports whether records are mapped field by field.
func (s *Schema) IsObject() bool {
	if s == nil {
		return false
	}

	return s.Type == kind.KindObject || (s.Type == 0 && len(s.Entries) > 0)
}

// Field returns the declared field with the given key.
func (s *Schema) Field(key string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}

	for _, f := range s.Entries {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// HierarchyField returns the key of the hierarchy field, or "" when the
// schema has none.
func (s *Schema) HierarchyField() string {
	if s == nil {
		return ""
	}

	if s.Hierarchy != "" {
		return s.Hierarchy
	}

	for _, f := range s.Entries {
		if f.Hierarchy {
			return f.Key
		}
	}

	return ""
}

// Keys returns the declared keys in order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}

	keys := make([]string, len(s.Entries))
	for i, f := range s.Entries {
		keys[i] = f.Key
	}

	return keys
}

// Builder provides a fluent API for constructing schemas.
type Builder struct {
	schema *Schema
}

// NewBuilder creates a builder for an object schema.
func NewBuilder() *Builder {
	return &Builder{schema: &Schema{Type: kind.KindObject}}
}

// Field appends a field with optional alias mappings.
func (b *Builder) Field(key string, typ kind.Kind, mappings ...string) *Builder {
	b.schema.Entries = append(b.schema.Entries, Field{Key: key, Type: typ, Mappings: mappings})
	return b
}

// Hierarchy appends the hierarchy field, an array of nested records.
func (b *Builder) Hierarchy(key string, mappings ...string) *Builder {
	b.schema.Entries = append(b.schema.Entries, Field{
		Key:       key,
		Type:      kind.KindArray,
		Mappings:  mappings,
		Hierarchy: true,
	})
	b.schema.Hierarchy = key

	return b
}

// Build returns the constructed schema.
func (b *Builder) Build() *Schema {
	return b.schema
}
