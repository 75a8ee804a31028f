package schema

import (
	"fmt"

	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/kind"
)

var fieldTypes = map[kind.Kind]struct{}{
	kind.KindString: {},
	kind.KindNumber: {},
	kind.KindDate:   {},
	kind.KindObject: {},
	kind.KindArray:  {},
}

// Validate checks a schema for structural problems: empty or duplicate
// keys, unsupported field types, and a hierarchy marker that is ambiguous
// or does not name an array field. It returns nil for a valid schema.
func Validate(s *Schema) error {
	return Diagnose(s).Error()
}

// Diagnose is Validate returning every finding.
func Diagnose(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	if !s.IsObject() {
		if len(s.Entries) > 0 {
			res.AddWarning("entries_ignored",
				fmt.Sprintf("schema of type %q declares entries that are never mapped", s.Type.Name()), "", "")
		}

		return res
	}

	seen := map[string]struct{}{}
	hierarchies := 0

	for i, f := range s.Entries {
		path := f.Key
		if path == "" {
			path = fmt.Sprintf("entries[%d]", i)
			res.AddError("empty_key", "field key is empty", "", path)
		}

		if _, dup := seen[f.Key]; dup && f.Key != "" {
			res.AddError("duplicate_key", fmt.Sprintf("duplicate field key %q", f.Key), "", path)
		}

		seen[f.Key] = struct{}{}

		if _, ok := fieldTypes[f.Type]; !ok {
			res.AddError("unsupported_type",
				fmt.Sprintf("field type %q is not one of string, number, date, object, array", f.Type.Name()), "", path)
		}

		if f.Hierarchy {
			hierarchies++
			if f.Type != kind.KindArray {
				res.AddError("hierarchy_not_array", "hierarchy field must be of type array", "", path)
			}
		}
	}

	if hierarchies > 1 {
		res.AddError("multiple_hierarchies", fmt.Sprintf("%d fields are marked as hierarchy", hierarchies), "", "")
	}

	if h := s.HierarchyField(); h != "" {
		if _, ok := seen[h]; !ok {
			res.AddError("hierarchy_unknown", fmt.Sprintf("hierarchy names undeclared field %q", h), "", h)
		}
	}

	return res
}
