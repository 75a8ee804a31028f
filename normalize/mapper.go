package normalize

import (
	"fmt"
	"math"
	"slices"

	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/internal/match"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/schema"
)

// SeriesKey is the tag multi-series input carries on every record.
const SeriesKey = "series"

// Record is one normalized data item.
type Record map[string]any

// MatchMethod tells how a field found its source key.
type MatchMethod int

const (
	MatchNone MatchMethod = iota
	MatchExact
	MatchAlias
	MatchType
)

func (m MatchMethod) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchAlias:
		return "alias"
	case MatchType:
		return "type"
	default:
		return "none"
	}
}

// pool is the set of source keys no field has claimed yet, in source
// enumeration order.
type pool struct {
	keys []string
}

func newPool(keys []string) *pool {
	return &pool{keys: slices.Clone(keys)}
}

func (p *pool) has(key string) bool {
	return slices.Contains(p.keys, key)
}

// take removes key from the pool and reports whether it was there.
func (p *pool) take(key string) bool {
	i := slices.Index(p.keys, key)
	if i < 0 {
		return false
	}

	p.keys = slices.Delete(p.keys, i, i+1)

	return true
}

// firstOfKind returns the first unclaimed key whose value has kind k.
func (p *pool) firstOfKind(obj map[string]any, k kind.Kind) (string, bool) {
	for _, key := range p.keys {
		if kind.Classify(obj[key]) == k {
			return key, true
		}
	}

	return "", false
}

// matchField finds the source key for one field and claims it from the pool.
// An exact key is used even when an earlier field already claimed it
// through an alias or by type.
func matchField(f schema.Field, obj map[string]any, p *pool) (string, MatchMethod) {
	if _, ok := obj[f.Key]; ok {
		p.take(f.Key)
		return f.Key, MatchExact
	}

	for _, alias := range f.Mappings {
		if p.has(alias) {
			p.take(alias)
			return alias, MatchAlias
		}
	}

	if key, ok := p.firstOfKind(obj, f.Type); ok {
		p.take(key)
		return key, MatchType
	}

	return "", MatchNone
}

// MapRecord maps one object onto s. See Normalizer.MapRecord.
func MapRecord(record any, s *schema.Schema) Record {
	return New(s).MapRecord(record)
}

// MapRecord maps one object onto the schema: every declared field that
// finds a source key is cast to its declared type, undeclared source keys
// are dropped, and fields without a source are left out. A series tag on
// the source is carried over unchanged. Values that are not objects map to
// an empty record.
func (n *Normalizer) MapRecord(record any) Record {
	return n.mapRecord(record, "")
}

func (n *Normalizer) mapRecord(record any, path string) Record {
	obj, ok := kind.AsObject(record)
	if !ok {
		return Record{}
	}

	out := make(Record, len(n.schema.Entries)+1)
	p := newPool(kind.Keys(record))
	hierarchy := n.schema.HierarchyField()

	for _, f := range n.schema.Entries {
		src, method := matchField(f, obj, p)
		fieldPath := joinPath(path, f.Key)

		if method == MatchNone {
			n.diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticInfo,
				Code:        "unmapped_field",
				Message:     fmt.Sprintf("no source key for field %q", f.Key),
				Component:   n.component,
				FieldPath:   fieldPath,
				Suggestions: match.Suggest(f.Key, p.keys),
			})

			continue
		}

		n.log.Debug().
			Str("field", f.Key).
			Str("source", src).
			Stringer("via", method).
			Msg("field mapped")

		raw := obj[src]
		if f.Key == hierarchy && f.Type == kind.KindArray {
			if items, ok := kind.AsSlice(raw); ok {
				out[f.Key] = n.records(items, fieldPath)
				continue
			}
		}

		out[f.Key] = n.cast(f, raw, fieldPath)
	}

	if _, declared := out[SeriesKey]; !declared {
		if series, ok := obj[SeriesKey]; ok {
			out[SeriesKey] = series
		}
	}

	return out
}

// cast converts raw to the declared field type. Failures are reported and
// never abort the record.
func (n *Normalizer) cast(f schema.Field, raw any, path string) any {
	switch f.Type {
	case kind.KindString:
		return kind.ToString(raw)
	case kind.KindNumber:
		v := kind.ToNumber(raw)
		if math.IsNaN(v) && kind.Classify(raw) != kind.KindNumber {
			n.diags.AddWarning("not_a_number",
				fmt.Sprintf("value %s of field %q is not numeric", kind.ToString(raw), f.Key), n.component, path)
		}

		return v
	case kind.KindDate:
		v, err := kind.ToDate(raw)
		if err != nil {
			n.diags.AddWarning("invalid_date", err.Error(), n.component, path)
		}

		return v
	default:
		return raw
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
