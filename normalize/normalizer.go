package normalize

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/schema"
	"github.com/kinggod/d3-components/tree"
)

// Normalizer turns raw chart data into records conforming to one schema.
// A Normalizer holds no state between calls besides its collectors.
type Normalizer struct {
	schema    *schema.Schema
	component string
	diags     *diagnostic.Diagnostics
	log       zerolog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDiagnostics collects non-fatal findings into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(n *Normalizer) { n.diags = d }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Normalizer) { n.log = l }
}

// WithComponent names the component in diagnostics.
func WithComponent(id string) Option {
	return func(n *Normalizer) { n.component = id }
}

// New creates a Normalizer for s. A nil schema only filters, wraps and
// flattens.
func New(s *schema.Schema, opts ...Option) *Normalizer {
	if s == nil {
		s = &schema.Schema{}
	}

	n := &Normalizer{schema: s, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize normalizes data against s. See Normalizer.Normalize.
func Normalize(s *schema.Schema, data any) any {
	return New(s).Normalize(data)
}

// Records normalizes data against s. See Normalizer.Records.
func Records(s *schema.Schema, data any) []Record {
	return New(s).Records(data)
}

// Normalize returns a flat []Record for sequence input and a single Record
// for a lone object. Any other value is returned unchanged.
func (n *Normalizer) Normalize(data any) any {
	if items, ok := sequence(data); ok {
		return n.records(items, "")
	}

	if _, ok := kind.AsObject(data); ok {
		if recs := n.records([]any{data}, ""); len(recs) > 0 {
			return recs[0]
		}
	}

	return data
}

// Records is Normalize that always returns a sequence: a lone object
// yields one record and values that are neither yield none.
func (n *Normalizer) Records(data any) []Record {
	switch v := n.Normalize(data).(type) {
	case []Record:
		return v
	case Record:
		return []Record{v}
	default:
		return nil
	}
}

// records normalizes one sequence. Null elements are discarded, nested
// sequences are series whose records are spliced into the result, and
// scalars are wrapped as {index, value}. Positions count after discarding.
func (n *Normalizer) records(items []any, path string) []Record {
	present := n.present(items, path)
	out := make([]Record, 0, len(present))

	for i, item := range present {
		itemPath := fmt.Sprintf("%s[%d]", path, i)

		if members, ok := sequence(item); ok {
			series := strconv.Itoa(i)
			members = n.present(members, itemPath)

			tagged := make([]any, len(members))
			for j, m := range members {
				tagged[j] = tagSeries(m, j, series)
			}

			out = append(out, n.records(tagged, itemPath)...)

			continue
		}

		out = append(out, n.record(item, i, itemPath))
	}

	return out
}

// present drops null and undefined elements.
func (n *Normalizer) present(items []any, path string) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		if kind.Classify(item).IsMissing() {
			n.diags.AddInfo("null_element", "null element discarded", n.component, fmt.Sprintf("%s[%d]", path, i))
			continue
		}

		out = append(out, item)
	}

	return out
}

func (n *Normalizer) record(item any, index int, path string) Record {
	if _, ok := kind.AsObject(item); !ok {
		item = wrap(item, index)
	}

	if n.schema.IsObject() {
		return n.mapRecord(item, path)
	}

	obj, _ := kind.AsObject(item)

	return Record(tree.Clone(obj))
}

// wrap turns a scalar into an {index, value} object.
func wrap(v any, index int) *kind.OrderedMap {
	m := kind.NewOrderedMap()
	m.Set("index", strconv.Itoa(index))
	m.Set("value", v)

	return m
}

// tagSeries returns a copy of a series member carrying the series tag.
// Members that already declare one keep it; nested sequences are left for
// their own pass.
func tagSeries(v any, index int, series string) any {
	if _, ok := sequence(v); ok {
		return v
	}

	obj, ok := kind.AsObject(v)
	if !ok {
		m := wrap(v, index)
		m.Set(SeriesKey, series)

		return m
	}

	if _, has := obj[SeriesKey]; has {
		return v
	}

	m := kind.NewOrderedMap()
	for _, key := range kind.Keys(v) {
		m.Set(key, obj[key])
	}

	m.Set(SeriesKey, series)

	return m
}

// sequence reports arrays; strings and byte strings are not sequences here.
func sequence(v any) ([]any, bool) {
	if kind.Classify(v) != kind.KindArray {
		return nil, false
	}

	return kind.AsSlice(v)
}
