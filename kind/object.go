package kind

import (
	"reflect"
	"slices"
)

// OrderedMap is an object that remembers the order its keys were read in.
// Go maps have no enumeration order of their own, so decoders that care
// about source order produce this instead.
type OrderedMap struct {
	Keys   []string
	Values map[string]any
}

// NewOrderedMap returns an empty OrderedMap ready for Set.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{Values: make(map[string]any)}
}

// Set stores value under key, appending the key on first use.
func (m *OrderedMap) Set(key string, value any) {
	if m.Values == nil {
		m.Values = make(map[string]any)
	}

	if _, ok := m.Values[key]; !ok {
		m.Keys = append(m.Keys, key)
	}

	m.Values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.Values[key]
	return v, ok
}

// AsObject views any string-keyed map as map[string]any. Named map types
// share storage with the returned map; other key types are rejected.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case OrderedMap:
		return m.Values, true
	case *OrderedMap:
		if m == nil {
			return nil, false
		}

		return m.Values, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	if rv.Type().ConvertibleTo(reflect.TypeOf(map[string]any(nil))) {
		return rv.Convert(reflect.TypeOf(map[string]any(nil))).Interface().(map[string]any), true
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// AsSlice views any slice or array as []any. Only []any is returned without
// copying.
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil, string:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// Keys returns the enumeration order of an object: the recorded order for
// an OrderedMap, sorted order for plain maps.
func Keys(v any) []string {
	switch m := v.(type) {
	case OrderedMap:
		return orderedKeys(&m)
	case *OrderedMap:
		return orderedKeys(m)
	}

	obj, ok := AsObject(v)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func orderedKeys(m *OrderedMap) []string {
	if m == nil {
		return nil
	}

	keys := make([]string, 0, len(m.Values))
	seen := make(map[string]struct{}, len(m.Values))

	for _, k := range m.Keys {
		if _, ok := m.Values[k]; !ok {
			continue
		}

		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	// keys written straight into Values are appended in sorted order
	var rest []string
	for k := range m.Values {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}

	slices.Sort(rest)

	return append(keys, rest...)
}
