package tree

import (
	"math"
	"reflect"
	"strings"

	"github.com/kinggod/d3-components/kind"
)

// Get retrieves a value using a dot-separated path such as "margin.left".
func Get(t map[string]any, path string) (any, bool) {
	if t == nil {
		return nil, false
	}

	current := any(t)
	for _, part := range strings.Split(path, ".") {
		m, ok := kind.AsObject(current)
		if !ok {
			return nil, false
		}

		val, exists := m[part]
		if !exists {
			return nil, false
		}

		current = val
	}

	return current, true
}

// Has reports whether path names a value in t.
func Has(t map[string]any, path string) bool {
	_, ok := Get(t, path)
	return ok
}

// Number returns the value at path as a float64 when it is a Go number.
func Number(t map[string]any, path string) (float64, bool) {
	v, ok := Get(t, path)
	if !ok {
		return 0, false
	}

	return kind.Float(v)
}

// Set stores value at a dot-separated path, creating intermediate objects
// as needed. Non-object intermediates are replaced. Set mutates t; callers
// that need the input intact Clone it first.
func Set(t map[string]any, path string, value any) {
	if t == nil {
		return
	}

	parts := strings.Split(path, ".")
	current := t

	for _, part := range parts[:len(parts)-1] {
		next, ok := kind.AsObject(current[part])
		if !ok {
			created := Tree{}
			current[part] = created
			next = created
		}

		current = next
	}

	current[parts[len(parts)-1]] = value
}

// Equal compares two tree values deeply. Objects compare by content
// regardless of their map type; NaN equals NaN so coerced trees compare
// reliably.
func Equal(a, b any) bool {
	if fa, ok := kind.Float(a); ok {
		fb, ok := kind.Float(b)
		if !ok {
			return false
		}

		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}

	if ma, ok := kind.AsObject(a); ok {
		mb, ok := kind.AsObject(b)
		if !ok || len(ma) != len(mb) {
			return false
		}

		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}

		return true
	}

	if sa, ok := kind.AsSlice(a); ok {
		sb, ok := kind.AsSlice(b)
		if !ok || len(sa) != len(sb) {
			return false
		}

		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}

		return true
	}

	fa, fb := kind.Classify(a) == kind.KindFunction, kind.Classify(b) == kind.KindFunction
	if fa || fb {
		return fa && fb && reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return reflect.DeepEqual(a, b)
}
