// Package tree holds configuration trees and the deep merge that layers
// them: global defaults, then component defaults, then user options.
package tree

import (
	"reflect"

	"github.com/kinggod/d3-components/kind"
)

// Tree is a configuration tree. Values are scalars, nested objects,
// sequences or functions.
type Tree map[string]any

// Merge returns a new tree with override layered over base.
// Objects present on both sides are merged recursively; any other value
// from override replaces the base value wholesale, so sequences are never
// merged element-wise. Neither input is modified and the result shares no
// objects or sequences with them. Nil inputs behave as empty trees.
func Merge(base, override map[string]any) Tree {
	out := make(Tree, len(base)+len(override))

	for _, src := range []map[string]any{base, override} {
		for key, val := range src {
			if obj, ok := kind.AsObject(val); ok {
				prev, _ := kind.AsObject(out[key])
				out[key] = Merge(prev, obj)
				continue
			}

			out[key] = cloneValue(val)
		}
	}

	return out
}

// MergeAll folds trees left to right; later trees win per leaf key.
func MergeAll(trees ...map[string]any) Tree {
	out := Tree{}
	for _, t := range trees {
		out = Merge(out, t)
	}

	return out
}

// Clone returns a deep copy of t.
func Clone(t map[string]any) Tree {
	if t == nil {
		return nil
	}

	return Merge(nil, t)
}

// cloneValue creates a deep copy of objects and sequences; other values are
// returned as they are.
func cloneValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil
	case []any:
		return cloneSlice(v)
	}

	if obj, ok := kind.AsObject(val); ok {
		return Merge(nil, obj)
	}

	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Slice && !rv.IsNil() {
		return cloneTyped(rv).Interface()
	}

	return val
}

// cloneTyped copies a typed slice, keeping its type, and deep-copies every
// element that maps back onto the element type.
func cloneTyped(rv reflect.Value) reflect.Value {
	cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(cp, rv)

	elem := rv.Type().Elem()
	for i := range rv.Len() {
		cv := reflect.ValueOf(cloneValue(rv.Index(i).Interface()))
		if !cv.IsValid() {
			continue
		}

		switch {
		case cv.Type().AssignableTo(elem):
			cp.Index(i).Set(cv)
		case cv.Type().ConvertibleTo(elem):
			cp.Index(i).Set(cv.Convert(elem))
		}
	}

	return cp
}

func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, val := range src {
		dst[i] = cloneValue(val)
	}

	return dst
}
