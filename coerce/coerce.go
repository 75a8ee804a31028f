// Package coerce rewrites string-encoded option values into concrete ones:
// "10px" and "2em" become numbers, "50%" a share of the chart width and
// "ascending(value)" a Comparator.
//
// Coercion runs once over a fully merged options tree. The tree itself is
// the context: "em" scales by its root fontSize and "%" by its root width.
// When the needed base is absent the string is left as it is, unlike "px",
// which always converts.
package coerce

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/tree"
)

const (
	FontSizeKey = "fontSize"
	WidthKey    = "width"
)

var (
	pixelPattern   = regexp.MustCompile(`^-?\d+\.?\d*px$`)
	emPattern      = regexp.MustCompile(`^-?\d+\.?\d*em$`)
	percentPattern = regexp.MustCompile(`^-?\d+\.?\d*%$`)
)

// Value coerces a single value against ctx. Objects are coerced key by key
// into a new tree; sequences and non-string scalars pass through.
func Value(v any, ctx map[string]any) any {
	if s, ok := v.(string); ok {
		return coerceString(s, ctx)
	}

	obj, ok := kind.AsObject(v)
	if !ok {
		return v
	}

	out := make(tree.Tree, len(obj))
	for key, val := range obj {
		out[key] = Value(val, ctx)
	}

	return out
}

func coerceString(s string, ctx map[string]any) any {
	switch {
	case pixelPattern.MatchString(s):
		return literal(strings.TrimSuffix(s, "px"))
	case emPattern.MatchString(s):
		if base, ok := contextNumber(ctx, FontSizeKey); ok {
			return literal(strings.TrimSuffix(s, "em")) * base
		}
	case percentPattern.MatchString(s):
		if base, ok := contextNumber(ctx, WidthKey); ok {
			return literal(strings.TrimSuffix(s, "%")) * base / 100
		}
	default:
		if cmp, ok := ParseComparator(s); ok {
			return cmp
		}
	}

	return s
}

// literal parses a number the unit patterns have already validated.
func literal(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// contextNumber reads a unit base from the context. A base that is present
// but not numeric counts as absent.
func contextNumber(ctx map[string]any, key string) (float64, bool) {
	v, ok := ctx[key]
	if !ok {
		return 0, false
	}

	if f, ok := kind.Float(v); ok {
		return f, true
	}

	if kind.IsNumeric(v) {
		return kind.ToNumber(v), true
	}

	return 0, false
}

// Tree coerces every value of t using t as the context and returns a new
// tree. The root fontSize and width are resolved first so that the values
// depending on them see numbers; the remaining keys follow in sorted order.
// Coercing an already coerced tree returns an equal tree.
func Tree(t map[string]any) tree.Tree {
	ctx := tree.Clone(t)
	if ctx == nil {
		return tree.Tree{}
	}

	keys := make([]string, 0, len(ctx))
	for key := range ctx {
		if key != FontSizeKey && key != WidthKey {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)
	keys = append([]string{FontSizeKey, WidthKey}, keys...)

	for _, key := range keys {
		if val, ok := ctx[key]; ok {
			ctx[key] = Value(val, ctx)
		}
	}

	return ctx
}
