package coerce

import (
	"math"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/kinggod/d3-components/kind"
)

// Direction of a sort directive.
type Direction int

const (
	Ascending Direction = iota + 1
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

var comparatorPattern = regexp.MustCompile(`^(ascending|descending)\((\w+)\)$`)

// Comparator is the compiled form of a sort directive such as
// "descending(value)". It orders records, or wrappers that hold the record
// under "data", by one field.
type Comparator struct {
	Direction Direction
	Field     string
}

// ParseComparator compiles a sort directive. The second result is false
// when s is not one.
func ParseComparator(s string) (Comparator, bool) {
	m := comparatorPattern.FindStringSubmatch(s)
	if m == nil {
		return Comparator{}, false
	}

	dir := Ascending
	if m[1] == "descending" {
		dir = Descending
	}

	return Comparator{Direction: dir, Field: m[2]}, true
}

// String renders the directive back to its textual form.
func (c Comparator) String() string {
	return c.Direction.String() + "(" + c.Field + ")"
}

// MarshalText encodes the comparator as its directive.
func (c Comparator) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// missingSign is returned when the left value is missing; ties and
// incomparable values get the opposite sign.
func (c Comparator) missingSign() int {
	if c.Direction == Descending {
		return -1
	}

	return 1
}

// Compare orders a and b. The field is read from both top-level objects
// when both declare it, otherwise from their "data" objects. Missing values
// go last when ascending and first when descending. Values that cannot be
// found on either path compare as equal.
func (c Comparator) Compare(a, b any) int {
	if av, bv, ok := c.lookup(a, b); ok {
		return c.compareValues(av, bv)
	}

	ad, aok := kind.AsObject(field(a, "data"))
	bd, bok := kind.AsObject(field(b, "data"))
	if aok && bok {
		return c.compareValues(ad[c.Field], bd[c.Field])
	}

	return 0
}

func (c Comparator) lookup(a, b any) (any, any, bool) {
	am, aok := kind.AsObject(a)
	bm, bok := kind.AsObject(b)
	if !aok || !bok {
		return nil, nil, false
	}

	av, aok := am[c.Field]
	bv, bok := bm[c.Field]

	return av, bv, aok && bok
}

func (c Comparator) compareValues(av, bv any) int {
	sign := c.missingSign()
	if kind.Classify(av).IsMissing() {
		return sign
	}

	order, ok := natural(av, bv)
	if !ok || order == 0 {
		return -sign
	}

	if c.Direction == Descending {
		return -order
	}

	return order
}

// Func returns the comparator as a plain two-argument function.
func (c Comparator) Func() func(a, b any) int {
	return c.Compare
}

// Sort orders records in place with a stable sort.
func (c Comparator) Sort(records []any) {
	slices.SortStableFunc(records, c.Compare)
}

func field(v any, key string) any {
	m, ok := kind.AsObject(v)
	if !ok {
		return nil
	}

	return m[key]
}

// natural orders two values of the same kind. The second result is false
// for mismatched or unordered kinds.
func natural(a, b any) (int, bool) {
	if fa, ok := kind.Float(a); ok {
		fb, ok := kind.Float(b)
		if !ok || math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, false
		}

		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(av, bv), true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}

		return av.Compare(bv), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}

		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		default:
			return 1, true
		}
	}

	return 0, false
}
