package kind

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, it is reported for values outside the closed set

	KindNull
	KindUndefined
	KindBoolean
	KindNumber
	KindString
	KindDate
	KindArray
	KindObject
	KindFunction
	KindRegExp
	KindError

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

type undefined struct{}

// Undefined marks a value that is explicitly absent. A missing map key is
// treated the same way.
var Undefined any = undefined{}

var names = [...]string{
	KindNull:      "null",
	KindUndefined: "undefined",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindDate:      "date",
	KindArray:     "array",
	KindObject:    "object",
	KindFunction:  "function",
	KindRegExp:    "regexp",
	KindError:     "error",
}

// Name returns the lowercase name used in schema files, e.g. "number".
func (k Kind) Name() string {
	if k <= 0 || int(k) >= KindTotal {
		return ""
	}

	return names[k]
}

// ParseKind is the inverse of Kind.Name. Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Kind(1); int(k) < KindTotal; k++ {
		if names[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// IsMissing reports whether the kind stands for "no value".
func (k Kind) IsMissing() bool {
	return k == KindNull || k == KindUndefined
}

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// Classify returns the kind of any value. Named types are classified by
// their underlying shape, so a map[string]any alias is still an object.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case bool:
		return KindBoolean
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case time.Time:
		return KindDate
	case *regexp.Regexp:
		return KindRegExp
	case OrderedMap, *OrderedMap:
		return KindObject
	case map[string]any, []any:
		return FromReflectType(reflect.TypeOf(v))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return KindNull
	}

	return FromReflectType(rv.Type())
}

// FromReflectType classifies by Go type alone.
func FromReflectType(rtype reflect.Type) Kind {
	if rtype == nil {
		return KindNull
	}

	switch rtype {
	case timeType:
		return KindDate
	case regexpType:
		return KindRegExp
	}

	if rtype.Implements(errorType) {
		return KindError
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rtype.Key().Kind() == reflect.String {
			return KindObject
		}

		return 0
	case reflect.Func:
		return KindFunction
	case reflect.Ptr:
		if rtype.Elem() == timeType {
			return KindDate
		}

		return 0
	}
}
