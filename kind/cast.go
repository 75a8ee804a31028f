package kind

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var ErrInvalidDate = errors.New("invalid date")

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Float returns v as float64 when v is a Go number. Strings are not parsed.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// ToNumber converts v the way Number(v) does in a browser: blank strings
// are 0, malformed strings are NaN, booleans are 0 or 1, null is 0 and
// undefined is NaN. Dates become Unix milliseconds.
func ToNumber(v any) float64 {
	if f, ok := Float(v); ok {
		return f
	}

	switch t := v.(type) {
	case nil:
		return 0
	case undefined:
		return math.NaN()
	case bool:
		if t {
			return 1
		}

		return 0
	case string:
		return parseNumber(t)
	case time.Time:
		if t.IsZero() {
			return math.NaN()
		}

		return float64(t.UnixMilli())
	}

	if s, ok := AsSlice(v); ok {
		switch len(s) {
		case 0:
			return 0
		case 1:
			return parseNumber(ToString(s[0]))
		}
	}

	if Classify(v) == KindString {
		return parseNumber(reflect.ValueOf(v).String())
	}

	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	lower := strings.ToLower(s)
	for _, prefix := range []struct {
		p    string
		base int
	}{{"0x", 16}, {"0o", 8}, {"0b", 2}} {
		if strings.HasPrefix(lower, prefix.p) {
			n, err := strconv.ParseUint(s[2:], prefix.base, 64)
			if err != nil {
				return math.NaN()
			}

			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

// IsNumeric reports whether v is a Go number or a string that ToNumber
// would read as a finite number.
func IsNumeric(v any) bool {
	if f, ok := Float(v); ok {
		return !math.IsNaN(f)
	}

	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	f := parseNumber(s)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Truthy reports whether v counts as true in a condition: null, undefined,
// false, zero, NaN and the empty string do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil, undefined:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}

	if f, ok := Float(v); ok {
		return f != 0 && !math.IsNaN(f)
	}

	return !Classify(v).IsMissing()
}

// ToString converts v the way String(v) does in a browser. Dates are
// rendered as RFC3339.
func ToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case *regexp.Regexp:
		return "/" + t.String() + "/"
	case error:
		return t.Error()
	}

	if f, ok := Float(v); ok {
		return FormatNumber(f)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	switch Classify(v) {
	case KindString:
		return reflect.ValueOf(v).String()
	case KindArray:
		s, _ := AsSlice(v)
		parts := make([]string, len(s))
		for i, e := range s {
			if !Classify(e).IsMissing() {
				parts[i] = ToString(e)
			}
		}

		return strings.Join(parts, ",")
	case KindObject:
		return "[object Object]"
	case KindFunction:
		return "function"
	}

	return fmt.Sprint(v)
}

// FormatNumber prints f with the shortest representation that round-trips,
// switching to exponent form outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")

	return mantissa + "e" + sign + digits
}

// ToDate converts v to a time the way new Date(v) does: numbers are Unix
// milliseconds, strings are parsed in UTC. ErrInvalidDate is returned with
// the zero time when v cannot be read as a date.
func ToDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}

		return time.UnixMilli(0).UTC(), nil
	case nil:
		return time.UnixMilli(0).UTC(), nil
	case undefined:
		return time.Time{}, ErrInvalidDate
	case bool:
		if t {
			return time.UnixMilli(1).UTC(), nil
		}

		return time.UnixMilli(0).UTC(), nil
	}

	if f, ok := Float(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, ErrInvalidDate
		}

		return time.UnixMilli(int64(f)).UTC(), nil
	}

	if Classify(v) == KindString {
		s := strings.TrimSpace(ToString(v))
		parsed, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}

		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s value", ErrInvalidDate, Classify(v).Name())
}
