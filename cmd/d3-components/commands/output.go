package commands

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/kind"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatDump = "dump"
)

type encodeFunc func(w io.Writer, v any) error

func newEncoder(format string) (encodeFunc, error) {
	switch format {
	case formatJSON:
		return encodeJSON, nil
	case formatYAML:
		return encodeYAML, nil
	case formatDump:
		return encodeDump, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json, yaml or dump)", format)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(plain(v))
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(plain(v)); err != nil {
		return err
	}

	return enc.Close()
}

// encodeDump prints the values as they are, Go types included.
func encodeDump(w io.Writer, v any) error {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	cfg.Fdump(w, v)

	return nil
}

// plain converts resolved values into ones both encoders accept. Functions
// become "function" and non-finite numbers their text; ordered maps turn
// into plain maps.
func plain(v any) any {
	switch t := v.(type) {
	case nil, string, bool, time.Time:
		return v
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return kind.ToString(v)
		}

		return string(text)
	}

	if f, ok := kind.Float(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return kind.FormatNumber(f)
		}

		return v
	}

	switch kind.Classify(v) {
	case kind.KindObject:
		obj, _ := kind.AsObject(v)
		out := make(map[string]any, len(obj))
		for key, val := range obj {
			out[key] = plain(val)
		}

		return out
	case kind.KindArray:
		items, _ := kind.AsSlice(v)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = plain(item)
		}

		return out
	case kind.KindUndefined:
		return nil
	case kind.KindFunction, kind.KindRegExp, kind.KindError:
		return kind.ToString(v)
	default:
		return v
	}
}
