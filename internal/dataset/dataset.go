// Package dataset decodes chart data files into the values the normalizer
// consumes. Objects decode to *kind.OrderedMap so the source key order
// survives for type-fallback matching.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/internal/common"
	"github.com/kinggod/d3-components/kind"
)

// Format names a data encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

var (
	ErrUnknownFormat = errors.New("unknown data format")
	ErrNoHeader      = errors.New("delimited data has no header row")
)

// FormatOf guesses the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatTSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ReadFile decodes the file at path, picking the format from its extension.
func ReadFile(path string) (any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	return Decode(data, format)
}

// Decode decodes data in the given format.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatCSV:
		return DecodeDelimited(bytes.NewReader(data), ',')
	case FormatTSV:
		return DecodeDelimited(bytes.NewReader(data), '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeJSON decodes JSON, allowing comments and trailing commas. Numbers
// decode to float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json: trailing data at offset %d", dec.InputOffset())
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '[':
		out := []any{}
		for dec.More() {
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		_, err := dec.Token()

		return out, err
	case '{':
		out := kind.NewOrderedMap()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			out.Set(keyTok.(string), v)
		}

		_, err := dec.Token()

		return out, err
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", delim, dec.InputOffset())
	}
}

// DecodeYAML decodes a single YAML document. An empty document decodes to
// nil.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	return fromNode(&doc)
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		root, ok := common.First(node.Content)
		if !ok {
			return nil, nil
		}

		return fromNode(root)
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	case yaml.MappingNode:
		out := kind.NewOrderedMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Content[i].Line, err)
			}

			v, err := fromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			out.Set(key, v)
		}

		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	}
}

// DecodeDelimited reads delimited rows into records keyed by the header
// row, in header order. Cells stay strings; empty cells are kept.
func DecodeDelimited(r io.Reader, comma rune) ([]any, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode delimited: %w", err)
	}

	header, ok := common.First(rows)
	if !ok || common.IsEmpty(header) {
		return nil, ErrNoHeader
	}

	out := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := kind.NewOrderedMap()
		for i, column := range header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			rec.Set(column, cell)
		}

		out = append(out, rec)
	}

	return out, nil
}
