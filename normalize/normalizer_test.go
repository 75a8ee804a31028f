package normalize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/normalize"
	"github.com/kinggod/d3-components/schema"
)

func indexValueSchema() *schema.Schema {
	return schema.New(
		schema.Field{Key: "label", Type: kind.KindString, Mappings: []string{"name", "index"}},
		schema.Field{Key: "value", Type: kind.KindNumber, Mappings: []string{"count"}},
	)
}

func ExampleNormalize() {
	s := schema.New(
		schema.Field{Key: "x", Type: kind.KindNumber},
		schema.Field{Key: "y", Type: kind.KindNumber},
	)

	out := normalize.Normalize(s, []any{map[string]any{"a": 1, "b": 2}})
	fmt.Println(out)
	// Output: [map[x:1 y:2]]
}

func TestNormalizeScalars(t *testing.T) {
	got := normalize.Normalize(indexValueSchema(), []any{5, nil, 7})

	assert.Equal(t, []normalize.Record{
		{"label": "0", "value": 5.0},
		{"label": "1", "value": 7.0},
	}, got)
}

func TestNormalizeLoneObject(t *testing.T) {
	got := normalize.Normalize(indexValueSchema(), map[string]any{"name": "a", "count": "3"})

	assert.Equal(t, normalize.Record{"label": "a", "value": 3.0}, got)
}

func TestNormalizePassThrough(t *testing.T) {
	assert.Equal(t, "data.csv", normalize.Normalize(indexValueSchema(), "data.csv"))
	assert.Equal(t, 3, normalize.Normalize(indexValueSchema(), 3))
	assert.Nil(t, normalize.Records(indexValueSchema(), "data.csv"))
}

func TestNormalizeSeries(t *testing.T) {
	data := []any{
		[]any{map[string]any{"value": 1}},
		[]any{map[string]any{"value": 2}, map[string]any{"value": 3}},
	}

	got := normalize.Records(indexValueSchema(), data)

	require.Len(t, got, 3)
	for i, series := range []string{"0", "1", "1"} {
		assert.Equal(t, series, got[i][normalize.SeriesKey], "record %d", i)
	}

	assert.Equal(t, []any{1.0, 2.0, 3.0}, []any{got[0]["value"], got[1]["value"], got[2]["value"]})
}

func TestNormalizeSeriesKeepsOwnTag(t *testing.T) {
	data := []any{
		[]any{map[string]any{"value": 1, "series": "north"}},
		[]any{nil, 4},
	}

	got := normalize.Records(indexValueSchema(), data)

	require.Len(t, got, 2)
	assert.Equal(t, "north", got[0][normalize.SeriesKey])
	assert.Equal(t, "1", got[1][normalize.SeriesKey])
	assert.Equal(t, 4.0, got[1]["value"])
}

func TestNormalizeHierarchy(t *testing.T) {
	s := schema.New(
		schema.Field{Key: "label", Type: kind.KindString, Mappings: []string{"name"}},
		schema.Field{Key: "value", Type: kind.KindNumber, Mappings: []string{"size"}},
		schema.Field{Key: "children", Type: kind.KindArray, Hierarchy: true},
	)

	data := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a", "size": "1"},
			nil,
			map[string]any{"name": "b", "children": []any{
				map[string]any{"name": "c", "size": 2},
			}},
		},
	}

	got := normalize.Normalize(s, data)

	assert.Equal(t, normalize.Record{
		"label": "root",
		"children": []normalize.Record{
			{"label": "a", "value": 1.0},
			{"label": "b", "children": []normalize.Record{
				{"label": "c", "value": 2.0},
			}},
		},
	}, got)
}

func TestNormalizeWithoutSchema(t *testing.T) {
	got := normalize.Records(nil, []any{map[string]any{"a": 1}, "x"})

	assert.Equal(t, []normalize.Record{
		{"a": 1},
		{"index": "1", "value": "x"},
	}, got)
}

func TestNormalizeOrderedInput(t *testing.T) {
	s := schema.New(
		schema.Field{Key: "label", Type: kind.KindString},
		schema.Field{Key: "value", Type: kind.KindNumber},
	)

	row := kind.NewOrderedMap()
	row.Set("country", "France")
	row.Set("city", "Paris")
	row.Set("population", 2.1)

	got := normalize.Records(s, []any{row})

	assert.Equal(t, []normalize.Record{{"label": "France", "value": 2.1}}, got)
}

func TestNormalizeDiagnostics(t *testing.T) {
	var diags diagnostic.Diagnostics

	n := normalize.New(indexValueSchema(), normalize.WithDiagnostics(&diags), normalize.WithComponent("bar-chart"))
	got := n.Records([]any{nil, map[string]any{"name": "x", "count": "many"}})

	require.Len(t, got, 1)
	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "[0].value", diags.Warnings[0].FieldPath)

	codes := make([]string, 0, len(diags.Infos))
	for _, d := range diags.Infos {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{"null_element"}, codes)
}

func TestNormalizeIdempotent(t *testing.T) {
	s := indexValueSchema()
	data := []any{map[string]any{"name": "a", "count": 1}, 2}

	once := normalize.Records(s, data)
	twice := normalize.Records(s, toAny(once))

	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	data := []any{[]any{map[string]any{"value": 1}}}

	_ = normalize.Records(indexValueSchema(), data)

	assert.Equal(t, []any{[]any{map[string]any{"value": 1}}}, data)
}

func toAny(recs []normalize.Record) []any {
	out := make([]any, len(recs))
	for i, r := range recs {
		out[i] = r
	}

	return out
}
