package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinggod/d3-components/internal/dataset"
	"github.com/kinggod/d3-components/kind"
)

func TestDecodeJSONKeepsOrder(t *testing.T) {
	data := []byte(`[
		// first row
		{"zeta": "a", "alpha": 1, "nested": {"b": true, "a": null}},
		[1, 2,],
	]`)

	v, err := dataset.DecodeJSON(data)
	require.NoError(t, err)

	items, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	row := items[0].(*kind.OrderedMap)
	assert.Equal(t, []string{"zeta", "alpha", "nested"}, row.Keys)
	assert.Equal(t, 1.0, row.Values["alpha"])

	nested := row.Values["nested"].(*kind.OrderedMap)
	assert.Equal(t, []string{"b", "a"}, nested.Keys)
	assert.Nil(t, nested.Values["a"])

	assert.Equal(t, []any{1.0, 2.0}, items[1])
}

func TestDecodeJSONErrors(t *testing.T) {
	_, err := dataset.DecodeJSON([]byte(`{"a": }`))
	assert.Error(t, err)

	_, err = dataset.DecodeJSON([]byte(`1 2`))
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	v, err := dataset.DecodeYAML([]byte(`
- name: root
  value: 3
  children:
    - {name: leaf, value: 1.5}
- plain
`))
	require.NoError(t, err)

	items := v.([]any)
	require.Len(t, items, 2)

	root := items[0].(*kind.OrderedMap)
	assert.Equal(t, []string{"name", "value", "children"}, root.Keys)
	assert.Equal(t, 3, root.Values["value"])

	leaf := root.Values["children"].([]any)[0].(*kind.OrderedMap)
	assert.Equal(t, 1.5, leaf.Values["value"])
	assert.Equal(t, "plain", items[1])
}

func TestDecodeYAMLEmpty(t *testing.T) {
	v, err := dataset.DecodeYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeDelimited(t *testing.T) {
	rows, err := dataset.DecodeDelimited(strings.NewReader("city,population\nParis, 2.1\nLyon\n"), ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0].(*kind.OrderedMap)
	assert.Equal(t, []string{"city", "population"}, first.Keys)
	assert.Equal(t, "2.1", first.Values["population"])
	assert.Equal(t, "", rows[1].(*kind.OrderedMap).Values["population"])

	_, err = dataset.DecodeDelimited(strings.NewReader(""), ',')
	assert.ErrorIs(t, err, dataset.ErrNoHeader)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("label\tvalue\na\t1\n"), 0o600))

	v, err := dataset.ReadFile(path)
	require.NoError(t, err)

	rows := v.([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].(*kind.OrderedMap).Values["value"])

	_, err = dataset.ReadFile(filepath.Join(dir, "data.xml"))
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := dataset.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, dataset.FormatYAML, f)

	_, err = dataset.ParseFormat("xml")
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)
}
