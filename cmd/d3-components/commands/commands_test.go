package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/coerce"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/resolve"
	"github.com/kinggod/d3-components/tree"
)

func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--log-level", "off"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	return v
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, nil, "resolve", "pie-chart", "--set", "width=600", "--set", "height=300", "--set", "title.text=Sales")
	require.NoError(t, err)

	opts := decodeJSON(t, out)
	assert.Equal(t, 516.0, opts["innerWidth"])
	assert.Equal(t, "descending(value)", opts["sort"])
	assert.Equal(t, "function", opts["tooltip"].(map[string]any)["html"])
	assert.Equal(t, "Sales", opts["title"].(map[string]any)["text"])
}

func TestResolveCommandOptionsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "opts.jsonc", `{
		// narrow chart
		"width": 200,
		"margin": {"left": "8px"},
	}`)

	out, err := run(t, nil, "resolve", "bar-chart", "-o", path, "-f", "yaml")
	require.NoError(t, err)

	var opts map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &opts))
	assert.Equal(t, 8, opts["margin"].(map[string]any)["left"])
	assert.Equal(t, 164, opts["innerWidth"])
}

func TestResolveCommandErrors(t *testing.T) {
	_, err := run(t, nil, "resolve", "bar-chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "bar-chart"`)

	_, err = run(t, nil, "resolve", "bar-chart", "--set", "width")
	assert.ErrorIs(t, err, ErrBadAssignment)

	_, err = run(t, nil, "resolve", "bar-chart", "-f", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestNormalizeCommand(t *testing.T) {
	in := strings.NewReader(`[{"name": "a", "count": "2"}, null, [{"name": "b", "count": 3}]]`)

	out, err := run(t, in, "normalize", "pie-chart")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, []map[string]any{
		{"label": "a", "value": 2.0},
		{"label": "b", "value": 3.0, "series": "1"},
	}, records)
}

func TestNormalizeCommandCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sales.csv", "name,count\nnorth,10\n")

	out, err := run(t, nil, "normalize", "bar-chart", "--data", path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label": "north", "value": 10}]`, out)
}

func TestPrepareCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tree.json", `{"name": "root", "children": [{"name": "leaf", "count": 1}]}`)
	req := writeFile(t, dir, "chart.yaml", `
type: sunburst-chart
data: tree.json
options:
  width: 300
  height: 300
`)

	out, err := run(t, nil, "prepare", req, "--data-dir", dir, "--set", "id=sun")
	require.NoError(t, err)

	res := decodeJSON(t, out)
	records := res["records"].(map[string]any)
	assert.Equal(t, "root", records["label"])
	assert.Len(t, records["children"], 1)

	opts := res["options"].(map[string]any)
	assert.Equal(t, "sun-tooltip", opts["tooltip"].(map[string]any)["id"])
	assert.Equal(t, 216.0, opts["innerWidth"])
}

func TestPrepareCommandComponent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.yaml", "- {name: a, count: 1}\n")

	out, err := run(t, nil, "prepare", "bar-chart", "--data", path)
	require.NoError(t, err)

	res := decodeJSON(t, out)
	assert.Equal(t, []any{map[string]any{"label": "a", "value": 1.0}}, res["records"])

	_, err = run(t, nil, "prepare", "no-such-chart")
	assert.ErrorContains(t, err, `unknown component "no-such-chart"`)
}

func TestComponentsCommand(t *testing.T) {
	out, err := run(t, nil, "components")
	require.NoError(t, err)
	assert.Equal(t, "bar-chart\nchoropleth-map\nline-chart\npie-chart\nsunburst-chart\n", out)

	out, err = run(t, nil, "components", "sunburst-chart", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "hierarchy: true")
	assert.Contains(t, out, "type: array")
}

func TestComponentFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gauge.yaml", `
id: gauge
schema:
  entries:
    - key: value
      type: number
defaults:
  arc:
    width: 1em
`)

	out, err := run(t, nil, "--component-file", path, "resolve", "gauge")
	require.NoError(t, err)

	opts := decodeJSON(t, out)
	assert.Equal(t, 14.0, opts["arc"].(map[string]any)["width"])
}

func TestEnvSettingsMeasure(t *testing.T) {
	t.Setenv(envWidth, "500")
	t.Setenv(envFontSize, "10")

	out, err := run(t, nil, "resolve", "line-chart")
	require.NoError(t, err)

	opts := decodeJSON(t, out)
	assert.Equal(t, 500.0, opts["width"])
	assert.Equal(t, 309.0, opts["height"])
	assert.Equal(t, 10.0, opts["fontSize"])
	assert.Equal(t, 440.0, opts["innerWidth"])
}

func TestEnvSettingsInvalid(t *testing.T) {
	t.Setenv(envHeight, "tall")

	_, err := run(t, nil, "components")
	assert.ErrorContains(t, err, envHeight)
}

func TestSettingsLayering(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", `
logLevel: debug
format: yaml
measure:
  width: 800
  height: 600
`)

	file, err := fileSettings(path)
	require.NoError(t, err)

	s := Settings{Format: "dump"}
	env := Settings{Measure: resolve.Measurement{Height: 480}}
	require.NoError(t, layer(&s, env, file, defaultSettings()))

	assert.Equal(t, "dump", s.Format)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 800.0, s.Measure.Width)
	assert.Equal(t, 480.0, s.Measure.Height)
	assert.Equal(t, ".", s.DataDir)

	_, err = fileSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, loadEnvFile(filepath.Join(dir, ".env"), false))
	assert.Error(t, loadEnvFile(filepath.Join(dir, ".env"), true))

	path := writeFile(t, dir, "test.env", envLineHeight+"=30\n")
	t.Cleanup(func() { _ = os.Unsetenv(envLineHeight) })
	require.NoError(t, loadEnvFile(path, true))

	s, err := envSettings()
	require.NoError(t, err)
	assert.Equal(t, 30.0, s.Measure.LineHeight)
}

func TestDumpFormat(t *testing.T) {
	out, err := run(t, nil, "resolve", "bar-chart", "-f", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(tree.Tree)")
	assert.Contains(t, out, `"innerWidth"`)
}

func TestPlain(t *testing.T) {
	om := kind.NewOrderedMap()
	om.Set("b", math.NaN())
	om.Set("a", []any{kind.Undefined, coerce.Comparator{Direction: coerce.Ascending, Field: "x"}})

	got := plain(tree.Tree{
		"fn":    func() {},
		"inf":   math.Inf(-1),
		"kind":  kind.KindDate,
		"n":     3,
		"inner": om,
	})

	assert.Equal(t, map[string]any{
		"fn":   "function",
		"inf":  "-Infinity",
		"kind": "date",
		"n":    3,
		"inner": map[string]any{
			"b": "NaN",
			"a": []any{nil, "ascending(x)"},
		},
	}, got)
}
