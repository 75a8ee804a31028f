package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	d.AddInfo("unmapped_field", "no source for field", "bar-chart", "value")
	d.AddWarning("invalid_date", "cannot parse", "line-chart", "x")
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError("duplicate_key", "duplicate field key \"x\"", "", "x")
	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "x: [duplicate_key] duplicate field key \"x\"")
	assert.Len(t, d.All(), 3)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
}

func TestDiagnosticsNilSafe(t *testing.T) {
	var d *Diagnostics

	assert.NotPanics(t, func() { d.AddWarning("c", "m", "", "") })
	assert.False(t, d.HasErrors())
	assert.Nil(t, d.All())
}

func TestDiagnosticString(t *testing.T) {
	diag := Diagnostic{
		Code:        "unknown_component",
		Message:     "component \"bar-chat\" is not registered",
		Component:   "bar-chat",
		Suggestions: []string{"bar-chart"},
	}

	assert.Equal(t,
		"[bar-chat]: [unknown_component] component \"bar-chat\" is not registered (did you mean bar-chart?)",
		diag.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("a", "a", "", "")
	b.AddError("b", "b", "", "")

	a.Merge(b)
	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Errors, 1)
}
