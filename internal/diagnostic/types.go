package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kinggod/d3-components/internal/common"
)

// Diagnostics holds all diagnostic information from one pipeline run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Component identifies the chart component this relates to (if any).
	Component string
	// FieldPath identifies which field or record this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, component, fieldPath string) {
	d.add(DiagnosticError, code, message, component, fieldPath)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, component, fieldPath string) {
	d.add(DiagnosticWarning, code, message, component, fieldPath)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, component, fieldPath string) {
	d.add(DiagnosticInfo, code, message, component, fieldPath)
}

// Add appends a prepared diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if d == nil {
		return
	}

	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// add is nil-safe so collectors can be optional.
func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, component, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  sev,
		Code:      code,
		Message:   message,
		Component: component,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return d != nil && len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	if d == nil {
		return nil
	}

	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Component != "" {
		prefix = append(prefix, "["+d.Component+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
