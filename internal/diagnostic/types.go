package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"variant-matrix/internal/common"
)

// Diagnostic codes emitted by this module.
const (
	CodeDuplicateAttribute   = "duplicate_attribute"
	CodeMissingAttributeName = "missing_attribute_name"
	CodeEmptyValue           = "empty_value"
	CodeDuplicateVariantID   = "duplicate_variant_id"
	CodeMissingVariantID     = "missing_variant_id"
	CodeUnknownValue         = "unknown_value"
	CodeIncompatibleValue    = "incompatible_value"
	CodeRepairedValue        = "repaired_value"
	CodeUnrepairedValue      = "unrepaired_value"
)

// Diagnostics holds all diagnostic information from one operation.
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
	// VariantID identifies which variant this relates to (if any).
	VariantID string
	// Attribute identifies which attribute this relates to (if any).
	Attribute string
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
func (d *Diagnostics) AddError(code, message, variantID, attribute string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, variantID, attribute))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, variantID, attribute string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, variantID, attribute))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, variantID, attribute string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, variantID, attribute))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, variantID, attribute string) Diagnostic {
	return Diagnostic{
		Severity:  sev,
		Code:      code,
		Message:   message,
		VariantID: variantID,
		Attribute: attribute,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
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
	if d.VariantID != "" {
		prefix = append(prefix, "["+d.VariantID+"]")
	}

	if d.Attribute != "" {
		prefix = append(prefix, d.Attribute)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
