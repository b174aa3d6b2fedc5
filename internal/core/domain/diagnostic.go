package domain

import "fmt"

// Severity is the level a validation problem was reported at.
type Severity uint8

const (
	// SeverityWarning is recorded but does not make a document invalid.
	SeverityWarning Severity = iota
	// SeverityError makes the document invalid; validation continues.
	SeverityError
	// SeverityFatal makes the document invalid and ends the validation pass.
	SeverityFatal
)

// Label returns the prefix written in front of a diagnostic in the error log.
func (s Severity) Label() string {
	switch s {
	case SeverityWarning:
		return "Warning: "
	case SeverityFatal:
		return "Fatal error: "
	default:
		return "Error: "
	}
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return "error"
	}
}

// Diagnostic is a single problem reported while validating a document.
type Diagnostic struct {
	Severity Severity
	SystemID string
	Line     int
	Column   int
	Message  string
}

// String renders the diagnostic as "(source: row R, column C): message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%s: row %d, column %d): %s", d.SystemID, d.Line, d.Column, d.Message)
}

// Invalidates reports whether the diagnostic makes a document invalid.
func (d Diagnostic) Invalidates() bool {
	return d.Severity != SeverityWarning
}

// Report is the outcome of one validation pass.
type Report struct {
	Valid       bool
	Diagnostics []Diagnostic
}

// Errors returns the number of error and fatal diagnostics.
func (r Report) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Invalidates() {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning diagnostics.
func (r Report) Warnings() int {
	return len(r.Diagnostics) - r.Errors()
}
