// Package diagnostics turns lexical ERROR tokens into reportable
// diagnostics and renders them against the source text.
package diagnostics

import (
	"github.com/aledsdavies/trim/pkgs/lexer"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic represents a problem found in a source file
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "L0005"
	Position lexer.Position
	Label    string // Text printed under the caret
	Notes    []string
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewHint creates a new hint diagnostic
func NewHint(message string) *Diagnostic {
	return &Diagnostic{Severity: Hint, Message: message}
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// At sets the source position and the label shown under it
func (d *Diagnostic) At(pos lexer.Position, label string) *Diagnostic {
	d.Position = pos
	d.Label = label
	return d
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, message)
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
