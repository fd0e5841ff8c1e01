package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

// Emitter renders diagnostics against the source they were produced from
type Emitter struct {
	w        io.Writer
	filename string
	lines    []string
}

// NewEmitter creates an emitter writing to w. source is split into lines so
// each diagnostic can show the offending line.
func NewEmitter(w io.Writer, filename, source string) *Emitter {
	if filename == "" {
		filename = "<stdin>"
	}
	return &Emitter{
		w:        w,
		filename: filename,
		lines:    strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n"),
	}
}

func (e *Emitter) line(n int) (string, bool) {
	if n < 1 || n > len(e.lines) {
		return "", false
	}
	return e.lines[n-1], true
}

// Emit renders a single diagnostic
func (e *Emitter) Emit(diag *Diagnostic) error {
	var sb strings.Builder

	sb.WriteString(diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(&sb, "[%s]", diag.Code)
	}
	fmt.Fprintf(&sb, ": %s\n", diag.Message)

	pos := diag.Position
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", e.filename, pos.Line, pos.Column)

	if src, ok := e.line(pos.Line); ok {
		width := len(fmt.Sprint(pos.Line))
		gutter := strings.Repeat(" ", width)

		fmt.Fprintf(&sb, "%s |\n", gutter)
		fmt.Fprintf(&sb, "%*d | %s\n", width, pos.Line, src)
		fmt.Fprintf(&sb, "%s | %s^", gutter, caretPadding(src, pos.Column))
		if diag.Label != "" {
			sb.WriteString(" " + diag.Label)
		}
		sb.WriteString("\n")
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(&sb, "  = note: %s\n", note)
	}
	if diag.Help != "" {
		fmt.Fprintf(&sb, "  = help: %s\n", diag.Help)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(e.w, sb.String())
	return err
}

// EmitAll renders every diagnostic in the bag followed by a summary line
func (e *Emitter) EmitAll(bag *Bag) error {
	for _, diag := range bag.Diagnostics() {
		if err := e.Emit(diag); err != nil {
			return err
		}
	}
	return e.Summary(bag)
}

// Summary writes a one-line count of the errors in the bag. Nothing is
// written when the bag holds no errors.
func (e *Emitter) Summary(bag *Bag) error {
	n := bag.ErrorCount()
	if n == 0 {
		return nil
	}
	noun := "errors"
	if n == 1 {
		noun = "error"
	}
	_, err := fmt.Fprintf(e.w, "%s: lexing failed with %d %s\n", e.filename, n, noun)
	return err
}

// caretPadding returns whitespace spanning the characters before column,
// keeping tabs so the caret lines up with the rendered source
func caretPadding(src string, column int) string {
	var sb strings.Builder
	i := 1
	for _, r := range src {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	// positions past the end of the line (EOF, newline) still get a caret
	for ; i < column; i++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}
