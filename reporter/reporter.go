/*
File    : golox/reporter/reporter.go
*/

// Package reporter formats source diagnostics for the Lox interpreter.
// Every diagnostic points at a line and column in the original source and
// is rendered with the offending line and a caret underneath, so the user
// can see exactly where the lexer, parser, or evaluator gave up.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color definitions for diagnostic output.
// Errors are red, the quoted source context is left uncolored so the
// caret alignment is not disturbed by escape sequences on dumb terminals.
var (
	redColor = color.New(color.FgRed)
)

// Reporter renders line/column diagnostics against a fixed source text.
// It is shared by the lexer, the parser, and the driver (for runtime
// errors); each of them only knows "line, column, message" and the
// reporter takes care of quoting the source.
//
// Fields:
//   - Lines: the source split on '\n', kept so diagnostics can quote it
//   - Out: destination for diagnostics (os.Stderr unless redirected)
//   - Count: number of diagnostics emitted so far
type Reporter struct {
	Lines []string  // Source text split into lines (0-indexed storage, 1-indexed display)
	Out   io.Writer // Diagnostic destination, os.Stderr by default
	Count int       // How many diagnostics have been emitted
}

// NewReporter creates a Reporter for the given source text.
// The source is split into lines once, up front; diagnostics quote from
// this snapshot even if the caller drops the original string.
//
// Parameters:
//   - source: the complete source text being processed
//
// Returns:
//   - *Reporter: a reporter writing to os.Stderr
func NewReporter(source string) *Reporter {
	return &Reporter{
		Lines: strings.Split(source, "\n"),
		Out:   os.Stderr,
	}
}

// SetOut redirects diagnostic output, which the tests use to capture
// diagnostics in a buffer the same way the evaluator's writer is captured.
func (r *Reporter) SetOut(w io.Writer) {
	r.Out = w
}

// HadError reports whether any diagnostic has been emitted through this
// reporter. The driver does not consult it: it gates evaluation on the
// lexer's HadError flag and the parser's HasErrors.
func (r *Reporter) HadError() bool {
	return r.Count > 0
}

// Report prints a single-line diagnostic: the message, a blank line, the
// source line prefixed with its 1-based number and a '|', and a caret
// aligned under the offending column.
//
// Example output:
//
//	Error: Undefined variable 'x'
//
//	   3 | print x;
//	     |       ^-- Here.
//
// Parameters:
//   - line: 1-based source line of the diagnostic
//   - column: 1-based column the caret points at
//   - message: the diagnostic text
func (r *Reporter) Report(line int, column int, message string) {
	r.Count++
	redColor.Fprintf(r.Out, "Error: %s\n", message)
	fmt.Fprintln(r.Out)

	if line < 1 || line > len(r.Lines) {
		// No source context to quote (e.g. EOF past the last line).
		return
	}
	fmt.Fprintf(r.Out, "%4d | %s\n", line, r.Lines[line-1])
	fmt.Fprintf(r.Out, "     | %s^-- Here.\n", strings.Repeat(" ", column-1))
}

// ReportSpan prints a multi-line diagnostic for errors that span source
// lines, which in practice means an unterminated string literal. All
// affected lines are quoted; the caret sits under the opening column of
// the first line and the final line is followed by a "never closes" tail.
//
// Example output:
//
//	Error: Unterminated string.
//
//	   2 | var s = "hello
//	     |         ^-- String starts here
//	   3 | print s;
//	     | ... string never closes
//
// Parameters:
//   - startLine: 1-based line where the span opens
//   - column: 1-based column of the opening character
//   - endLine: 1-based last affected line (clamped to the source)
//   - message: the diagnostic text
func (r *Reporter) ReportSpan(startLine int, column int, endLine int, message string) {
	r.Count++
	redColor.Fprintf(r.Out, "Error: %s\n", message)
	fmt.Fprintln(r.Out)

	if endLine > len(r.Lines) {
		endLine = len(r.Lines)
	}
	for line := startLine; line <= endLine; line++ {
		if line < 1 || line > len(r.Lines) {
			continue
		}
		fmt.Fprintf(r.Out, "%4d | %s\n", line, r.Lines[line-1])
		if line == startLine {
			fmt.Fprintf(r.Out, "     | %s^-- String starts here\n", strings.Repeat(" ", column-1))
		}
	}
	fmt.Fprintf(r.Out, "     | ... string never closes\n")
}
