/*
File    : golox/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop of the Lox
interpreter. Users type declarations and statements line by line against
a single long-lived evaluator, so variables and functions defined on one
line stay visible on the next. The REPL uses the readline library for
line editing and history.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/qig123/golox/eval"
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/parser"
	"github.com/qig123/golox/reporter"
)

// Color definitions for REPL output:
// - blueColor: separators
// - greenColor: banner
// - yellowColor: version info
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
	ShowAST bool   // When toggled via /ast, print the parsed tree before running
}

// NewRepl creates a REPL instance with the given visual configuration.
func NewRepl(banner string, version string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '/exit' to quit, '/ast' to toggle tree printing")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, set up readline,
// create the long-lived evaluator, then read-eval-print until the user
// exits with /exit or EOF (Ctrl+D).
//
// Parameters:
//   - reader: unused directly (readline owns the terminal), kept so
//     callers can pass a conventional (in, out) pair
//   - writer: output destination for results and diagnostics
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session: its global frame is the
	// top-level scope every line runs in.
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt (e.g. Ctrl+D)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == "/ast" {
			r.ShowAST = !r.ShowAST
			cyanColor.Fprintf(writer, "AST printing: %t\n", r.ShowAST)
			continue
		}

		rl.SaveHistory(line)
		r.ExecuteLine(writer, line, evaluator)
	}
}

// ExecuteLine runs one input line through the full pipeline against the
// session evaluator. Unlike file execution, errors never terminate the
// session: lex and parse errors discard the line, runtime errors abort
// only the current line, and the prompt comes back either way.
func (r *Repl) ExecuteLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	rep := reporter.NewReporter(line)
	rep.SetOut(writer)

	lex := lexer.NewLexer(line, rep)
	tokens := lex.ScanTokens()
	if lex.HadError {
		return
	}
	par := parser.NewParser(tokens, rep)
	root := par.Parse()
	if par.HasErrors() {
		return
	}

	if r.ShowAST {
		printer := &parser.PrintingVisitor{}
		root.Accept(printer)
		cyanColor.Fprintf(writer, "%s", printer.Buf.String())
	}

	if err := evaluator.Run(root); err != nil {
		rep.Report(err.Line, err.Column, err.Message)
	}
}
