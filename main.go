/*
File    : golox/main.go

Package main is the entry point for the golox interpreter.
It provides two modes of operation:
1. File mode: execute a Lox source file given as the single argument
2. Interactive mode (-i): a Read-Eval-Print Loop for live coding

The interpreter uses a lexer-parser-evaluator pipeline; diagnostics from
every stage go to standard error through the shared reporter, and only
the program's print statements write to standard output.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/qig123/golox/eval"
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/parser"
	"github.com/qig123/golox/repl"
	"github.com/qig123/golox/reporter"
)

// VERSION represents the current version of the golox interpreter
var VERSION = "v1.0.0"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in interactive mode
var PROMPT = "golox >>> "

// BANNER is the logo displayed when starting the interactive mode
var BANNER = `
             _
   __ _  ___ | | ___ __  __
  / _' |/ _ \| |/ _ \\ \/ /
 | (_| | (_) | | (_) |>  <
  \__, |\___/|_|\___//_/\_\
  |___/
`

// LINE is a separator line used for visual formatting
var LINE = "----------------------------------------------------------------"

// Process exit codes. 65 and 70 follow the BSD sysexits convention:
// EX_DATAERR for malformed input, EX_SOFTWARE for an internal failure,
// here meaning a runtime error in the interpreted program.
const (
	EXIT_OK       = 0  // Clean run
	EXIT_USAGE    = 64 // Bad command line
	EXIT_DATAERR  = 65 // Lex or parse diagnostics were emitted
	EXIT_SOFTWARE = 70 // Runtime error
)

// Color definitions for driver output:
// - redColor: error messages and usage failures
// - cyanColor: informational messages
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches on the command line and exits with the pipeline's
// exit code.
//
// Usage:
//
//	golox <path-to-file>    - Execute the given Lox source file
//	golox -i                - Start interactive mode
//	golox --help            - Display help information
//	golox --version         - Display version information
//
// Anything else, including no arguments at all or more than one, is a
// usage error.
func main() {
	os.Exit(Run(os.Args[1:]))
}

// Run interprets the argument list and returns the process exit code.
// It is split from main so the tests can drive the dispatcher without
// exiting the test process.
func Run(args []string) int {
	if len(args) != 1 {
		showUsage()
		return EXIT_USAGE
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return EXIT_OK
	case "--version", "-v":
		showVersion()
		return EXIT_OK
	case "--interactive", "-i":
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return EXIT_OK
	}
	return runFile(args[0])
}

// showUsage prints the usage summary for bad invocations.
func showUsage() {
	redColor.Fprintln(os.Stderr, "Usage: golox <path-to-file>")
	redColor.Fprintln(os.Stderr, "       golox -i")
}

// showHelp displays the help information for the golox interpreter
func showHelp() {
	cyanColor.Println("golox - A Lox Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  golox <path-to-file>      Execute a Lox file (.lox)")
	cyanColor.Println("  golox -i                  Start interactive mode")
	cyanColor.Println("  golox --help              Display this help message")
	cyanColor.Println("  golox --version           Display version information")
}

// showVersion displays the version information for the golox interpreter
func showVersion() {
	cyanColor.Println("golox - A Lox Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
}

// runFile reads a source file and runs it through the pipeline.
// A file that cannot be read is a usage-level failure, not a program
// error, and is reported directly rather than through the reporter.
func runFile(fileName string) int {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", errors.Wrapf(err, "could not read file %q", fileName))
		return EXIT_USAGE
	}
	return RunSource(string(content), os.Stdout, os.Stderr)
}

// RunSource executes Lox source text through the complete pipeline and
// returns the process exit code. Program output goes to stdout and all
// diagnostics to stderr, so the two streams can be captured separately -
// which is exactly what the end-to-end tests do.
//
// The stage gates match the propagation policy: the lexer surfaces every
// lexical error before the parser sees anything, the parser recovers and
// accumulates, and evaluation only starts on a diagnostic-free parse.
func RunSource(source string, stdout io.Writer, stderr io.Writer) int {
	rep := reporter.NewReporter(source)
	rep.SetOut(stderr)

	lex := lexer.NewLexer(source, rep)
	tokens := lex.ScanTokens()
	if lex.HadError {
		// The lexer surfaced every lexical error; a token stream with
		// holes in it is not worth parsing.
		return EXIT_DATAERR
	}

	par := parser.NewParser(tokens, rep)
	root := par.Parse()
	if par.HasErrors() {
		return EXIT_DATAERR
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(stdout)
	if runtimeErr := evaluator.Run(root); runtimeErr != nil {
		rep.Report(runtimeErr.Line, runtimeErr.Column, runtimeErr.Message)
		return EXIT_SOFTWARE
	}
	return EXIT_OK
}
