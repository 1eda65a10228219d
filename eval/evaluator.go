/*
File    : golox/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator of the Lox
// interpreter. It walks the parser's AST, reading and mutating the scope
// arena, producing values and the side effects of print statements.
//
// Two out-of-band values thread through the walk: *objects.Error aborts
// the current top-level statement, and *objects.ReturnValue unwinds a
// return toward the nearest enclosing call activation. Every block entry
// and every call activation restores its scope state on all exit paths,
// including both of those.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/qig123/golox/function"
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
	"github.com/qig123/golox/parser"
	"github.com/qig123/golox/scope"
)

// Evaluator holds the state for evaluating AST nodes: the environment
// arena with its current-frame cursor, and the output writer for print
// statements.
type Evaluator struct {
	Env    *scope.Environment // Scope frame arena and current-frame cursor
	Writer io.Writer          // Output destination for print (default: os.Stdout)
}

// NewEvaluator creates an evaluator with a fresh global scope and output
// going to standard output.
//
// Example usage:
//
//	ev := NewEvaluator()
//	if err := ev.Run(root); err != nil { ... }
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Env:    scope.NewEnvironment(),
		Writer: os.Stdout,
	}
}

// SetWriter redirects print output to any io.Writer. The tests use this
// to capture program output in a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run evaluates the program's top-level statements in order.
//
// A runtime error aborts the current statement and is returned to the
// driver. A return value unwinding past the top level has no call
// activation to catch it, so it is converted into a runtime error
// pointing at the 'return' keyword.
//
// Returns:
//   - *objects.Error: the first runtime error, or nil on success
func (e *Evaluator) Run(root *parser.RootNode) *objects.Error {
	for _, stmt := range root.Statements {
		result := e.Eval(stmt)
		if err, ok := result.(*objects.Error); ok {
			return err
		}
		if rv, ok := result.(*objects.ReturnValue); ok {
			return &objects.Error{
				Message: "Cannot return from top-level code.",
				Line:    rv.Line,
				Column:  rv.Column,
			}
		}
	}
	return nil
}

// CallFunction executes a function value with already-evaluated
// arguments.
//
// The activation sequence mirrors the declaration-time capture:
//  1. check arity against the argument count
//  2. save the caller's current frame id
//  3. splice the cursor to the function's closure anchor and enter a
//     fresh child frame there
//  4. bind each parameter to its argument in that frame
//  5. execute the body statements directly in the parameter frame
//  6. exit the frame and restore the caller's cursor - on every path
//
// A ReturnValue produced by the body is consumed here and its payload
// becomes the call's result; normal completion yields nil.
//
// Parameters:
//   - fn: The function value being called
//   - args: The evaluated arguments, left to right
//   - paren: The call's ')' token, for error positions
//
// Returns:
//   - objects.LoxObject: the call result, or an *objects.Error
func (e *Evaluator) CallFunction(fn *function.Function, args []objects.LoxObject, paren lexer.Token) objects.LoxObject {
	if len(args) != fn.Arity() {
		return e.CreateError(paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	saved := e.Env.Current()
	e.Env.SetCurrent(fn.Anchor)
	e.Env.EnterChild()

	for i, param := range fn.Params {
		e.Env.Define(param.Lexeme, args[i])
	}

	result := e.evalStatements(fn.Body.Statements)

	e.Env.Exit()
	e.Env.SetCurrent(saved)

	if IsError(result) {
		return result
	}
	if result.GetType() == objects.ReturnValueType {
		return UnwrapReturnValue(result)
	}
	return &objects.Nil{}
}

// CreateError builds a runtime error positioned at the given token.
// The format string and arguments follow fmt.Sprintf conventions.
//
// Example usage:
//
//	return e.CreateError(name, "Undefined variable '%s'", name.Lexeme)
func (e *Evaluator) CreateError(token lexer.Token, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, a...),
		Line:    token.Line,
		Column:  token.Column,
	}
}
