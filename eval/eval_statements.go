/*
File    : golox/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/qig123/golox/function"
	"github.com/qig123/golox/objects"
	"github.com/qig123/golox/parser"
)

// evalStatements executes a statement list in order. Evaluation stops
// early when a statement produces an error or a return unwind; the
// signal propagates unchanged to whoever owns the enclosing frame.
func (e *Evaluator) evalStatements(statements []parser.StatementNode) objects.LoxObject {
	var result objects.LoxObject = &objects.Nil{}
	for _, stmt := range statements {
		result = e.Eval(stmt)
		if result != nil {
			t := result.GetType()
			if t == objects.ErrorType || t == objects.ReturnValueType {
				return result
			}
		}
	}
	return result
}

// evalExpressionStatement evaluates an expression for its side effects
// and discards the value, keeping only a propagating signal.
func (e *Evaluator) evalExpressionStatement(n *parser.ExpressionStatementNode) objects.LoxObject {
	result := e.Eval(n.Expr)
	if IsError(result) {
		return result
	}
	return &objects.Nil{}
}

// evalPrintStatement renders the expression's value to the writer,
// followed by exactly one newline.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.LoxObject {
	value := e.Eval(n.Expr)
	if IsError(value) {
		return value
	}
	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}
}

// evalVarStatement binds a name in the current frame. A declaration
// without an initializer binds nil, so reading it later succeeds.
func (e *Evaluator) evalVarStatement(n *parser.VarStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}
	if n.Initializer != nil {
		value = e.Eval(n.Initializer)
		if IsError(value) {
			return value
		}
	}
	e.Env.Define(n.Name.Lexeme, value)
	return &objects.Nil{}
}

// evalBlockStatement runs the block's statements in a fresh child frame.
// The frame is exited on every path out: normal completion, a runtime
// error, and a return unwind all pass through the single Exit below.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.LoxObject {
	e.Env.EnterChild()
	result := e.evalStatements(n.Statements)
	e.Env.Exit()
	return result
}

// evalIfStatement coerces the condition by truthiness and executes the
// matching branch. A missing else branch makes the falsy case a no-op.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.LoxObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}
	if objects.IsTruthy(condition) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return &objects.Nil{}
}

// evalWhileStatement re-evaluates the condition before each iteration.
// The loop itself adds no scope frame; a block body enters its own.
// Errors and return unwinds from either the condition or the body break
// out and propagate.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) objects.LoxObject {
	for {
		condition := e.Eval(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			return &objects.Nil{}
		}
		result := e.Eval(n.Body)
		if result != nil {
			t := result.GetType()
			if t == objects.ErrorType || t == objects.ReturnValueType {
				return result
			}
		}
	}
}

// evalFunctionStatement creates a function value anchored at the current
// frame and binds it under the function's name in that same frame. The
// anchor is what the function's calls will resolve free names through,
// so declaring a function inside a block captures that block's frame.
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Name:   n.Name.Lexeme,
		Params: n.Params,
		Body:   n.Body,
		Anchor: e.Env.Current(),
	}
	e.Env.Define(n.Name.Lexeme, fn)
	return &objects.Nil{}
}

// evalReturnStatement evaluates the result expression (nil when absent)
// and raises the unwind signal. The wrapper records the keyword's
// position so a return with no enclosing call can be diagnosed.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{
		Value:  value,
		Line:   n.Keyword.Line,
		Column: n.Keyword.Column,
	}
}
