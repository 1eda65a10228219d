/*
File    : golox/eval/eval_expressions.go
*/
package eval

import (
	"github.com/qig123/golox/function"
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
	"github.com/qig123/golox/parser"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime values. It routes each node type to its handler; complex
// expressions recurse through here for their sub-expressions.
//
// Parameters:
//   - n: The AST node to evaluate
//
// Returns:
//   - objects.LoxObject: The result of evaluating the node. Statements
//     yield Nil unless an error or a return unwind is propagating.
func (e *Evaluator) Eval(n parser.Node) objects.LoxObject {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalStatements(n.Statements)
	case *parser.LiteralExpressionNode:
		return n.Value
	case *parser.GroupingExpressionNode:
		return e.Eval(n.Expr)
	case *parser.VariableExpressionNode:
		return e.evalVariableExpression(n)
	case *parser.AssignExpressionNode:
		return e.evalAssignExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.ExpressionStatementNode:
		return e.evalExpressionStatement(n)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.VarStatementNode:
		return e.evalVarStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	default:
		return &objects.Nil{}
	}
}

// evalVariableExpression reads a variable through the scope chain.
func (e *Evaluator) evalVariableExpression(n *parser.VariableExpressionNode) objects.LoxObject {
	value, ok := e.Env.Get(n.Name.Lexeme)
	if !ok {
		return e.CreateError(n.Name, "Undefined variable '%s'", n.Name.Lexeme)
	}
	return value
}

// evalAssignExpression evaluates the right-hand side, then overwrites
// the nearest enclosing binding. Assignment never creates a binding, and
// as an expression it yields the assigned value so chains work.
func (e *Evaluator) evalAssignExpression(n *parser.AssignExpressionNode) objects.LoxObject {
	value := e.Eval(n.Value)
	if IsError(value) {
		return value
	}
	if !e.Env.Assign(n.Name.Lexeme, value) {
		return e.CreateError(n.Name, "Undefined variable '%s'", n.Name.Lexeme)
	}
	return value
}

// evalUnaryExpression handles prefix - (numbers only) and ! (boolean
// negation of truthiness, defined for every value).
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.CreateError(n.Operation, "Operands must be a number")
		}
		return &objects.Number{Value: -num.Value}
	case lexer.BANG_OP:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}
	default:
		return e.CreateError(n.Operation, "Unknown unary operator '%s'", n.Operation.Lexeme)
	}
}

// evalBinaryExpression evaluates both operands left to right, then
// applies the operator:
//   - '+' adds two numbers or concatenates two strings
//   - '-', '*', '/' require two numbers; '/' follows IEEE-754, so
//     dividing by zero yields an infinity or NaN, never an error
//   - '<', '<=', '>', '>=' compare two numbers
//   - '==', '!=' use variant-aware equality and accept any values
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.PLUS_OP:
		if ln, ok := left.(*objects.Number); ok {
			if rn, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: ln.Value + rn.Value}
			}
		}
		if ls, ok := left.(*objects.String); ok {
			if rs, ok := right.(*objects.String); ok {
				return &objects.String{Value: ls.Value + rs.Value}
			}
		}
		return e.CreateError(n.Operation, "Operands must be two numbers or two strings")
	case lexer.EQUAL_EQUAL_OP:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}
	case lexer.BANG_EQUAL_OP:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}
	}

	// Every remaining operator works on two numbers.
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return e.CreateError(n.Operation, "Operands must be two numbers")
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: ln.Value - rn.Value}
	case lexer.STAR_OP:
		return &objects.Number{Value: ln.Value * rn.Value}
	case lexer.SLASH_OP:
		return &objects.Number{Value: ln.Value / rn.Value}
	case lexer.GREATER_OP:
		return &objects.Boolean{Value: ln.Value > rn.Value}
	case lexer.GREATER_EQUAL_OP:
		return &objects.Boolean{Value: ln.Value >= rn.Value}
	case lexer.LESS_OP:
		return &objects.Boolean{Value: ln.Value < rn.Value}
	case lexer.LESS_EQUAL_OP:
		return &objects.Boolean{Value: ln.Value <= rn.Value}
	default:
		return e.CreateError(n.Operation, "Unknown binary operator '%s'", n.Operation.Lexeme)
	}
}

// evalLogicalExpression implements short-circuit and/or. The result is
// the operand that decided the outcome, not a coerced boolean: nil or 1
// yields 1, and 0 and 2 yields 2 because 0 is truthy. The right operand
// is only evaluated when the left does not decide.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}

	if n.Operation.Type == lexer.OR_KEY {
		if objects.IsTruthy(left) {
			return left
		}
	} else {
		if !objects.IsTruthy(left) {
			return left
		}
	}
	return e.Eval(n.Right)
}

// evalCallExpression evaluates the callee, then the arguments left to
// right, and hands off to CallFunction. Only function values are
// callable.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.LoxObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg := e.Eval(argExpr)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	fn, ok := callee.(*function.Function)
	if !ok {
		return e.CreateError(n.Paren, "Can only call functions")
	}
	return e.CallFunction(fn, args, n.Paren)
}
