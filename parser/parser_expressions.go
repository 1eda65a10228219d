/*
File    : golox/parser/parser_expressions.go
*/
package parser

import (
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
)

// parseExpression parses a full expression. Assignment has the lowest
// precedence, so this is just its entry point.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseAssignment()
}

// parseAssignment parses: IDENT "=" assignment | logic_or
//
// The left side is parsed as an ordinary r-value first; only when an '='
// follows do we look at what we got. If it is a plain variable the tree
// becomes an assignment; anything else is reported as an invalid
// assignment target at the '=' token, but the already-parsed tree is
// returned rather than thrown away, so parsing continues cleanly.
// Recursing into parseAssignment for the right side makes chains like
// a = b = c right-associative.
func (par *Parser) parseAssignment() ExpressionNode {
	expr := par.parseOr()
	if expr == nil {
		return nil
	}

	if par.match(lexer.EQUAL_OP) {
		equals := par.previous()
		value := par.parseAssignment()
		if value == nil {
			return nil
		}
		if variable, ok := expr.(*VariableExpressionNode); ok {
			return &AssignExpressionNode{Name: variable.Name, Value: value}
		}
		par.reportError(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

// parseOr parses: logic_and ( "or" logic_and )*
func (par *Parser) parseOr() ExpressionNode {
	expr := par.parseAnd()
	if expr == nil {
		return nil
	}
	for par.match(lexer.OR_KEY) {
		operator := par.previous()
		right := par.parseAnd()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseAnd parses: equality ( "and" equality )*
func (par *Parser) parseAnd() ExpressionNode {
	expr := par.parseEquality()
	if expr == nil {
		return nil
	}
	for par.match(lexer.AND_KEY) {
		operator := par.previous()
		right := par.parseEquality()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseEquality parses: comparison ( ("!="|"==") comparison )*
func (par *Parser) parseEquality() ExpressionNode {
	expr := par.parseComparison()
	if expr == nil {
		return nil
	}
	for par.match(lexer.BANG_EQUAL_OP, lexer.EQUAL_EQUAL_OP) {
		operator := par.previous()
		right := par.parseComparison()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseComparison parses: term ( (">"|">="|"<"|"<=") term )*
func (par *Parser) parseComparison() ExpressionNode {
	expr := par.parseTerm()
	if expr == nil {
		return nil
	}
	for par.match(lexer.GREATER_OP, lexer.GREATER_EQUAL_OP, lexer.LESS_OP, lexer.LESS_EQUAL_OP) {
		operator := par.previous()
		right := par.parseTerm()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseTerm parses: factor ( ("-"|"+") factor )*
func (par *Parser) parseTerm() ExpressionNode {
	expr := par.parseFactor()
	if expr == nil {
		return nil
	}
	for par.match(lexer.MINUS_OP, lexer.PLUS_OP) {
		operator := par.previous()
		right := par.parseFactor()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseFactor parses: unary ( ("/"|"*") unary )*
func (par *Parser) parseFactor() ExpressionNode {
	expr := par.parseUnary()
	if expr == nil {
		return nil
	}
	for par.match(lexer.SLASH_OP, lexer.STAR_OP) {
		operator := par.previous()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: operator, Left: expr, Right: right}
	}
	return expr
}

// parseUnary parses: ("!"|"-") unary | call
func (par *Parser) parseUnary() ExpressionNode {
	if par.match(lexer.BANG_OP, lexer.MINUS_OP) {
		operator := par.previous()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		return &UnaryExpressionNode{Operation: operator, Right: right}
	}
	return par.parseCall()
}

// parseCall parses: primary ( "(" args? ")" )*
// Each '(' after a primary begins an argument list, so curried calls
// like f(1)(2) parse naturally left to right.
func (par *Parser) parseCall() ExpressionNode {
	expr := par.parsePrimary()
	if expr == nil {
		return nil
	}
	for par.match(lexer.LEFT_PAREN) {
		expr = par.finishCall(expr)
		if expr == nil {
			return nil
		}
	}
	return expr
}

// finishCall parses the argument list of a call whose '(' has already
// been consumed. Arguments beyond 255 are reported but still parsed, so
// the diagnostic does not derail the rest of the file.
func (par *Parser) finishCall(callee ExpressionNode) ExpressionNode {
	args := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				par.reportError(par.curr(), "Can't have more than 255 arguments.")
			}
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	paren, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if !ok {
		return nil
	}
	return &CallExpressionNode{Callee: callee, Paren: paren, Args: args}
}

// parsePrimary parses the leaves of the grammar:
// "true" | "false" | "nil" | NUMBER | STRING | IDENT | "(" expression ")"
func (par *Parser) parsePrimary() ExpressionNode {
	switch {
	case par.match(lexer.TRUE_KEY):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: true}}
	case par.match(lexer.FALSE_KEY):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: false}}
	case par.match(lexer.NIL_KEY):
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Nil{}}
	case par.match(lexer.NUMBER_LIT):
		token := par.previous()
		return &LiteralExpressionNode{Token: token, Value: &objects.Number{Value: token.Value.(float64)}}
	case par.match(lexer.STRING_LIT):
		token := par.previous()
		return &LiteralExpressionNode{Token: token, Value: &objects.String{Value: token.Value.(string)}}
	case par.match(lexer.IDENTIFIER_ID):
		return &VariableExpressionNode{Name: par.previous()}
	case par.match(lexer.LEFT_PAREN):
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		if _, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after expression."); !ok {
			return nil
		}
		return &GroupingExpressionNode{Expr: expr}
	default:
		par.reportError(par.curr(), "Expect expression.")
		return nil
	}
}
