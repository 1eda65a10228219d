/*
File    : golox/parser/parser_statements.go
*/
package parser

import (
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
)

// parseDeclaration parses one declaration: a var declaration, a function
// declaration, or any other statement. This is the recovery point: when
// anything below fails, the parser synchronizes to the next statement
// boundary and returns nil so the caller can keep going.
func (par *Parser) parseDeclaration() StatementNode {
	var stmt StatementNode
	if par.match(lexer.VAR_KEY) {
		stmt = par.parseVarDeclaration()
	} else if par.match(lexer.FUN_KEY) {
		stmt = par.parseFunDeclaration()
	} else {
		stmt = par.parseStatement()
	}
	if stmt == nil {
		par.synchronize()
	}
	return stmt
}

// parseVarDeclaration parses: "var" IDENT ( "=" expression )? ";"
// The 'var' keyword has already been consumed. A declaration without an
// initializer binds the variable to nil at evaluation time.
func (par *Parser) parseVarDeclaration() StatementNode {
	name, ok := par.expect(lexer.IDENTIFIER_ID, "Expect variable name.")
	if !ok {
		return nil
	}

	var initializer ExpressionNode
	if par.match(lexer.EQUAL_OP) {
		initializer = par.parseExpression()
		if initializer == nil {
			return nil
		}
	}

	if _, ok := par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return &VarStatementNode{Name: name, Initializer: initializer}
}

// parseFunDeclaration parses: "fun" IDENT "(" params? ")" block
// The 'fun' keyword has already been consumed. Parameter lists share the
// 255-entry cap with call argument lists.
func (par *Parser) parseFunDeclaration() StatementNode {
	name, ok := par.expect(lexer.IDENTIFIER_ID, "Expect function name.")
	if !ok {
		return nil
	}
	if _, ok := par.expect(lexer.LEFT_PAREN, "Expect '(' after function name."); !ok {
		return nil
	}

	params := make([]lexer.Token, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				// Report but keep parsing; the cap is a diagnostic,
				// not a reason to lose the rest of the declaration.
				par.reportError(par.curr(), "Can't have more than 255 parameters.")
			}
			param, ok := par.expect(lexer.IDENTIFIER_ID, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after parameters."); !ok {
		return nil
	}

	if _, ok := par.expect(lexer.LEFT_BRACE, "Expect '{' before function body."); !ok {
		return nil
	}
	body := par.parseBlock()
	if body == nil {
		return nil
	}
	return &FunctionStatementNode{Name: name, Params: params, Body: body}
}

// parseStatement parses one non-declaration statement.
func (par *Parser) parseStatement() StatementNode {
	switch {
	case par.match(lexer.PRINT_KEY):
		return par.parsePrintStatement()
	case par.match(lexer.LEFT_BRACE):
		block := par.parseBlock()
		if block == nil {
			return nil
		}
		return block
	case par.match(lexer.IF_KEY):
		return par.parseIfStatement()
	case par.match(lexer.WHILE_KEY):
		return par.parseWhileStatement()
	case par.match(lexer.FOR_KEY):
		return par.parseForStatement()
	case par.match(lexer.RETURN_KEY):
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parsePrintStatement parses: "print" expression ";"
// The 'print' keyword has already been consumed.
func (par *Parser) parsePrintStatement() StatementNode {
	keyword := par.previous()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if _, ok := par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after value."); !ok {
		return nil
	}
	return &PrintStatementNode{Keyword: keyword, Expr: value}
}

// parseBlock parses: declaration* "}"
// The opening brace has already been consumed.
func (par *Parser) parseBlock() *BlockStatementNode {
	statements := make([]StatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, ok := par.expect(lexer.RIGHT_BRACE, "Expect '}' after block."); !ok {
		return nil
	}
	return &BlockStatementNode{Statements: statements}
}

// parseIfStatement parses: "if" "(" expression ")" statement
// ( "else" statement )?
// The 'if' keyword has already been consumed. The else binds to the
// nearest if, which falls out of the recursive call.
func (par *Parser) parseIfStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN, "Expect '(' after 'if'."); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after if condition."); !ok {
		return nil
	}

	thenBranch := par.parseStatement()
	if thenBranch == nil {
		return nil
	}
	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}
	return &IfStatementNode{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// parseWhileStatement parses: "while" "(" expression ")" statement
// The 'while' keyword has already been consumed. The loop itself adds no
// scope frame; only a block body does.
func (par *Parser) parseWhileStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN, "Expect '(' after 'while'."); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after condition."); !ok {
		return nil
	}
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileStatementNode{Condition: condition, Body: body}
}

// parseForStatement parses the C-style for loop and desugars it on the
// spot:
//
//	for (init; cond; step) body
//
// becomes
//
//	{ init; while (cond) { body; step; } }
//
// A missing condition defaults to literal true; missing parts are simply
// elided. No For node survives parsing, so the evaluator never sees one.
func (par *Parser) parseForStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN, "Expect '(' after 'for'."); !ok {
		return nil
	}

	// Initializer: a var declaration, an expression statement, or nothing.
	var initializer StatementNode
	if par.match(lexer.SEMICOLON_DELIM) {
		initializer = nil
	} else if par.match(lexer.VAR_KEY) {
		initializer = par.parseVarDeclaration()
		if initializer == nil {
			return nil
		}
	} else {
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition: defaults to literal true when omitted.
	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
	}
	if _, ok := par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition."); !ok {
		return nil
	}

	// Step: runs after each iteration of the body.
	var step ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		step = par.parseExpression()
		if step == nil {
			return nil
		}
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); !ok {
		return nil
	}

	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar inside out: append the step to the body, wrap in a while,
	// then prepend the initializer in an enclosing block.
	if step != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: step},
		}}
	}
	if condition == nil {
		condition = &LiteralExpressionNode{
			Token: lexer.NewToken(lexer.TRUE_KEY, "true", par.previous().Line, par.previous().Column),
			Value: &objects.Boolean{Value: true},
		}
	}
	var loop StatementNode = &WhileStatementNode{Condition: condition, Body: body}
	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}
	return loop
}

// parseReturnStatement parses: "return" expression? ";"
// The 'return' keyword has already been consumed; its token is kept so
// a return escaping the outermost call can be reported there.
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.previous()
	var value ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		value = par.parseExpression()
		if value == nil {
			return nil
		}
	}
	if _, ok := par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after return value."); !ok {
		return nil
	}
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

// parseExpressionStatement parses: expression ";"
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if _, ok := par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after expression."); !ok {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}
