/*
File    : golox/parser/parser.go
*/

/*
Package parser implements a recursive descent parser for the Lox
language. It converts the lexer's token list into an Abstract Syntax
Tree of statements and expressions.

The grammar, lowest precedence first:

	program     := declaration* EOF
	declaration := varDecl | funDecl | statement
	statement   := exprStmt | printStmt | block | ifStmt | whileStmt
	             | forStmt | returnStmt
	expression  := assignment
	assignment  := IDENT "=" assignment | logic_or
	logic_or    := logic_and ( "or" logic_and )*
	logic_and   := equality ( "and" equality )*
	equality    := comparison ( ("!="|"==") comparison )*
	comparison  := term ( (">"|">="|"<"|"<=") term )*
	term        := factor ( ("-"|"+") factor )*
	factor      := unary ( ("/"|"*") unary )*
	unary       := ("!"|"-") unary | call
	call        := primary ( "(" args? ")" )*
	primary     := "true"|"false"|"nil"|NUMBER|STRING|IDENT|"(" expression ")"

Key features:
- Error collection: the parser reports through the shared reporter and
  keeps parsing, so one run surfaces multiple errors
- Synchronization: after an error the parser skips to the next statement
  boundary and resumes at declaration level
- For loops desugar into while loops at parse time; no For node exists
*/
package parser

import (
	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/reporter"
)

// Parser represents the parser state: the token list, a cursor into it,
// the diagnostic reporter, and the collected error messages.
type Parser struct {
	Tokens []lexer.Token      // Token list ending with the EOF sentinel
	Pos    int                // Index of the current (unconsumed) token
	Rep    *reporter.Reporter // Diagnostic sink shared with the lexer
	Errors []string           // Collected error messages, for callers and tests
}

// NewParser creates a Parser over a scanned token list. The list must be
// terminated by an EOF token, which ScanTokens guarantees.
//
// Parameters:
//   - tokens: The token list produced by the lexer
//   - rep: The reporter that receives parse diagnostics
//
// Returns:
//   - *Parser: A parser ready to build the AST
func NewParser(tokens []lexer.Token, rep *reporter.Reporter) *Parser {
	return &Parser{
		Tokens: tokens,
		Rep:    rep,
		Errors: make([]string, 0),
	}
}

// Parse is the main entry point: it parses declarations until EOF and
// returns the program root. The parse is successful iff HasErrors()
// reports false afterwards; on errors the returned tree holds whatever
// declarations survived recovery and must not be evaluated.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}
	return root
}

// HasErrors returns true if any parse diagnostics were emitted.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parse error messages collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// curr returns the current (unconsumed) token.
func (par *Parser) curr() lexer.Token {
	return par.Tokens[par.Pos]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Pos-1]
}

// isAtEnd reports whether the cursor sits on the EOF sentinel.
func (par *Parser) isAtEnd() bool {
	return par.curr().Type == lexer.EOF_TYPE
}

// advance consumes the current token and returns it. At EOF it returns
// the sentinel without moving, so callers can never run off the list.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Pos++
	}
	return par.previous()
}

// check reports whether the current token has the given type, without
// consuming it.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	if par.isAtEnd() {
		return tokenType == lexer.EOF_TYPE
	}
	return par.curr().Type == tokenType
}

// match consumes the current token if it has one of the given types.
//
// Returns:
//   - bool: true if a token was consumed (it is then available via previous)
func (par *Parser) match(tokenTypes ...lexer.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the expected type;
// otherwise it reports the given message at the current token.
//
// Parameters:
//   - expected: The token type required here
//   - message: The diagnostic to report when it is missing
//
// Returns:
//   - lexer.Token: The consumed token (zero Token on failure)
//   - bool: true on success
func (par *Parser) expect(expected lexer.TokenType, message string) (lexer.Token, bool) {
	if par.check(expected) {
		return par.advance(), true
	}
	par.reportError(par.curr(), message)
	return lexer.Token{}, false
}

// reportError records a parse error at the given token. The message is
// sent to the reporter with the token's position and a note quoting the
// found lexeme, and collected in Errors.
func (par *Parser) reportError(token lexer.Token, message string) {
	full := message
	if token.Type == lexer.EOF_TYPE {
		full += " (found end of input)"
	} else {
		full += " (found '" + token.Lexeme + "' instead)"
	}
	par.Rep.Report(token.Line, token.Column, full)
	par.Errors = append(par.Errors, full)
}

// synchronize discards tokens until a likely statement boundary: just
// past a semicolon, or just before a keyword that begins a declaration
// or statement. Parsing resumes at declaration level afterwards, so one
// syntax error does not cascade into a flood of bogus diagnostics.
func (par *Parser) synchronize() {
	par.advance()
	for !par.isAtEnd() {
		if par.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.curr().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}
