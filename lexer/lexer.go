/*
File    : golox/lexer/lexer.go
*/

// Package lexer performs lexical analysis (tokenization) of Lox source
// code. It scans the source text in a single forward pass with one
// character of lookahead, producing a token list that always ends with an
// EOF sentinel. Errors (unexpected characters, unterminated strings) are
// reported through the shared reporter and flagged on the lexer; scanning
// continues past them so a single run surfaces every lexical error.
package lexer

import (
	"github.com/qig123/golox/reporter"
)

// Lexer holds the scanning state: the source, the current position with
// line/column tracking, and the diagnostic sink.
//
// Fields:
//   - Src: The complete source code as a string
//   - Current: The byte at the current position being examined
//   - Position: The current index in the source string (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
//   - Column: The current column number in the source (1-indexed)
//   - Rep: Diagnostic reporter shared with the parser and driver
//   - HadError: Set when any lexical error has been reported
type Lexer struct {
	Src       string             // Entire source code in plain text format
	Current   byte               // Current character being examined
	Position  int                // Current position of pointer in the source code
	SrcLength int                // Length of source string
	Line      int                // Line number in source (1-indexed)
	Column    int                // Column number in source (1-indexed)
	Rep       *reporter.Reporter // Diagnostic sink
	HadError  bool               // True once any lexical error was reported
}

// NewLexer creates and initializes a new Lexer for the given source code.
// Position tracking starts at line 1, column 1.
//
// Parameters:
//   - src: The source code string to tokenize
//   - rep: The reporter that receives lexical diagnostics
//
// Returns:
//   - *Lexer: A lexer ready to scan the source code
func NewLexer(src string, rep *reporter.Reporter) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
		Rep:       rep,
	}
}

// ScanTokens tokenizes the entire source and returns the token list,
// terminated by an EOF token whose line is the final line counter. Bad
// input produces diagnostics and no tokens, so the returned list is
// always well-formed even when HadError is set.
//
// Example:
//
//	lex := NewLexer("var x = 42;", rep)
//	tokens := lex.ScanTokens()
//	// tokens: [var, x, =, 42, ;, EOF]
func (lex *Lexer) ScanTokens() []Token {
	tokens := make([]Token, 0)
	for {
		token := lex.NextToken()
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	return tokens
}

// NextToken retrieves the next token from the source code stream.
// It skips whitespace and comments, then identifies and returns the next
// meaningful token. Unrecognized characters are reported and skipped, so
// the method never returns garbage; at the end of input it returns the
// EOF sentinel forever.
//
// Returns:
//   - Token: The next token in the source, or the EOF sentinel
func (lex *Lexer) NextToken() Token {
	for {
		lex.IgnoreWhitespaceAndComments()

		// Remember where this token starts; multi-character tokens
		// advance the cursor, but diagnostics and the token itself
		// must point at the first character.
		startLine := lex.Line
		startCol := lex.Column

		switch lex.Current {
		case '(':
			lex.Advance()
			return NewToken(LEFT_PAREN, "(", startLine, startCol)
		case ')':
			lex.Advance()
			return NewToken(RIGHT_PAREN, ")", startLine, startCol)
		case '{':
			lex.Advance()
			return NewToken(LEFT_BRACE, "{", startLine, startCol)
		case '}':
			lex.Advance()
			return NewToken(RIGHT_BRACE, "}", startLine, startCol)
		case ',':
			lex.Advance()
			return NewToken(COMMA_DELIM, ",", startLine, startCol)
		case '.':
			lex.Advance()
			return NewToken(DOT_OP, ".", startLine, startCol)
		case ';':
			lex.Advance()
			return NewToken(SEMICOLON_DELIM, ";", startLine, startCol)
		case '-':
			lex.Advance()
			return NewToken(MINUS_OP, "-", startLine, startCol)
		case '+':
			lex.Advance()
			return NewToken(PLUS_OP, "+", startLine, startCol)
		case '*':
			lex.Advance()
			return NewToken(STAR_OP, "*", startLine, startCol)
		case '/':
			// A '//' comment is consumed by IgnoreWhitespaceAndComments,
			// so a '/' reaching this switch is always the division operator.
			lex.Advance()
			return NewToken(SLASH_OP, "/", startLine, startCol)
		case '!':
			// Could be '!' (logical NOT) or '!=' (not equal)
			lex.Advance()
			if lex.Current == '=' {
				lex.Advance()
				return NewToken(BANG_EQUAL_OP, "!=", startLine, startCol)
			}
			return NewToken(BANG_OP, "!", startLine, startCol)
		case '=':
			// Could be '=' (assignment) or '==' (equality)
			lex.Advance()
			if lex.Current == '=' {
				lex.Advance()
				return NewToken(EQUAL_EQUAL_OP, "==", startLine, startCol)
			}
			return NewToken(EQUAL_OP, "=", startLine, startCol)
		case '<':
			// Could be '<' or '<='
			lex.Advance()
			if lex.Current == '=' {
				lex.Advance()
				return NewToken(LESS_EQUAL_OP, "<=", startLine, startCol)
			}
			return NewToken(LESS_OP, "<", startLine, startCol)
		case '>':
			// Could be '>' or '>='
			lex.Advance()
			if lex.Current == '=' {
				lex.Advance()
				return NewToken(GREATER_EQUAL_OP, ">=", startLine, startCol)
			}
			return NewToken(GREATER_OP, ">", startLine, startCol)
		case '"':
			token, ok := readStringLiteral(lex)
			if !ok {
				// Unterminated string: reported, nothing to emit.
				// The loop continues and will hit EOF.
				continue
			}
			return token
		case 0:
			return NewToken(EOF_TYPE, "", lex.Line, lex.Column)
		default:
			if isNumeric(lex.Current) {
				return readNumber(lex)
			}
			if isAlpha(lex.Current) || lex.Current == '_' {
				return readIdentifier(lex)
			}
			// Unrecognized character: report it, skip it, keep scanning
			// so every lexical error in the source is surfaced.
			lex.Rep.Report(startLine, startCol, "Unexpected character '"+string(lex.Current)+"'.")
			lex.HadError = true
			lex.Advance()
		}
	}
}

// Peek looks ahead to the next character in the source without consuming
// it.
//
// Returns:
//   - byte: The next character, or 0 if at end of source
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the source, updating
// Current, Position, and Column. Line tracking is handled where newlines
// are consumed (whitespace skipping and string scanning).
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespaceAndComments skips over whitespace and '//' line
// comments before the next meaningful token. Space, tab, and carriage
// return are skipped silently; a newline advances the line counter and
// resets the column. Line comments run to end of line and are not
// emitted as tokens.
func (lex *Lexer) IgnoreWhitespaceAndComments() {
	for {
		switch lex.Current {
		case ' ', '\t', '\r':
			lex.Advance()
		case '\n':
			lex.Advance()
			lex.Line++
			lex.Column = 1
		case '/':
			if lex.Peek() != '/' {
				return
			}
			lex.SkipLineComment()
		default:
			return
		}
	}
}

// SkipLineComment skips over a single-line comment (// ...). It advances
// until a newline or end of file; the newline itself is left for
// IgnoreWhitespaceAndComments so line tracking stays in one place.
func (lex *Lexer) SkipLineComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}
