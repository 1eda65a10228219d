/*
File    : golox/lexer/lexer_utils.go
*/
package lexer

import (
	"strconv"
	"strings"
)

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte may continue an identifier:
// a letter, a digit, or an underscore.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_'
}

// readStringLiteral reads a double-quoted string literal from the source.
// Strings may span lines; every embedded newline advances the line
// counter. There are no escape sequences in the language.
//
// On an unterminated string the multi-line diagnostic is emitted, the
// error flag is set, and no token is returned (ok is false).
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the opening quote
//
// Returns:
//   - Token: A STRING_LIT token whose Value is the unquoted content
//   - bool: false when the string never closes
func readStringLiteral(lex *Lexer) (Token, bool) {
	startLine := lex.Line
	startCol := lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder
	for lex.Current != '"' {
		if lex.Current == 0 {
			lex.Rep.ReportSpan(startLine, startCol, lex.Line, "Unterminated string.")
			lex.HadError = true
			return Token{}, false
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // Advance below moves it to 1
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // Consume closing quote

	content := builder.String()
	return NewLiteralToken(STRING_LIT, `"`+content+`"`, content, startLine, startCol), true
}

// readNumber reads a number literal from the source: one or more digits,
// optionally followed by a '.' and one or more digits. The dot is only
// consumed when a digit follows it, so "12." scans as the number 12
// followed by a dot token.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first digit
//
// Returns:
//   - Token: A NUMBER_LIT token whose Value is the parsed float64
func readNumber(lex *Lexer) Token {
	startLine := lex.Line
	startCol := lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// A fractional part requires a digit after the dot.
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // Consume the dot
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	// The scan above only accepts digits and one guarded dot, so
	// ParseFloat cannot fail here.
	value, _ := strconv.ParseFloat(lexeme, 64)
	return NewLiteralToken(NUMBER_LIT, lexeme, value, startLine, startCol)
}

// readIdentifier reads an identifier or keyword from the source.
// Identifiers start with a letter or underscore and continue with
// letters, digits, or underscores; the keyword table decides whether the
// word is reserved.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first character
//
// Returns:
//   - Token: An IDENTIFIER_ID token or the matching keyword token
func readIdentifier(lex *Lexer) Token {
	startLine := lex.Line
	startCol := lex.Column
	start := lex.Position

	lex.Advance() // First character was validated by the caller
	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(lexeme), lexeme, startLine, startCol)
}
