// Package lexer tokenizes SQL input into raw lexemes for the stream
// builder. Comments are emitted as lexemes rather than skipped, and quoted
// identifiers keep their wrapping; the token layer strips it exactly once.
package lexer

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlmeta/pkg/token"
)

// Lexer scans SQL input one byte at a time.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Next returns the next lexeme.
func (l *Lexer) Next() token.Lexeme {
	l.skipWhitespace()

	pos := l.currentPos()

	var lex token.Lexeme
	lex.Pos = pos

	switch l.ch {
	case 0:
		lex.Kind = token.KindEOF
		lex.Literal = ""
		return lex
	case ',', ';':
		lex = l.newLexeme(token.KindPunctuation, string(l.ch))
	case '.':
		lex = l.newLexeme(token.KindDot, ".")
	case '(':
		lex = l.newLexeme(token.KindLeftParen, "(")
	case ')':
		lex = l.newLexeme(token.KindRightParen, ")")
	case '*':
		lex = l.newLexeme(token.KindWildcard, "*")
	case '+', '%':
		lex = l.newLexeme(token.KindOperator, string(l.ch))
	case '=':
		lex = l.newLexeme(token.KindOperator, "=")
	case '-':
		if l.peekChar() == '-' {
			lex.Kind = token.KindComment
			lex.Literal = l.readLineComment()
			return lex
		}
		lex = l.newLexeme(token.KindOperator, "-")
	case '/':
		if l.peekChar() == '*' {
			lex.Kind = token.KindComment
			lex.Literal = l.readBlockComment()
			return lex
		}
		lex = l.newLexeme(token.KindOperator, "/")
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			lex = token.Lexeme{Kind: token.KindOperator, Literal: "<=", Pos: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			lex = token.Lexeme{Kind: token.KindOperator, Literal: "<>", Pos: pos}
		} else {
			lex = l.newLexeme(token.KindOperator, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			lex = token.Lexeme{Kind: token.KindOperator, Literal: ">=", Pos: pos}
		} else {
			lex = l.newLexeme(token.KindOperator, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			lex = token.Lexeme{Kind: token.KindOperator, Literal: "!=", Pos: pos}
		} else {
			lex = l.newLexeme(token.KindIllegal, string(l.ch))
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			lex = token.Lexeme{Kind: token.KindOperator, Literal: "||", Pos: pos}
		} else {
			lex = l.newLexeme(token.KindIllegal, string(l.ch))
		}
	case '\'':
		lex.Kind = token.KindString
		lex.Literal = l.readString()
		return lex
	case '"':
		lex.Kind = token.KindQuotedName
		lex.Literal = l.readQuoted('"')
		return lex
	case '`':
		lex.Kind = token.KindQuotedName
		lex.Literal = l.readQuoted('`')
		return lex
	default:
		if isLetter(l.ch) || l.ch == '_' {
			lex.Literal = l.readIdentifier()
			lex.Kind = lookupIdent(strings.ToLower(lex.Literal))
			lex.Pos = pos
			return lex
		} else if isDigit(l.ch) {
			lex.Kind, lex.Literal = l.readNumber()
			lex.Pos = pos
			return lex
		}
		lex = l.newLexeme(token.KindIllegal, string(l.ch))
	}

	l.readChar()
	return lex
}

// lookupIdent classifies a lowercased identifier.
func lookupIdent(ident string) token.Kind {
	if literals[ident] {
		return token.KindLiteral
	}
	if keywords[ident] {
		return token.KindKeyword
	}
	return token.KindName
}

// newLexeme creates a new lexeme at the current position.
func (l *Lexer) newLexeme(kind token.Kind, literal string) token.Lexeme {
	return token.Lexeme{Kind: kind, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readLineComment reads a -- comment up to the end of line, delimiters
// included, newline excluded.
func (l *Lexer) readLineComment() string {
	start := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readBlockComment reads a /* ... */ comment, delimiters included.
func (l *Lexer) readBlockComment() string {
	start := l.pos
	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for {
		if l.ch == 0 {
			// Unterminated block comment
			return l.input[start:l.pos]
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			return l.input[start:l.pos]
		}
		l.readChar()
	}
}

// readString reads a single-quoted string literal, quotes kept.
// Doubled single quotes escape: 'it''s'.
func (l *Lexer) readString() string {
	start := l.pos
	l.readChar() // skip opening quote

	for {
		if l.ch == 0 {
			// Unterminated string
			return l.input[start:l.pos]
		}
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // consume closing quote
			return l.input[start:l.pos]
		}
		l.readChar()
	}
}

// readQuoted reads a quoted identifier, wrapping kept. The token layer is
// the one place where quote stripping happens.
func (l *Lexer) readQuoted(quote byte) string {
	start := l.pos
	l.readChar() // skip opening quote

	for {
		if l.ch == 0 {
			// Unterminated identifier
			return l.input[start:l.pos]
		}
		if l.ch == quote {
			l.readChar() // consume closing quote
			return l.input[start:l.pos]
		}
		l.readChar()
	}
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '$' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal and reports whether it is an integer
// or a float (decimal point or exponent present).
func (l *Lexer) readNumber() (token.Kind, string) {
	start := l.pos
	kind := token.KindInteger

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.KindFloat
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		kind = token.KindFloat
		l.readChar() // skip 'e' or 'E'
		if l.ch == '+' || l.ch == '-' {
			l.readChar() // skip sign
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return kind, l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all lexemes from the input, excluding the trailing EOF.
func Tokenize(input string) []token.Lexeme {
	l := New(input)
	var lexemes []token.Lexeme
	for {
		lex := l.Next()
		if lex.Kind == token.KindEOF {
			return lexemes
		}
		lexemes = append(lexemes, lex)
	}
}
