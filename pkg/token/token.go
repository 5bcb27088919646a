package token

import "strings"

// Token is one node of the enriched token graph. It carries the lexeme's
// value (unwrapped), classification flags, the structural context assigned
// by the stream builder, and links into a doubly linked chain.
//
// Fields are written exactly once, during the builder's construction and
// scope-tagging passes. After that the graph is read-only and may be shared
// across goroutines without synchronization.
type Token struct {
	Value    string
	Position int // index in the token stream, -1 for the sentinel

	// Classification flags, fixed at construction.
	IsKeyword          bool
	IsName             bool
	IsPunctuation      bool
	IsDot              bool
	IsWildcard         bool
	IsInteger          bool
	IsFloat            bool
	IsComment          bool
	IsLeftParenthesis  bool
	IsRightParenthesis bool

	// Structural context assigned by the stream builder.
	LastKeyword   string // most recent clause keyword before this token
	SubqueryLevel int    // nesting depth of enclosing subqueries

	// Scope roles set by the builder's parenthesis-matching pass.
	IsSubqueryStart         bool
	IsSubqueryEnd           bool
	IsWithQueryStart        bool
	IsWithQueryEnd          bool
	IsWithColumnsStart      bool
	IsWithColumnsEnd        bool
	IsNestedFunctionStart   bool
	IsNestedFunctionEnd     bool
	IsColumnDefinitionStart bool
	IsColumnDefinitionEnd   bool
	IsInNestedFunction      bool

	// Chain links. Non-sentinel tokens always point at a real neighbor or
	// at Empty, never nil; only the sentinel's links are nil, which is what
	// terminates every chain walk.
	Previous *Token
	Next     *Token
}

// Empty is the sentinel token: empty value, all-false flags and nil links.
// It stands in for "no token" everywhere, so traversal code never needs a
// null check; its empty value and false flags already read as "not found".
var Empty = &Token{Position: -1}

// New builds a Token from a raw lexeme. Surrounding backtick and
// double-quote pairs are stripped from the value exactly once, and the
// links are initialized to the Empty sentinel.
//
// A lexeme is a keyword if the lexer marked it as one, or if it is a
// literal-like name (TRUE, FALSE, NULL) that the lexer files under the
// narrower KindLiteral rather than the generic name kind.
func New(lex Lexeme, position, subqueryLevel int, lastKeyword string) *Token {
	return &Token{
		Value:    unwrap(lex.Literal),
		Position: position,

		IsKeyword:          lex.Kind == KindKeyword || lex.Kind == KindLiteral,
		IsName:             lex.Kind == KindName || lex.Kind == KindQuotedName,
		IsPunctuation:      lex.Kind == KindPunctuation || lex.Kind == KindDot || lex.Kind == KindLeftParen || lex.Kind == KindRightParen,
		IsDot:              lex.Kind == KindDot,
		IsWildcard:         lex.Kind == KindWildcard,
		IsInteger:          lex.Kind == KindInteger,
		IsFloat:            lex.Kind == KindFloat,
		IsComment:          lex.Kind == KindComment,
		IsLeftParenthesis:  lex.Kind == KindLeftParen,
		IsRightParenthesis: lex.Kind == KindRightParen,

		LastKeyword:   lastKeyword,
		SubqueryLevel: subqueryLevel,

		Previous: Empty,
		Next:     Empty,
	}
}

// unwrap strips one surrounding backtick pair, then one surrounding
// double-quote pair.
func unwrap(s string) string {
	s = stripPair(s, '`')
	return stripPair(s, '"')
}

func stripPair(s string, quote byte) string {
	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		return s[1 : len(s)-1]
	}
	return s
}

// String returns the value with surrounding double quotes stripped.
// The value is already unwrapped at construction, so this is idempotent.
func (t *Token) String() string {
	return stripPair(t.Value, '"')
}

// Normalized returns the uppercase value with all whitespace removed.
// Keyword and punctuation comparisons go through this so they are
// independent of source formatting.
func (t *Token) Normalized() string {
	return normalize(t.Value)
}

// LastKeywordNormalized returns the normalized form of LastKeyword, or the
// empty string if no keyword precedes this token.
func (t *Token) LastKeywordNormalized() string {
	return normalize(t.LastKeyword)
}

func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\t', '\r':
			return -1
		}
		return r
	}, s)
	return strings.ToUpper(s)
}

// prev and next substitute the sentinel for its own nil links, so derived
// properties can dereference neighbors unconditionally even on Empty.
func (t *Token) prev() *Token {
	if t.Previous == nil {
		return Empty
	}
	return t.Previous
}

func (t *Token) next() *Token {
	if t.Next == nil {
		return Empty
	}
	return t.Next
}
