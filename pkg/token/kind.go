// Package token defines the enriched token graph built from a lexed SQL
// statement: the Token node type, the Empty sentinel, traversal primitives
// over the doubly linked chain, and the semantic properties derived from it.
package token

import "fmt"

// Kind classifies a raw lexeme as produced by the lexer.
type Kind int

const (
	// Special kinds
	KindEOF Kind = iota
	KindIllegal

	// Identifiers and literals
	KindName       // users, order_items
	KindQuotedName // `users`, "order items" (wrapping kept by the lexer)
	KindLiteral    // TRUE, FALSE, NULL
	KindString     // 'hello'
	KindInteger    // 42
	KindFloat      // 3.14, 1e10

	// Keywords and structure
	KindKeyword
	KindPunctuation // , ;
	KindDot         // .
	KindWildcard    // *
	KindLeftParen   // (
	KindRightParen  // )
	KindOperator    // + - / % = != < > <= >= <> ||
	KindComment     // -- ... or /* ... */
)

// kindNames maps kinds to their string representations.
var kindNames = map[Kind]string{
	KindEOF:         "EOF",
	KindIllegal:     "ILLEGAL",
	KindName:        "NAME",
	KindQuotedName:  "QUOTED_NAME",
	KindLiteral:     "LITERAL",
	KindString:      "STRING",
	KindInteger:     "INTEGER",
	KindFloat:       "FLOAT",
	KindKeyword:     "KEYWORD",
	KindPunctuation: "PUNCTUATION",
	KindDot:         "DOT",
	KindWildcard:    "WILDCARD",
	KindLeftParen:   "LPAREN",
	KindRightParen:  "RPAREN",
	KindOperator:    "OPERATOR",
	KindComment:     "COMMENT",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// Lexeme is one raw lexical unit as emitted by the lexer, before it is
// enriched into a Token by the stream builder. Quoted identifiers keep
// their backtick or double-quote wrapping in Literal; stripping happens
// exactly once, during Token construction.
type Lexeme struct {
	Kind    Kind
	Literal string
	Pos     Position
}
