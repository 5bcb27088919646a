package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a token from a lexeme with default stream context.
func mk(kind Kind, literal string) *Token {
	return New(Lexeme{Kind: kind, Literal: literal}, 0, 0, "")
}

// link wires tokens into a doubly linked chain. Endpoints keep their
// sentinel links from construction.
func link(tokens ...*Token) {
	for i := 1; i < len(tokens); i++ {
		tokens[i].Previous = tokens[i-1]
		tokens[i-1].Next = tokens[i]
	}
}

func TestNew_StripsWrappingOnce(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"users", "users"},
		{"`users`", "users"},
		{`"users"`, "users"},
		{"`\"users\"`", "users"},
		{`"order items"`, "order items"},
		{"`", "`"},   // lone quote is not a pair
		{`""`, ""},   // empty quoted name
		{"``", ""},   // empty backticked name
		{"a`b", "a`b"}, // interior quotes untouched
	}
	for _, tt := range tests {
		tok := mk(KindQuotedName, tt.literal)
		assert.Equal(t, tt.want, tok.Value, "literal %q", tt.literal)
	}
}

func TestNew_Classification(t *testing.T) {
	kw := mk(KindKeyword, "SELECT")
	assert.True(t, kw.IsKeyword)
	assert.False(t, kw.IsName)

	name := mk(KindName, "users")
	assert.True(t, name.IsName)
	assert.False(t, name.IsKeyword)

	quoted := mk(KindQuotedName, "`users`")
	assert.True(t, quoted.IsName)
	assert.False(t, quoted.IsKeyword)

	// Literal-like names (TRUE/FALSE/NULL) classify as keywords because the
	// lexer files them under a narrower kind than the generic name kind.
	lit := mk(KindLiteral, "NULL")
	assert.True(t, lit.IsKeyword)
	assert.False(t, lit.IsName)

	dot := mk(KindDot, ".")
	assert.True(t, dot.IsDot)
	assert.True(t, dot.IsPunctuation)

	comma := mk(KindPunctuation, ",")
	assert.True(t, comma.IsPunctuation)
	assert.False(t, comma.IsDot)

	lp := mk(KindLeftParen, "(")
	assert.True(t, lp.IsLeftParenthesis)
	assert.True(t, lp.IsPunctuation)

	rp := mk(KindRightParen, ")")
	assert.True(t, rp.IsRightParenthesis)

	assert.True(t, mk(KindWildcard, "*").IsWildcard)
	assert.True(t, mk(KindInteger, "42").IsInteger)
	assert.True(t, mk(KindFloat, "3.14").IsFloat)
	assert.True(t, mk(KindComment, "-- hi").IsComment)
}

func TestNew_LinksDefaultToSentinel(t *testing.T) {
	tok := mk(KindName, "users")
	require.NotNil(t, tok.Previous)
	require.NotNil(t, tok.Next)
	assert.Same(t, Empty, tok.Previous)
	assert.Same(t, Empty, tok.Next)
}

func TestEmpty_Sentinel(t *testing.T) {
	assert.Equal(t, "", Empty.Value)
	assert.Equal(t, -1, Empty.Position)
	assert.Equal(t, 0, Empty.SubqueryLevel)
	assert.Equal(t, "", Empty.LastKeyword)
	assert.False(t, Empty.IsKeyword)
	assert.False(t, Empty.IsName)

	// Only the sentinel has absent links; that asymmetry ends chain walks.
	assert.Nil(t, Empty.Previous)
	assert.Nil(t, Empty.Next)
}

func TestNormalized(t *testing.T) {
	tok := New(Lexeme{Kind: KindKeyword, Literal: "group\n\t by"}, 0, 0, "")
	assert.Equal(t, "GROUPBY", tok.Normalized())

	tok = New(Lexeme{Kind: KindName, Literal: "users"}, 0, 0, "select \n")
	assert.Equal(t, "SELECT", tok.LastKeywordNormalized())

	assert.Equal(t, "", Empty.Normalized())
	assert.Equal(t, "", Empty.LastKeywordNormalized())
}

func TestString_Idempotent(t *testing.T) {
	tok := mk(KindQuotedName, `"users"`)
	assert.Equal(t, "users", tok.String())
	assert.Equal(t, "users", tok.String())
}
