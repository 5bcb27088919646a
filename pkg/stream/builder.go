// Package stream builds the enriched token graph out of lexer output: one
// linear construction pass assigning position, enclosing keyword and links,
// then a parenthesis-matching pass assigning scope roles and subquery
// nesting. After Build returns, the graph is read-only.
package stream

import (
	"strings"

	"github.com/leapstack-labs/sqlmeta/pkg/lexer"
	"github.com/leapstack-labs/sqlmeta/pkg/token"
)

// Stream owns the token chain built from one SQL statement. The slice is
// the owning container of every node; links between tokens are non-owning
// and must not outlive it.
type Stream struct {
	Tokens []*token.Token
}

// Build tokenizes sql and constructs the token graph.
func Build(sql string) *Stream {
	return BuildLexemes(lexer.Tokenize(sql))
}

// BuildLexemes constructs the token graph from raw lexemes: multi-word
// keywords are merged, every token gets its position and the clause keyword
// in force before it, links are wired with sentinel defaults at both ends,
// and the scope-tagging pass assigns parenthesis roles and subquery levels.
func BuildLexemes(lexemes []token.Lexeme) *Stream {
	s := &Stream{}

	lastKeyword := ""
	for i := 0; i < len(lexemes); i++ {
		lex := lexemes[i]
		if lex.Kind == token.KindEOF {
			break
		}
		if lex.Kind == token.KindKeyword {
			lex, i = mergeKeywordPhrase(lexemes, i)
		}

		tok := token.New(lex, len(s.Tokens), 0, lastKeyword)
		if n := len(s.Tokens); n > 0 {
			tok.Previous = s.Tokens[n-1]
			s.Tokens[n-1].Next = tok
		}
		s.Tokens = append(s.Tokens, tok)

		if tok.IsKeyword && clauseKeywords[tok.Normalized()] {
			lastKeyword = tok.Value
		}
	}

	s.tagScopes()
	return s
}

// mergeKeywordPhrase merges a multi-word keyword phrase starting at index i
// into a single lexeme and returns it with the index of its last word.
func mergeKeywordPhrase(lexemes []token.Lexeme, i int) (token.Lexeme, int) {
	for _, phrase := range multiwordKeywords {
		if i+len(phrase) > len(lexemes) {
			continue
		}
		match := true
		for j, word := range phrase {
			if lexemes[i+j].Kind != token.KindKeyword || !strings.EqualFold(lexemes[i+j].Literal, word) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		words := make([]string, len(phrase))
		for j := range phrase {
			words[j] = lexemes[i+j].Literal
		}
		return token.Lexeme{
			Kind:    token.KindKeyword,
			Literal: strings.Join(words, " "),
			Pos:     lexemes[i].Pos,
		}, i + len(phrase) - 1
	}
	return lexemes[i], i
}

// First returns the first token of the stream, or the sentinel for an empty
// stream.
func (s *Stream) First() *token.Token {
	if len(s.Tokens) == 0 {
		return token.Empty
	}
	return s.Tokens[0]
}

// Last returns the last token of the stream, or the sentinel for an empty
// stream.
func (s *Stream) Last() *token.Token {
	if len(s.Tokens) == 0 {
		return token.Empty
	}
	return s.Tokens[len(s.Tokens)-1]
}

// Reconstructed rebuilds the statement text from the token chain via each
// token's spacing heuristic.
func (s *Stream) Reconstructed() string {
	var sb strings.Builder
	for _, tok := range s.Tokens {
		sb.WriteString(tok.Stringified())
	}
	return strings.TrimSpace(sb.String())
}
