package stream

import "github.com/leapstack-labs/sqlmeta/pkg/token"

// parenRole is the syntactic region a matched parenthesis pair delimits.
type parenRole int

const (
	roleNone parenRole = iota
	roleSubquery
	roleWithQuery
	roleWithColumns
	roleNestedFunction
	roleColumnDefinition
)

type openParen struct {
	tok  *token.Token
	role parenRole
}

// tagScopes is the parenthesis-matching pass: it classifies every opening
// parenthesis, tags the matching close with the same role, assigns subquery
// nesting levels, and marks tokens inside function calls.
func (s *Stream) tagScopes() {
	var stack []openParen
	level := 0
	nestedFunctions := 0
	inWith := false

	for _, tok := range s.Tokens {
		if tok.IsKeyword && len(stack) == 0 {
			switch norm := tok.Normalized(); {
			case norm == "WITH":
				inWith = true
			case mainClauseKeywords[norm]:
				inWith = false
			}
		}

		switch {
		case tok.IsLeftParenthesis:
			role := classifyParen(tok, inWith && len(stack) == 0)
			tok.SubqueryLevel = level
			switch role {
			case roleSubquery:
				tok.IsSubqueryStart = true
				level++
			case roleWithQuery:
				tok.IsWithQueryStart = true
			case roleWithColumns:
				tok.IsWithColumnsStart = true
			case roleNestedFunction:
				tok.IsNestedFunctionStart = true
				nestedFunctions++
			case roleColumnDefinition:
				tok.IsColumnDefinitionStart = true
			}
			stack = append(stack, openParen{tok: tok, role: role})

		case tok.IsRightParenthesis && len(stack) > 0:
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch open.role {
			case roleSubquery:
				level--
				tok.IsSubqueryEnd = true
			case roleWithQuery:
				tok.IsWithQueryEnd = true
			case roleWithColumns:
				tok.IsWithColumnsEnd = true
			case roleNestedFunction:
				nestedFunctions--
				tok.IsNestedFunctionEnd = true
			case roleColumnDefinition:
				tok.IsColumnDefinitionEnd = true
			}
			tok.SubqueryLevel = level

		default:
			tok.SubqueryLevel = level
			if nestedFunctions > 0 {
				tok.IsInNestedFunction = true
			}
		}
	}
}

// classifyParen decides what region an opening parenthesis starts, from its
// neighbors and enclosing keyword. atWithLevel is true when the token sits
// directly in a WITH block, outside any enclosing parentheses.
func classifyParen(open *token.Token, atWithLevel bool) parenRole {
	prev := open.GetNthPrevious(1)

	// Skip comments between the parenthesis and the token that follows it.
	next := open.Next
	for next != nil && next.IsComment {
		next = next.Next
	}
	nextNorm := ""
	if next != nil {
		nextNorm = next.Normalized()
	}

	switch {
	case atWithLevel && prev.Normalized() == "AS":
		return roleWithQuery
	case atWithLevel && prev.IsName:
		return roleWithColumns
	case prev.IsName && columnListKeywords[open.LastKeywordNormalized()]:
		return roleColumnDefinition
	case nextNorm == "SELECT":
		return roleSubquery
	case prev.IsName:
		return roleNestedFunction
	default:
		return roleNone
	}
}
