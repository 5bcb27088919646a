package token

import "strings"

// LeftExpanded reconstructs a dotted qualified name by walking backward
// while the immediate predecessor is a dot and the token two hops back is a
// name, prepending each qualifier. For tokens with no preceding dot it is
// just the token's own value. Trailing backticks are stripped from the
// result.
func (t *Token) LeftExpanded() string {
	value := t.String()
	tok := t
	for tok.Previous != nil && tok.Previous.IsDot {
		qualifier := tok.GetNthPrevious(2)
		if qualifier.IsName {
			value = qualifier.String() + "." + value
		}
		tok = qualifier
	}
	return strings.Trim(value, "`")
}

// TablePrefixedColumn expands the value with its dotted qualifiers and
// rewrites the first segment through the alias-to-table mapping. Aliases
// missing from the map pass through unchanged. A name qualified deeper
// than schema.table.column yields a *QualificationError.
func (t *Token) TablePrefixedColumn(tableAliases map[string]string) (string, error) {
	value := t.LeftExpanded()
	if strings.Contains(value, ".") {
		parts := strings.Split(value, ".")
		if len(parts) > 3 {
			return "", &QualificationError{Column: value}
		}
		if table, ok := tableAliases[parts[0]]; ok {
			parts[0] = table
		}
		value = strings.Join(parts, ".")
	}
	return value, nil
}

// IsInParenthesis reports whether some "(" exists to the left and some ")"
// to the right. The two are not checked to be a matching pair, so a token
// after an earlier closed group and before a later unrelated one still
// reports true; the extraction layer relies on this coarse behavior.
func (t *Token) IsInParenthesis() bool {
	left := t.FindNearestToken(Left, AttributeValue, "(")
	right := t.FindNearestToken(Right, AttributeValue, ")")
	return left.Value != "" && right.Value != ""
}

// IsInWithColumns reports whether the token sits inside the column list of
// a WITH clause, i.e. the nearest "(" to the left and ")" to the right
// carry the with-columns scope tags set by the builder.
func (t *Token) IsInWithColumns() bool {
	return t.FindNearestToken(Left, AttributeValue, "(").IsWithColumnsStart &&
		t.FindNearestToken(Right, AttributeValue, ")").IsWithColumnsEnd
}

// IsAliasWithoutAs detects a bare positional alias in a select list, as in
// SELECT col alias FROM t: the token sits in SELECT context, is followed by
// a comma or FROM, and is not itself the first item after a comma, dot,
// opening parenthesis or the SELECT keyword.
func (t *Token) IsAliasWithoutAs() bool {
	next := t.next().Normalized()
	prev := t.prev()
	switch prev.Normalized() {
	case ",", ".", "(", "SELECT":
		return false
	}
	return (next == "," || next == "FROM") &&
		t.LastKeywordNormalized() == "SELECT" &&
		!prev.IsComment
}

// Stringified returns the fragment to append when rebuilding the query
// text from the token chain, prefixing a single space unless the token
// attaches directly to its predecessor: closing punctuation, anything
// following "(" or ".", and an opening parenthesis right after a known
// function name. This is a formatting heuristic, not a pretty-printer.
func (t *Token) Stringified() string {
	switch t.Normalized() {
	case ")", ".", ",":
		return t.String()
	}
	prev := t.prev().Normalized()
	if prev == "(" || prev == "." {
		return t.String()
	}
	if t.IsLeftParenthesis && spacingIgnoredFunctions[prev] {
		return t.String()
	}
	return " " + t.String()
}
