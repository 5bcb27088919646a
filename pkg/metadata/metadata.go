// Package metadata extracts table, column and alias information from SQL
// statements. It is a read-only consumer of the token graph: everything
// here is computed from the graph's public properties and traversal
// primitives, never by mutating a token.
package metadata

import (
	"github.com/leapstack-labs/sqlmeta/pkg/stream"
	"github.com/leapstack-labs/sqlmeta/pkg/token"
)

// Metadata is the result of analyzing one SQL statement.
type Metadata struct {
	QueryType     QueryType         `json:"query_type"`
	Tables        []string          `json:"tables"`
	TableAliases  map[string]string `json:"table_aliases,omitempty"`
	Columns       []string          `json:"columns"`
	ColumnAliases []string          `json:"column_aliases,omitempty"`
	WithNames     []string          `json:"with_names,omitempty"`
	Comments      []string          `json:"comments,omitempty"`
	Query         string            `json:"query"`
}

// tablePrecedingKeywords are the clause contexts whose names are tables.
var tablePrecedingKeywords = map[string]bool{
	"FROM":           true,
	"JOIN":           true,
	"LEFTJOIN":       true,
	"RIGHTJOIN":      true,
	"INNERJOIN":      true,
	"CROSSJOIN":      true,
	"FULLJOIN":       true,
	"LEFTOUTERJOIN":  true,
	"RIGHTOUTERJOIN": true,
	"FULLOUTERJOIN":  true,
	"UPDATE":         true,
	"INSERTINTO":     true,
	"DELETEFROM":     true,
	"CREATETABLE":    true,
	"DROPTABLE":      true,
	"ALTERTABLE":     true,
	"TRUNCATE":       true,
}

// columnPrecedingKeywords are the clause contexts whose names are columns.
var columnPrecedingKeywords = map[string]bool{
	"SELECT":  true,
	"WHERE":   true,
	"GROUPBY": true,
	"ORDERBY": true,
	"HAVING":  true,
	"ON":      true,
	"USING":   true,
	"SET":     true,
}

// Analyze builds the token graph for sql and extracts its metadata.
func Analyze(sql string) (*Metadata, error) {
	s := stream.Build(sql)

	md := &Metadata{
		QueryType: detectQueryType(s),
		Query:     s.Reconstructed(),
	}

	md.WithNames = withNames(s)
	md.Tables, md.TableAliases = tables(s, md.WithNames)

	var err error
	md.Columns, md.ColumnAliases, err = columns(s, md.TableAliases)
	if err != nil {
		return nil, err
	}

	for _, tok := range s.Tokens {
		if tok.IsComment {
			md.Comments = append(md.Comments, tok.Value)
		}
	}

	return md, nil
}

// withNames collects the names of WITH queries by walking back from each
// tagged CTE body parenthesis, stepping over an optional column list.
func withNames(s *stream.Stream) []string {
	var names []string
	for _, tok := range s.Tokens {
		if !tok.IsWithQueryStart {
			continue
		}
		cand := tok.GetNthPrevious(2) // the token before AS
		if cand.IsRightParenthesis && cand.IsWithColumnsEnd {
			open := cand.FindNearestMatching(token.Left, func(t *token.Token) bool {
				return t.IsWithColumnsStart
			})
			cand = open.GetNthPrevious(1)
		}
		if cand.IsName {
			names = append(names, cand.Value)
		}
	}
	return names
}

// tables collects table names and alias-to-table mappings from the clause
// contexts that introduce tables. A name directly following a table name or
// an AS keyword in those contexts is an alias, not a table.
func tables(s *stream.Stream, withQueryNames []string) ([]string, map[string]string) {
	var out []string
	aliases := map[string]string{}
	seen := map[string]bool{}
	cte := map[string]bool{}
	for _, name := range withQueryNames {
		cte[name] = true
	}

	for _, tok := range s.Tokens {
		if !tok.IsName || tok.IsInNestedFunction {
			continue
		}
		if !tablePrecedingKeywords[tok.LastKeywordNormalized()] {
			continue
		}
		// Only the last segment of a dotted name carries the full
		// qualification; earlier segments are skipped. A name directly
		// followed by a parenthesis is a function call, unless the
		// parenthesis opens a column list.
		if next := tok.Next; next != nil && (next.IsDot || (next.IsLeftParenthesis && !next.IsColumnDefinitionStart)) {
			continue
		}
		// Names inside a CREATE TABLE column list are column definitions.
		if tok.FindNearestToken(token.Left, token.AttributeValue, "(").IsColumnDefinitionStart {
			continue
		}

		prev := tok.GetNthPrevious(1)
		switch {
		case prev.Normalized() == "AS":
			if table := prev.GetNthPrevious(1); table.IsName {
				aliases[tok.Value] = table.LeftExpanded()
			}
		case prev.IsName:
			aliases[tok.Value] = prev.LeftExpanded()
		case prev.IsRightParenthesis:
			// Alias of a parenthesized subquery; there is no table to map
			// it to.
		default:
			name := tok.LeftExpanded()
			if cte[name] || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, aliases
}

// columns collects column references from column-bearing clause contexts,
// qualifying each through the table alias map. Function names, CTE column
// lists and select-list aliases are excluded from the column list; aliases
// are reported separately.
func columns(s *stream.Stream, tableAliases map[string]string) ([]string, []string, error) {
	var cols, aliases []string
	seen := map[string]bool{}

	for _, tok := range s.Tokens {
		if !tok.IsName && !tok.IsWildcard {
			continue
		}
		if !columnPrecedingKeywords[tok.LastKeywordNormalized()] {
			continue
		}
		if next := tok.Next; next != nil && (next.IsDot || next.IsLeftParenthesis) {
			continue
		}
		if tok.IsInWithColumns() {
			continue
		}
		if tok.GetNthPrevious(1).Normalized() == "AS" || tok.IsAliasWithoutAs() {
			aliases = append(aliases, tok.Value)
			continue
		}

		value, err := tok.TablePrefixedColumn(tableAliases)
		if err != nil {
			return nil, nil, err
		}
		if seen[value] {
			continue
		}
		seen[value] = true
		cols = append(cols, value)
	}
	return cols, aliases, nil
}
