package commands

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmeta/internal/cli/config"
	"github.com/leapstack-labs/sqlmeta/pkg/stream"
	"github.com/leapstack-labs/sqlmeta/pkg/token"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	File string
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [sql]",
		Short: "Dump the enriched token graph of a SQL statement",
		Long: `Build the token graph for a SQL statement and print one row per token
with its classification, enclosing keyword, subquery level and scope roles.

Useful for debugging why the analyzer classified a statement the way it
did.`,
		Example: `  sqlmeta tokens "SELECT a FROM (SELECT b FROM t) sub"`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file (- for stdin)")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, opts *TokensOptions) error {
	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	s := stream.Build(sql)
	logger := config.GetLogger(cmd.Context())
	logger.Debug("built token graph", "tokens", len(s.Tokens))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Value", "Class", "Last keyword", "Level", "Scope"})

	for _, tok := range s.Tokens {
		t.AppendRow(table.Row{
			strconv.Itoa(tok.Position),
			tok.Value,
			classOf(tok),
			tok.LastKeywordNormalized(),
			strconv.Itoa(tok.SubqueryLevel),
			scopeOf(tok),
		})
	}
	t.Render()
	return nil
}

// classOf summarizes a token's classification flags.
func classOf(tok *token.Token) string {
	switch {
	case tok.IsKeyword:
		return "keyword"
	case tok.IsName:
		return "name"
	case tok.IsWildcard:
		return "wildcard"
	case tok.IsInteger:
		return "integer"
	case tok.IsFloat:
		return "float"
	case tok.IsComment:
		return "comment"
	case tok.IsDot:
		return "dot"
	case tok.IsLeftParenthesis:
		return "lparen"
	case tok.IsRightParenthesis:
		return "rparen"
	case tok.IsPunctuation:
		return "punctuation"
	default:
		return ""
	}
}

// scopeOf summarizes a token's scope-role flags.
func scopeOf(tok *token.Token) string {
	var roles []string
	if tok.IsSubqueryStart {
		roles = append(roles, "subquery-start")
	}
	if tok.IsSubqueryEnd {
		roles = append(roles, "subquery-end")
	}
	if tok.IsWithQueryStart {
		roles = append(roles, "with-query-start")
	}
	if tok.IsWithQueryEnd {
		roles = append(roles, "with-query-end")
	}
	if tok.IsWithColumnsStart {
		roles = append(roles, "with-columns-start")
	}
	if tok.IsWithColumnsEnd {
		roles = append(roles, "with-columns-end")
	}
	if tok.IsNestedFunctionStart {
		roles = append(roles, "function-start")
	}
	if tok.IsNestedFunctionEnd {
		roles = append(roles, "function-end")
	}
	if tok.IsColumnDefinitionStart {
		roles = append(roles, "column-def-start")
	}
	if tok.IsColumnDefinitionEnd {
		roles = append(roles, "column-def-end")
	}
	if tok.IsInNestedFunction {
		roles = append(roles, "in-function")
	}
	return strings.Join(roles, ",")
}
