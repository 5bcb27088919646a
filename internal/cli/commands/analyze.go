package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlmeta/internal/cli/config"
	"github.com/leapstack-labs/sqlmeta/pkg/metadata"
)

// AnalyzeOptions holds options for the analyze command.
type AnalyzeOptions struct {
	OutputFormat string
	File         string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(getConfig func() *config.Config) *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [sql]",
		Short: "Extract metadata from a SQL statement",
		Long: `Analyze a SQL statement and report its query type, tables, columns,
aliases and comments.

The statement can be passed as an argument, read from a file with --file,
or piped on stdin.`,
		Example: `  # Analyze a statement given inline
  sqlmeta analyze "SELECT u.name FROM users u"

  # Analyze a statement from a file
  sqlmeta analyze --file query.sql

  # Output as JSON
  sqlmeta analyze "SELECT a FROM t" --output json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.OutputFormat == "" {
				opts.OutputFormat = getConfig().OutputFormat
			}
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file (- for stdin)")
	cmd.Flags().StringVarP(&opts.OutputFormat, "output", "o", "", "Output format (text|json)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	md, err := metadata.Analyze(sql)
	if err != nil {
		return fmt.Errorf("analyzing statement: %w", err)
	}

	logger := config.GetLogger(cmd.Context())
	logger.Debug("analyzed statement",
		"query_type", md.QueryType,
		"tables", len(md.Tables),
		"columns", len(md.Columns))

	if opts.OutputFormat == "json" {
		return analyzeJSON(cmd.OutOrStdout(), md)
	}
	return analyzeText(cmd.OutOrStdout(), md)
}

func analyzeJSON(w io.Writer, md *metadata.Metadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(md)
}

func analyzeText(w io.Writer, md *metadata.Metadata) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Value"})

	t.AppendRow(table.Row{"Query type", string(md.QueryType)})
	t.AppendRow(table.Row{"Tables", strings.Join(md.Tables, ", ")})
	t.AppendRow(table.Row{"Columns", strings.Join(md.Columns, ", ")})
	if len(md.TableAliases) > 0 {
		aliases := make([]string, 0, len(md.TableAliases))
		for alias := range md.TableAliases {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		pairs := make([]string, len(aliases))
		for i, alias := range aliases {
			pairs[i] = alias + " -> " + md.TableAliases[alias]
		}
		t.AppendRow(table.Row{"Table aliases", strings.Join(pairs, ", ")})
	}
	if len(md.ColumnAliases) > 0 {
		t.AppendRow(table.Row{"Column aliases", strings.Join(md.ColumnAliases, ", ")})
	}
	if len(md.WithNames) > 0 {
		t.AppendRow(table.Row{"WITH names", strings.Join(md.WithNames, ", ")})
	}
	if len(md.Comments) > 0 {
		t.AppendRow(table.Row{"Comments", strings.Join(md.Comments, " ")})
	}

	t.Render()
	return nil
}
