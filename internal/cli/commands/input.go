// Package commands implements the sqlmeta subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readSQL resolves the SQL text for a command: a positional argument, a
// --file path ("-" for stdin), or stdin when neither is given.
func readSQL(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		if filePath == "-" {
			return readAll(cmd.InOrStdin())
		}
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readAll(cmd.InOrStdin())
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no SQL given: pass a statement as an argument, via --file, or on stdin")
	}
	return string(data), nil
}
