// Package main provides the sqlmeta CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlmeta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
