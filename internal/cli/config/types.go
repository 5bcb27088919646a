// Package config provides configuration management for the sqlmeta CLI.
//
// Configuration merges, in increasing priority: built-in defaults, a
// sqlmeta.yaml/sqlmeta.yml file, SQLMETA_-prefixed environment variables,
// and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Default values.
const (
	DefaultOutputFormat = "text"
)

// defaults returns the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"output":  DefaultOutputFormat,
		"verbose": false,
	}
}
