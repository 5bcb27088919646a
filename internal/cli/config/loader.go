package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Tracks the config file picked up by the last Load, for verbose output.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlmeta.yaml > sqlmeta.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("sqlmeta.yaml"); err == nil {
		return "sqlmeta.yaml"
	}
	if _, err := os.Stat("sqlmeta.yml"); err == nil {
		return "sqlmeta.yml"
	}
	return ""
}

// Load builds the configuration from defaults, an optional config file,
// SQLMETA_ environment variables and the given flag set. flags may be nil.
func Load(explicitFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	configFileUsed = ""

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(explicitFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		configFileUsed = path
	}

	if err := k.Load(env.Provider("SQLMETA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLMETA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file the last Load read,
// or empty if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}
