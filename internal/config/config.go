// Package config loads CLI configuration: built-in defaults layered under
// an optional YAML file and GCKIT__ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the environment variable prefix; a double underscore
// separates nesting levels, e.g. GCKIT__DEFAULTS__UNIT=mi.
const envPrefix = "GCKIT__"

// Config holds the CLI settings. The computation libraries take these as
// plain arguments; nothing below reaches into them implicitly.
type Config struct {
	Defaults DefaultsConfig `koanf:"defaults"`
	Geometry GeometryConfig `koanf:"geometry"`
	Anagram  AnagramConfig  `koanf:"anagram"`
}

// DefaultsConfig sets the output defaults used when no flag is given.
type DefaultsConfig struct {
	Unit   string `koanf:"unit"`
	Format string `koanf:"format"`
}

// GeometryConfig bounds the geometry operations.
type GeometryConfig struct {
	// MaxPoints caps point-set sizes; 0 means unbounded.
	MaxPoints int `koanf:"max_points"`
}

// AnagramConfig configures the anagram solver.
type AnagramConfig struct {
	// Wordlist is a path to a word list file overriding the embedded one.
	Wordlist string `koanf:"wordlist"`
}

// Load builds the configuration. The path is optional; an empty path loads
// defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"defaults.unit":       "km",
		"defaults.format":     "ddm",
		"geometry.max_points": 0,
		"anagram.wordlist":    "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(key, envPrefix), "__", "."))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
