// Package config loads tool configuration from, in ascending
// precedence, built-in defaults, a sqlex.yaml file, SQLEX_ environment
// variables and command-line flags.
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

// configFileNames are searched in the working directory when no
// explicit config file is given.
var configFileNames = []string{"sqlex.yaml", "sqlex.yml"}

// defaults seeds the koanf tree before any other source is merged.
var defaults = map[string]interface{}{
	"dialect":                  "generic",
	"lang":                     "",
	"verbose":                  false,
	"no_color":                 false,
	"fix.format":               "summary",
	"lint.keyword_case":        "upper",
	"lint.no_select_star":      true,
	"lint.require_table_alias": false,
	"lint.trailing_semicolon":  true,
}

// flagKeys maps flag names to config keys where the kebab-to-snake
// rewrite alone is not enough.
var flagKeys = map[string]string{
	"keyword-case":   "lint.keyword_case",
	"no-select-star": "lint.no_select_star",
	"require-alias":  "lint.require_table_alias",
	"format":         "fix.format",
}

// Load merges all configuration sources and validates the result.
// cfgFile, when non-empty, names an explicit config file that must
// exist; otherwise sqlex.yaml/sqlex.yml in the working directory are
// tried. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	fileUsed, err := loadFile(k, cfgFile)
	if err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("SQLEX_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.FileUsed = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, cfgFile string) (string, error) {
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return "", fmt.Errorf("load config file %s: %w", cfgFile, err)
		}
		return cfgFile, nil
	}

	for _, name := range configFileNames {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := k.Load(file.Provider(name), yaml.Parser()); err != nil {
			return "", fmt.Errorf("load config file %s: %w", name, err)
		}
		return name, nil
	}
	return "", nil
}

// envKey turns SQLEX_LINT_KEYWORD_CASE into lint.keyword_case and
// SQLEX_NO_COLOR into no_color.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "SQLEX_"))
	for _, section := range []string{"lint_", "fix_"} {
		if strings.HasPrefix(s, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(s, section)
		}
	}
	return s
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "-", "_")
}
