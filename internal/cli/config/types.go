package config

import (
	"fmt"

	"github.com/leapstack-labs/sqlex/internal/i18n"
	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/lint"
)

// Config is the resolved tool configuration after merging defaults,
// the config file, environment variables and command-line flags.
type Config struct {
	// Dialect is the SQL dialect files are parsed with.
	Dialect string `koanf:"dialect"`

	// Lang forces the message language; empty means detect from the
	// locale environment.
	Lang string `koanf:"lang"`

	Verbose bool `koanf:"verbose"`
	NoColor bool `koanf:"no_color"`

	Fix  FixConfig  `koanf:"fix"`
	Lint LintConfig `koanf:"lint"`

	// FileUsed is the config file the values were loaded from, if any.
	FileUsed string `koanf:"-"`
}

// FixConfig holds the fix command settings.
type FixConfig struct {
	// Format selects the dry-run output style, summary or diff.
	Format string `koanf:"format"`
}

// LintConfig holds the lint rule switches.
type LintConfig struct {
	KeywordCase       string `koanf:"keyword_case"`
	NoSelectStar      bool   `koanf:"no_select_star"`
	RequireTableAlias bool   `koanf:"require_table_alias"`
	TrailingSemicolon bool   `koanf:"trailing_semicolon"`
}

// Validate checks every setting against its registry.
func (c *Config) Validate() error {
	if _, err := dialect.Get(c.Dialect); err != nil {
		return err
	}
	if c.Lang != "" {
		if _, err := i18n.ParseLang(c.Lang); err != nil {
			return err
		}
	}
	if _, err := lint.ParseKeywordCase(c.Lint.KeywordCase); err != nil {
		return err
	}
	switch c.Fix.Format {
	case "summary", "diff":
	default:
		return fmt.Errorf("invalid fix format %q (want summary or diff)", c.Fix.Format)
	}
	return nil
}

// ResolveLang returns the effective message language.
func (c *Config) ResolveLang() i18n.Lang {
	if c.Lang != "" {
		lang, err := i18n.ParseLang(c.Lang)
		if err == nil {
			return lang
		}
	}
	return i18n.DetectLang()
}

// RuleConfig converts the lint settings into the rule engine form.
// Validate must have passed first.
func (c *Config) RuleConfig() *lint.Config {
	kc, err := lint.ParseKeywordCase(c.Lint.KeywordCase)
	if err != nil {
		kc = lint.KeywordCaseUpper
	}
	return &lint.Config{
		KeywordCase:       kc,
		NoSelectStar:      c.Lint.NoSelectStar,
		RequireTableAlias: c.Lint.RequireTableAlias,
		TrailingSemicolon: c.Lint.TrailingSemicolon,
	}
}
