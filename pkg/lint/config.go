package lint

import "fmt"

// KeywordCase selects the case style the keyword-case rule enforces.
type KeywordCase string

const (
	KeywordCaseUpper  KeywordCase = "upper"
	KeywordCaseLower  KeywordCase = "lower"
	KeywordCaseIgnore KeywordCase = "ignore"
)

// ParseKeywordCase validates a keyword-case setting.
func ParseKeywordCase(s string) (KeywordCase, error) {
	switch KeywordCase(s) {
	case KeywordCaseUpper, KeywordCaseLower, KeywordCaseIgnore:
		return KeywordCase(s), nil
	default:
		return "", fmt.Errorf("invalid keyword case %q (want upper, lower or ignore)", s)
	}
}

// Config holds the per-rule switches.
type Config struct {
	KeywordCase       KeywordCase
	NoSelectStar      bool
	RequireTableAlias bool
	TrailingSemicolon bool
}

// DefaultConfig returns the default rule configuration.
func DefaultConfig() *Config {
	return &Config{
		KeywordCase:       KeywordCaseUpper,
		NoSelectStar:      true,
		RequireTableAlias: false,
		TrailingSemicolon: true,
	}
}
