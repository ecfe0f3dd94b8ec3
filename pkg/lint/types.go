// Package lint implements the style rule registry and evaluator.
//
// Rules are data-driven: each rule is a RuleDef registered at init time
// from the rules subpackage. Rules are stateless; all context comes via
// the Context passed to the check function.
package lint

import "github.com/leapstack-labs/sqlex/pkg/token"

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is a single lint finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position
}

// Catalog supplies localized diagnostic messages. Implemented by the
// i18n message catalog.
type Catalog interface {
	KeywordCase(found, expected string) string
	NoSelectStar() string
	RequireTableAlias(table string) string
	TrailingSemicolon() string
}
