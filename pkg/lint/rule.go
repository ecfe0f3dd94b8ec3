package lint

import (
	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/parser"
	"github.com/leapstack-labs/sqlex/pkg/source"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Context is the evaluation state shared by all rules for one document.
type Context struct {
	Doc      *source.Document
	Dialect  *dialect.Dialect
	Config   *Config
	Messages Catalog

	// Tokens is the token stream; nil when tokenization failed.
	Tokens []token.Token

	// Statements is the parsed tree. It is only populated when the whole
	// document parsed cleanly; Parsed distinguishes an empty document
	// from a failed parse.
	Parsed     bool
	Statements []parser.Statement
}

// RuleDef is a data-driven rule definition.
type RuleDef struct {
	// ID is the stable rule identifier, e.g. "keyword-case".
	ID string

	// Name is the human-readable name.
	Name string

	// Description says what the rule checks.
	Description string

	// Severity is the severity of the rule's diagnostics.
	Severity Severity

	// NeedsAST marks tree-derived rules; they are skipped when the
	// document did not parse cleanly.
	NeedsAST bool

	// Enabled reports whether the configuration turns the rule on.
	Enabled func(cfg *Config) bool

	// Check evaluates the rule.
	Check func(ctx *Context) []Diagnostic
}
