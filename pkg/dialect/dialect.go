// Package dialect defines SQL dialect descriptors and their registry.
//
// A dialect is pure data: extra lexer keywords, identifier quoting styles,
// extra LIKE-class operators and extra SELECT clauses. The lexer and parser
// consult the active dialect instead of hardcoding per-dialect behavior.
package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Dialect describes the lexical and grammatical extensions of one SQL
// dialect on top of the ANSI core.
type Dialect struct {
	// Name is the canonical registry name (lowercase).
	Name string

	// Aliases are alternative registry names (e.g. "postgresql").
	Aliases []string

	// BacktickIdents enables `ident` quoting (MySQL, BigQuery).
	BacktickIdents bool

	// BracketIdents enables [ident] quoting (SQLite compatibility mode).
	BracketIdents bool

	keywords map[string]token.TokenType
	likeOps  map[token.TokenType]struct{}
	clauses  map[token.TokenType]struct{}
	reserved map[string]struct{}
}

// New creates an empty dialect descriptor.
func New(name string, aliases ...string) *Dialect {
	return &Dialect{
		Name:     strings.ToLower(name),
		Aliases:  aliases,
		keywords: map[string]token.TokenType{},
		likeOps:  map[token.TokenType]struct{}{},
		clauses:  map[token.TokenType]struct{}{},
		reserved: map[string]struct{}{},
	}
}

// Keyword adds an extra lexer keyword and returns its token type.
// The word also becomes reserved for case normalization.
func (d *Dialect) Keyword(name string) token.TokenType {
	t := token.Register(name)
	d.keywords[strings.ToLower(name)] = t
	d.reserved[strings.ToUpper(name)] = struct{}{}
	return t
}

// LikeOperator adds an extra LIKE-class infix operator (e.g. ILIKE).
func (d *Dialect) LikeOperator(name string) token.TokenType {
	t := d.Keyword(name)
	d.likeOps[t] = struct{}{}
	return t
}

// Clause adds an extra SELECT clause keyword (e.g. QUALIFY).
func (d *Dialect) Clause(name string) token.TokenType {
	t := d.Keyword(name)
	d.clauses[t] = struct{}{}
	return t
}

// LookupKeyword resolves a lowercase identifier against the dialect's
// extra keywords.
func (d *Dialect) LookupKeyword(ident string) (token.TokenType, bool) {
	t, ok := d.keywords[ident]
	return t, ok
}

// IsLikeOperator reports whether t parses as a LIKE-class operator.
func (d *Dialect) IsLikeOperator(t token.TokenType) bool {
	_, ok := d.likeOps[t]
	return ok
}

// IsClause reports whether t starts a dialect-specific SELECT clause.
func (d *Dialect) IsClause(t token.TokenType) bool {
	_, ok := d.clauses[t]
	return ok
}

// IsReservedWord reports whether word is reserved in this dialect,
// including the ANSI reserved set.
func (d *Dialect) IsReservedWord(word string) bool {
	if token.IsReservedWord(word) {
		return true
	}
	_, ok := d.reserved[strings.ToUpper(word)]
	return ok
}
