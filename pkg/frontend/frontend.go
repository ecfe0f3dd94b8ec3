// Package frontend exposes the SQL front-end as a small capability
// interface. Callers obtain one per dialect and use it for both raw
// tokenization and full parsing.
package frontend

import (
	"fmt"

	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/parser"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Frontend tokenizes and parses SQL text for one dialect.
type Frontend interface {
	// Name returns the canonical dialect name.
	Name() string

	// Tokenize returns the token stream without the trailing EOF token.
	// It fails when the input contains characters the dialect cannot lex.
	Tokenize(text string) ([]token.Token, error)

	// Parse parses the input as a list of semicolon-separated statements.
	Parse(text string) ([]parser.Statement, error)
}

type dialectFrontend struct {
	dialect *dialect.Dialect
}

// New returns the front-end for the named dialect. An unrecognized name
// yields a *dialect.UnsupportedError.
func New(dialectName string) (Frontend, error) {
	d, err := dialect.Get(dialectName)
	if err != nil {
		return nil, err
	}
	return &dialectFrontend{dialect: d}, nil
}

func (f *dialectFrontend) Name() string {
	return f.dialect.Name
}

func (f *dialectFrontend) Tokenize(text string) ([]token.Token, error) {
	tokens := parser.Tokenize(text, f.dialect)
	// Drop the EOF sentinel
	tokens = tokens[:len(tokens)-1]

	for _, tok := range tokens {
		if tok.Type == token.ILLEGAL {
			return nil, fmt.Errorf("unexpected character %q at %s", tok.Literal, tok.Pos)
		}
	}
	return tokens, nil
}

func (f *dialectFrontend) Parse(text string) ([]parser.Statement, error) {
	return parser.Parse(text, f.dialect)
}
