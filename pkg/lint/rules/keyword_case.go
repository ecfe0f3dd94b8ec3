// Package rules holds the builtin lint rule definitions. Importing the
// package registers them.
package rules

import (
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "keyword-case",
		Name:        "Keyword case",
		Description: "SQL keywords use a consistent case style",
		Severity:    lint.SeverityWarning,
		Enabled: func(cfg *lint.Config) bool {
			return cfg.KeywordCase != lint.KeywordCaseIgnore
		},
		Check: checkKeywordCase,
	})
}

func checkKeywordCase(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, tok := range ctx.Tokens {
		if tok.Quoted {
			continue
		}
		if tok.Type != token.IDENT && !token.IsKeyword(tok.Type) {
			continue
		}
		word := tok.Literal
		if !ctx.Dialect.IsReservedWord(word) {
			continue
		}

		var expected string
		switch ctx.Config.KeywordCase {
		case lint.KeywordCaseUpper:
			expected = strings.ToUpper(word)
		case lint.KeywordCaseLower:
			expected = strings.ToLower(word)
		default:
			continue
		}
		if word == expected {
			continue
		}

		diags = append(diags, lint.Diagnostic{
			RuleID:   "keyword-case",
			Severity: lint.SeverityWarning,
			Message:  ctx.Messages.KeywordCase(word, expected),
			Pos:      tok.Pos,
		})
	}

	return diags
}
