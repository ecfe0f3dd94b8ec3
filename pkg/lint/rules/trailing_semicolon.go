package rules

import (
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "trailing-semicolon",
		Name:        "Trailing semicolon",
		Description: "Non-empty files end with a semicolon",
		Severity:    lint.SeverityWarning,
		Enabled: func(cfg *lint.Config) bool {
			return cfg.TrailingSemicolon
		},
		Check: checkTrailingSemicolon,
	})
}

func checkTrailingSemicolon(ctx *lint.Context) []lint.Diagnostic {
	trimmed := strings.TrimSpace(ctx.Doc.Text())
	if trimmed == "" || strings.HasSuffix(trimmed, ";") {
		return nil
	}

	// Point at the end of the last non-blank line.
	line := ctx.Doc.LineCount()
	for line > 1 && strings.TrimSpace(ctx.Doc.Line(line)) == "" {
		line--
	}
	col := len(ctx.Doc.Line(line))
	if col == 0 {
		col = 1
	}

	return []lint.Diagnostic{{
		RuleID:   "trailing-semicolon",
		Severity: lint.SeverityWarning,
		Message:  ctx.Messages.TrailingSemicolon(),
		Pos:      token.Position{Line: line, Column: col},
	}}
}
