package rules

import (
	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/parser"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "no-select-star",
		Name:        "No SELECT *",
		Description: "SELECT lists name their columns instead of * or table.*",
		Severity:    lint.SeverityWarning,
		NeedsAST:    true,
		Enabled: func(cfg *lint.Config) bool {
			return cfg.NoSelectStar
		},
		Check: checkSelectStar,
	})
}

func checkSelectStar(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, stmt := range ctx.Statements {
		sel, ok := stmt.(*parser.SelectStmt)
		if !ok || sel.Body.Op != parser.SetOpNone {
			continue
		}

		for _, item := range sel.Body.Left.Columns {
			if !item.Star && item.TableStar == "" {
				continue
			}
			diags = append(diags, lint.Diagnostic{
				RuleID:   "no-select-star",
				Severity: lint.SeverityWarning,
				Message:  ctx.Messages.NoSelectStar(),
				Pos:      item.StarSpan.Start,
			})
		}
	}

	return diags
}
