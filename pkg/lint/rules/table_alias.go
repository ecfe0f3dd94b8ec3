package rules

import (
	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/parser"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "require-table-alias",
		Name:        "Require table alias",
		Description: "Tables in FROM carry an explicit alias",
		Severity:    lint.SeverityWarning,
		NeedsAST:    true,
		Enabled: func(cfg *lint.Config) bool {
			return cfg.RequireTableAlias
		},
		Check: checkTableAlias,
	})
}

func checkTableAlias(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic

	report := func(ref parser.TableRef) {
		table, ok := ref.(*parser.TableName)
		if !ok || table.Alias != "" {
			return
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   "require-table-alias",
			Severity: lint.SeverityWarning,
			Message:  ctx.Messages.RequireTableAlias(table.Qualified()),
			Pos:      table.NameSpan.Start,
		})
	}

	for _, stmt := range ctx.Statements {
		sel, ok := stmt.(*parser.SelectStmt)
		if !ok || sel.Body.Op != parser.SetOpNone {
			continue
		}

		from := sel.Body.Left.From
		if from == nil {
			continue
		}
		report(from.Source)
		for _, join := range from.Joins {
			report(join.Right)
		}
	}

	return diags
}
