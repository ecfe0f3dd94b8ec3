package lint

import (
	"sort"

	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/source"
)

// Run evaluates all enabled rules against one document and returns the
// findings ordered by position, then rule id.
//
// Token- and text-level rules run regardless of syntax validity; tree
// rules require a clean parse of the whole document and are skipped
// otherwise. Front-end failures are therefore not lint errors.
func Run(doc *source.Document, fe frontend.Frontend, cfg *Config, msgs Catalog) []Diagnostic {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	d, err := dialect.Get(fe.Name())
	if err != nil {
		// Frontends are only constructible from registered dialects.
		return nil
	}

	ctx := &Context{
		Doc:      doc,
		Dialect:  d,
		Config:   cfg,
		Messages: msgs,
	}

	if tokens, err := fe.Tokenize(doc.Text()); err == nil {
		ctx.Tokens = tokens
	}
	if stmts, err := fe.Parse(doc.Text()); err == nil {
		ctx.Parsed = true
		ctx.Statements = stmts
	}

	var diags []Diagnostic
	for _, def := range All() {
		if def.Enabled != nil && !def.Enabled(cfg) {
			continue
		}
		if def.NeedsAST && !ctx.Parsed {
			continue
		}
		diags = append(diags, def.Check(ctx)...)
	}

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos != diags[j].Pos {
			return diags[i].Pos.Before(diags[j].Pos)
		}
		return diags[i].RuleID < diags[j].RuleID
	})

	return diags
}
