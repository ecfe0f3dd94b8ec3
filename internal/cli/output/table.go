package output

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RuleSummary prints a per-rule findings table for a lint run. Nothing
// is printed when there are no findings.
func (r *Renderer) RuleSummary(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Findings"})

	total := 0
	for _, id := range ids {
		t.AppendRow(table.Row{id, counts[id]})
		total += counts[id]
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()
}
