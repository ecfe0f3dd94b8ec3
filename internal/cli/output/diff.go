package output

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff prints a unified diff between the original and fixed
// content of one file with three lines of context.
func (r *Renderer) UnifiedDiff(path, before, after string) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (fixed)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", path, err)
	}

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			r.Println(r.styles.Added.Render(line))
		case strings.HasPrefix(line, "-"):
			r.Println(r.styles.Removed.Render(line))
		default:
			r.Println(line)
		}
	}
	return nil
}

// SummaryDiff prints only the changed lines, numbered, with removals
// before insertions.
func (r *Renderer) SummaryDiff(before, after string) {
	a := difflib.SplitLines(before)
	b := difflib.SplitLines(after)

	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		if op.Tag == 'd' || op.Tag == 'r' {
			for i := op.I1; i < op.I2; i++ {
				line := fmt.Sprintf("- %d | %s", i+1, strings.TrimRight(a[i], "\n"))
				r.Println(r.styles.Removed.Render(line))
			}
		}
		if op.Tag == 'i' || op.Tag == 'r' {
			for j := op.J1; j < op.J2; j++ {
				line := fmt.Sprintf("+ %d | %s", j+1, strings.TrimRight(b[j], "\n"))
				r.Println(r.styles.Added.Render(line))
			}
		}
	}
}
