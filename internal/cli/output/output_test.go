package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/pkg/source"
)

func newTestRenderer() (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	// Buffers are not terminals, so color is always off here.
	return NewRenderer(&out, &errOut, false), &out, &errOut
}

func TestErrorContext(t *testing.T) {
	doc := source.New("q.sql", "SELECT\n  id,\n  name,\nFROM users\nWHERE x = 1\nORDER BY 1")
	r, out, _ := newTestRenderer()

	r.ErrorContext(doc, 4, 1, 0)

	assert.Equal(t, ""+
		"2 |   id,\n"+
		"3 |   name,\n"+
		"4 | FROM users\n"+
		"  | ^\n"+
		"5 | WHERE x = 1\n"+
		"6 | ORDER BY 1\n", out.String())
}

func TestErrorContextColumnBeyondLine(t *testing.T) {
	doc := source.New("q.sql", "SELECT 1")
	r, out, _ := newTestRenderer()

	// EOF errors report one past the end; the caret clamps to the line.
	r.ErrorContext(doc, 1, 99, 0)

	assert.Equal(t, "1 | SELECT 1\n  |         ^\n", out.String())
}

func TestErrorContextLineNumberAlignment(t *testing.T) {
	var sql string
	for i := 0; i < 11; i++ {
		sql += "x\n"
	}
	doc := source.New("q.sql", sql)
	r, out, _ := newTestRenderer()

	r.ErrorContext(doc, 9, 1, 0)

	assert.Contains(t, out.String(), " 9 | x\n")
	assert.Contains(t, out.String(), "11 | x\n")
	assert.Contains(t, out.String(), "   | ^\n")
}

func TestErrorContextSuspectLine(t *testing.T) {
	doc := source.New("q.sql", "SELECT\n  id,\nFROM users")
	r, out, _ := newTestRenderer()

	// Without color the suspect line renders unchanged.
	r.ErrorContext(doc, 3, 1, 2)
	assert.Contains(t, out.String(), "2 |   id,\n")
}

func TestMakeIndicator(t *testing.T) {
	assert.Equal(t, "^", makeIndicator(1, 10))
	assert.Equal(t, "   ^", makeIndicator(4, 10))
	assert.Equal(t, "  ^", makeIndicator(99, 2))
	assert.Equal(t, "^", makeIndicator(0, 5))
}

func TestUnifiedDiff(t *testing.T) {
	r, out, _ := newTestRenderer()

	err := r.UnifiedDiff("q.sql", "select 1\nfrom t\n", "SELECT 1\nFROM t;\n")
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "--- q.sql")
	assert.Contains(t, got, "+++ q.sql (fixed)")
	assert.Contains(t, got, "-select 1")
	assert.Contains(t, got, "+SELECT 1")
	assert.Contains(t, got, "+FROM t;")
}

func TestSummaryDiff(t *testing.T) {
	r, out, _ := newTestRenderer()

	r.SummaryDiff("select 1\nsame\nfrom t\n", "SELECT 1\nsame\nFROM t;\n")

	assert.Equal(t, ""+
		"- 1 | select 1\n"+
		"+ 1 | SELECT 1\n"+
		"- 3 | from t\n"+
		"+ 3 | FROM t;\n", out.String())
}

func TestRuleSummary(t *testing.T) {
	r, out, _ := newTestRenderer()

	r.RuleSummary(map[string]int{"keyword-case": 3, "no-select-star": 1})

	got := out.String()
	assert.Contains(t, got, "keyword-case")
	assert.Contains(t, got, "no-select-star")
	// StyleLight uppercases headers and footers.
	assert.Contains(t, got, "TOTAL")
	assert.Contains(t, got, "RULE")

	out.Reset()
	r.RuleSummary(nil)
	assert.Empty(t, out.String())
}

func TestErrorln(t *testing.T) {
	r, out, errOut := newTestRenderer()
	r.Errorln("boom")
	assert.Empty(t, out.String())
	assert.Equal(t, "boom\n", errOut.String())
}
