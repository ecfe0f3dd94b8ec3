package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/internal/i18n"
	"github.com/leapstack-labs/sqlex/pkg/source"
)

func analyze(t *testing.T, errMsg, sql string, errorLine int) *Hint {
	t.Helper()
	return Analyze(errMsg, source.New("test.sql", sql), errorLine, i18n.NewMessages(i18n.LangEnglish))
}

func TestTrailingCommaBeforeClause(t *testing.T) {
	sql := `SELECT
  id,
  name,
  email,
WHERE
  active = 1`

	hint := analyze(t, `expected =, found "active"`, sql, 6)
	require.NotNil(t, hint)
	assert.Equal(t, 4, hint.SuspectLine)
	assert.Equal(t, ",", hint.SuspectPattern)
	assert.Equal(t, "Line 4 may have a trailing comma that should be removed", hint.Text)
}

func TestTrailingCommaMarkersCaseInsensitive(t *testing.T) {
	sql := `SELECT
  id,
  name,
  email,
WHERE
  active = 1`

	// Alternate renderings capitalize the markers.
	hint := analyze(t, "Expected: =, found: active", sql, 6)
	require.NotNil(t, hint)
	assert.Equal(t, 4, hint.SuspectLine)
	assert.Equal(t, ",", hint.SuspectPattern)
}

func TestTrailingCommaErrorOnKeywordLine(t *testing.T) {
	sql := `SELECT
  id,
  department,
WHERE
  bill_id = 'test'`

	hint := analyze(t, "expected an expression, found WHERE", sql, 4)
	require.NotNil(t, hint)
	assert.Equal(t, 3, hint.SuspectLine)
}

func TestExpectedFoundWithoutCommaFallsThrough(t *testing.T) {
	sql := "SELECT id\nFROM users\nWHERE (a = 1"

	// No trailing comma anywhere, so rule 1 yields nothing and rule 2
	// catches the missing parenthesis.
	hint := analyze(t, "expected ), found EOF", sql, 3)
	require.NotNil(t, hint)
	assert.Equal(t, "Check for mismatched parentheses", hint.Text)
	assert.Zero(t, hint.SuspectLine)
}

func TestTrailingCommaWinsOverParenRule(t *testing.T) {
	sql := `SELECT
  id,
FROM users`

	// The message matches both rule 1 and rule 2 triggers; rule 1 is
	// checked first.
	hint := analyze(t, "expected ), found FROM", sql, 3)
	require.NotNil(t, hint)
	assert.Equal(t, 2, hint.SuspectLine)
	assert.Equal(t, ",", hint.SuspectPattern)
}

func TestMissingCallParentheses(t *testing.T) {
	hint := analyze(t, `expected (, found "now"`, "SELECT now FROM t", 1)
	require.NotNil(t, hint)
	assert.Equal(t, "Function call may require parentheses", hint.Text)
}

func TestUnclosedParentheses(t *testing.T) {
	sql := "SELECT COUNT((a + b FROM t"

	hint := analyze(t, "expected an expression, found EOF", sql, 1)
	require.NotNil(t, hint)
	assert.Equal(t, "2 unclosed parenthesis(es) found", hint.Text)
	assert.Equal(t, "(", hint.SuspectPattern)
}

func TestUnclosedQuote(t *testing.T) {
	sql := "SELECT 'abc FROM t"

	hint := analyze(t, "unexpected EOF", sql, 1)
	require.NotNil(t, hint)
	assert.Equal(t, "Unclosed quote found", hint.Text)
	assert.Equal(t, "'", hint.SuspectPattern)
}

func TestParenDeficitCheckedBeforeQuotes(t *testing.T) {
	sql := "SELECT ('abc FROM t"

	hint := analyze(t, "unexpected EOF", sql, 1)
	require.NotNil(t, hint)
	assert.Equal(t, "1 unclosed parenthesis(es) found", hint.Text)
}

func TestNoHint(t *testing.T) {
	assert.Nil(t, analyze(t, "something unrecognizable", "SELECT 1", 1))
	assert.Nil(t, analyze(t, "unexpected EOF", "SELECT (a) FROM t", 1))
}

func TestErrorLineOutOfRange(t *testing.T) {
	assert.Nil(t, analyze(t, "expected =, found FROM", "SELECT 1", 99))
}

func TestJapaneseHint(t *testing.T) {
	sql := "SELECT\n  id,\nFROM users"
	hint := Analyze("expected an expression, found FROM",
		source.New("t.sql", sql), 3, i18n.NewMessages(i18n.LangJapanese))
	require.NotNil(t, hint)
	assert.Equal(t, "2行目の末尾に余計なカンマがある可能性があります", hint.Text)
}
