package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/source"
)

func fix(t *testing.T, sql string, opts Options) Result {
	t.Helper()
	fe, err := frontend.New("generic")
	require.NoError(t, err)
	return Fix(source.New("test.sql", sql), fe, opts)
}

func upper() Options { return Options{KeywordCase: lint.KeywordCaseUpper} }

func TestFixUppercasesKeywords(t *testing.T) {
	res := fix(t, "select id from users where id = 1;", upper())

	assert.Equal(t, "SELECT id FROM users WHERE id = 1;\n", res.Text)
	assert.True(t, res.Changed)
	assert.Equal(t, 3, res.CasedKeywords)
}

func TestFixPreservesSpacing(t *testing.T) {
	res := fix(t, "select  id  from  users;", upper())
	assert.Equal(t, "SELECT  id  FROM  users;\n", res.Text)
}

func TestFixAppendsSemicolon(t *testing.T) {
	res := fix(t, "SELECT id FROM users", upper())
	assert.Equal(t, "SELECT id FROM users;\n", res.Text)
}

func TestFixTrimsTrailingWhitespace(t *testing.T) {
	res := fix(t, "SELECT id FROM users   \n\n\t\n", upper())
	assert.Equal(t, "SELECT id FROM users;\n", res.Text)
}

func TestFixSemicolonAfterTrim(t *testing.T) {
	res := fix(t, "SELECT id FROM users;  \n", upper())
	assert.Equal(t, "SELECT id FROM users;\n", res.Text)
}

func TestFixIdempotent(t *testing.T) {
	inputs := []string{
		"select id, name from users where active = true",
		"SELECT id FROM users;",
		"select *\nfrom t\norder by 1 desc",
	}

	for _, input := range inputs {
		first := fix(t, input, upper())
		second := fix(t, first.Text, upper())
		assert.Equal(t, first.Text, second.Text, "input %q", input)
		assert.False(t, second.Changed, "second pass must be a no-op for %q", input)
	}
}

func TestFixLowercase(t *testing.T) {
	res := fix(t, "SELECT id FROM users;", Options{KeywordCase: lint.KeywordCaseLower})
	assert.Equal(t, "select id from users;\n", res.Text)
}

func TestFixIgnoreCaseStillNormalizesTerminator(t *testing.T) {
	res := fix(t, "select id from users", Options{KeywordCase: lint.KeywordCaseIgnore})
	assert.Equal(t, "select id from users;\n", res.Text)
	assert.Zero(t, res.CasedKeywords)
}

func TestFixSkipsQuotedTokens(t *testing.T) {
	res := fix(t, `select "from", 'where' from t;`, upper())
	assert.Equal(t, `SELECT "from", 'where' FROM t;`+"\n", res.Text)
}

func TestFixKeepsIdentifiersIntact(t *testing.T) {
	// from_date contains a keyword as a prefix but is a plain identifier.
	res := fix(t, "select from_date from t;", upper())
	assert.Equal(t, "SELECT from_date FROM t;\n", res.Text)
}

func TestFixMultiline(t *testing.T) {
	res := fix(t, "select id,\n       name\nfrom users\nwhere id > 10", upper())
	assert.Equal(t, "SELECT id,\n       name\nFROM users\nWHERE id > 10;\n", res.Text)
}

func TestFixCasesNonGrammarReservedWords(t *testing.T) {
	// create/table lex as identifiers but are reserved words.
	res := fix(t, "create table t (id integer);", upper())
	assert.Equal(t, "CREATE TABLE t (id integer);\n", res.Text)
}

func TestFixSyntaxErrorStillNormalizesTerminator(t *testing.T) {
	// Unparsable but tokenizable: the case pass still runs.
	res := fix(t, "select from where", upper())
	assert.Equal(t, "SELECT FROM WHERE;\n", res.Text)
}

func TestFixTokenizeFailureSkipsCasePass(t *testing.T) {
	// '#' cannot be lexed; only the terminator is normalized.
	res := fix(t, "select id # from t", upper())
	assert.Equal(t, "select id # from t;\n", res.Text)
	assert.Zero(t, res.CasedKeywords)
}

func TestFixEmptyInput(t *testing.T) {
	res := fix(t, "", upper())
	assert.Equal(t, "", res.Text)
	assert.False(t, res.Changed)

	res = fix(t, "   \n\t\n", upper())
	assert.Equal(t, "", res.Text)
	assert.True(t, res.Changed)
}

func TestFixUnchangedInput(t *testing.T) {
	res := fix(t, "SELECT id FROM users;\n", upper())
	assert.Equal(t, "SELECT id FROM users;\n", res.Text)
	assert.False(t, res.Changed)
}

func TestApplyReplacementsDescendingEquivalence(t *testing.T) {
	text := "aa bb cc"
	reps := []Replacement{
		{Offset: 0, Length: 2, Text: "AAAA"},
		{Offset: 3, Length: 2, Text: "B"},
		{Offset: 6, Length: 2, Text: "CCC"},
	}

	// The input order of non-overlapping edits must not matter.
	assert.Equal(t, "AAAA B CCC", applyReplacements(text, reps))
	reversed := []Replacement{reps[2], reps[0], reps[1]}
	assert.Equal(t, "AAAA B CCC", applyReplacements(text, reversed))
}
