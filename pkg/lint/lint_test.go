package lint_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
	_ "github.com/leapstack-labs/sqlex/pkg/lint/rules"
	"github.com/leapstack-labs/sqlex/pkg/source"
)

type testCatalog struct{}

func (testCatalog) KeywordCase(found, expected string) string {
	return fmt.Sprintf("keyword %q should be %q", found, expected)
}
func (testCatalog) NoSelectStar() string { return "avoid SELECT *" }
func (testCatalog) RequireTableAlias(table string) string {
	return fmt.Sprintf("table %q has no alias", table)
}
func (testCatalog) TrailingSemicolon() string { return "missing trailing semicolon" }

func runLint(t *testing.T, sql string, cfg *lint.Config) []lint.Diagnostic {
	t.Helper()
	fe, err := frontend.New("generic")
	require.NoError(t, err)
	return lint.Run(source.New("test.sql", sql), fe, cfg, testCatalog{})
}

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, 0, len(diags))
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	return ids
}

func TestRegistryHasBuiltinRules(t *testing.T) {
	var ids []string
	for _, def := range lint.All() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{
		"keyword-case", "no-select-star", "require-table-alias", "trailing-semicolon",
	}, ids)
}

func TestKeywordCaseUpper(t *testing.T) {
	diags := runLint(t, "select id FROM users;", lint.DefaultConfig())

	require.Len(t, diags, 1)
	assert.Equal(t, "keyword-case", diags[0].RuleID)
	assert.Equal(t, `keyword "select" should be "SELECT"`, diags[0].Message)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 1, diags[0].Pos.Column)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
}

func TestKeywordCaseLower(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.KeywordCase = lint.KeywordCaseLower
	cfg.TrailingSemicolon = false

	diags := runLint(t, "SELECT id from users", cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, `keyword "SELECT" should be "select"`, diags[0].Message)
}

func TestKeywordCaseIgnore(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.KeywordCase = lint.KeywordCaseIgnore

	diags := runLint(t, "select ID from users;", cfg)
	assert.Empty(t, diags)
}

func TestKeywordCaseMixedIsViolation(t *testing.T) {
	diags := runLint(t, "Select id FROM users;", lint.DefaultConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, `keyword "Select" should be "SELECT"`, diags[0].Message)
}

func TestKeywordCaseSkipsQuotedAndNonKeywords(t *testing.T) {
	// "select" here is a quoted identifier and 'from' a string literal.
	diags := runLint(t, `SELECT "select", 'from' FROM t;`, lint.DefaultConfig())
	assert.Empty(t, diags)
}

func TestKeywordCaseCoversNonGrammarWords(t *testing.T) {
	// PARTITION and OVER lex as identifiers but are reserved words.
	diags := runLint(t, "SELECT rank() over (partition BY org) FROM t;", lint.DefaultConfig())
	assert.Equal(t, []string{"keyword-case", "keyword-case"}, ruleIDs(diags))
}

func TestNoSelectStar(t *testing.T) {
	diags := runLint(t, "SELECT * FROM users;", lint.DefaultConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, "no-select-star", diags[0].RuleID)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 8, diags[0].Pos.Column)
}

func TestNoSelectStarQualified(t *testing.T) {
	diags := runLint(t, "SELECT u.* FROM users u;", lint.DefaultConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, "no-select-star", diags[0].RuleID)
	assert.Equal(t, 8, diags[0].Pos.Column)
}

func TestNoSelectStarDisabled(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.NoSelectStar = false

	diags := runLint(t, "SELECT * FROM users;", cfg)
	assert.Empty(t, diags)
}

func TestCountStarIsNotSelectStar(t *testing.T) {
	diags := runLint(t, "SELECT COUNT(*) FROM users;", lint.DefaultConfig())
	assert.Empty(t, diags)
}

func TestTreeRulesSkippedOnParseError(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.RequireTableAlias = true

	diags := runLint(t, "SELECT * FROM;", cfg)
	assert.Empty(t, diags, "tree rules must not run on unparsable input")
}

func TestRequireTableAlias(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.RequireTableAlias = true
	cfg.NoSelectStar = false

	diags := runLint(t, "SELECT id FROM users JOIN orgs o ON users.org_id = o.id;", cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, "require-table-alias", diags[0].RuleID)
	assert.Equal(t, `table "users" has no alias`, diags[0].Message)
	assert.Equal(t, 16, diags[0].Pos.Column)
}

func TestRequireTableAliasOffByDefault(t *testing.T) {
	diags := runLint(t, "SELECT id FROM users;", lint.DefaultConfig())
	assert.Empty(t, diags)
}

func TestTrailingSemicolon(t *testing.T) {
	diags := runLint(t, "SELECT id FROM users", lint.DefaultConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, "trailing-semicolon", diags[0].RuleID)
	assert.Equal(t, "missing trailing semicolon", diags[0].Message)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 20, diags[0].Pos.Column)
}

func TestTrailingSemicolonWithTrailingNewlines(t *testing.T) {
	diags := runLint(t, "SELECT id\nFROM users\n\n", lint.DefaultConfig())
	require.Len(t, diags, 1)
	assert.Equal(t, "trailing-semicolon", diags[0].RuleID)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Equal(t, 10, diags[0].Pos.Column)
}

func TestEmptyInputHasNoFindings(t *testing.T) {
	assert.Empty(t, runLint(t, "", lint.DefaultConfig()))
	assert.Empty(t, runLint(t, "   \n\t\n", lint.DefaultConfig()))
}

func TestDiagnosticsSortedByPosition(t *testing.T) {
	cfg := lint.DefaultConfig()
	cfg.RequireTableAlias = true

	diags := runLint(t, "select *\nFROM users", cfg)
	ids := ruleIDs(diags)
	assert.Equal(t, []string{
		"keyword-case", "no-select-star", "require-table-alias", "trailing-semicolon",
	}, ids)
}

func TestTextRulesRunOnSyntaxErrors(t *testing.T) {
	// Unparsable, but the token stream is fine: keyword-case and
	// trailing-semicolon still report.
	diags := runLint(t, "select id from", lint.DefaultConfig())
	ids := ruleIDs(diags)
	assert.Contains(t, ids, "keyword-case")
	assert.Contains(t, ids, "trailing-semicolon")
	assert.NotContains(t, ids, "no-select-star")
}
