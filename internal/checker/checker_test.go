package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/internal/fixer"
	"github.com/leapstack-labs/sqlex/internal/i18n"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
	_ "github.com/leapstack-labs/sqlex/pkg/lint/rules"
)

func newChecker(t *testing.T) *Checker {
	t.Helper()
	fe, err := frontend.New("generic")
	require.NoError(t, err)
	return &Checker{Frontend: fe, Messages: i18n.NewMessages(i18n.LangEnglish)}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseErrorLocation(t *testing.T) {
	tests := []struct {
		msg  string
		line int
		col  int
	}{
		{"syntax error at Line: 3, Column: 7: expected FROM", 3, 7},
		{"Line: 12, Column: 1", 12, 1},
		{"error near Column 5", 1, 5},
		{"Line: 4 only", 4, 1},
		{"nothing useful", 1, 1},
		{"", 1, 1},
		{"Line: , Column: ", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			line, col := ParseErrorLocation(tt.msg)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestCollectFilesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT 1;")
	b := writeFile(t, dir, "nested/b.sql", "SELECT 2;")
	writeFile(t, dir, "notes.txt", "not sql")

	files, err := CollectFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestCollectFilesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	// Explicit targets are accepted regardless of extension.
	path := writeFile(t, dir, "query.txt", "SELECT 1;")

	files, err := CollectFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFilesGlob(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "models/a.sql", "SELECT 1;")
	b := writeFile(t, dir, "models/sub/b.sql", "SELECT 2;")
	writeFile(t, dir, "models/readme.md", "x")

	files, err := CollectFiles([]string{filepath.Join(dir, "models", "**", "*.sql")})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestCollectFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT 1;")

	files, err := CollectFiles([]string{a, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestCollectFilesMissingTarget(t *testing.T) {
	_, err := CollectFiles([]string{"does-not-exist.sql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.sql")
}

func TestCheckCleanAndBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.sql", "SELECT id FROM users;")
	broken := writeFile(t, dir, "broken.sql", "SELECT id,\nFROM users;")

	res, err := newChecker(t).Check([]string{clean, broken})
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.Equal(t, 1, res.TotalErrors)

	assert.Empty(t, res.Files[0].Errors)

	require.Len(t, res.Files[1].Errors, 1)
	se := res.Files[1].Errors[0]
	assert.Equal(t, 2, se.Line)
	assert.Contains(t, se.Message, "expected an expression")
	require.NotNil(t, se.Hint)
	assert.Equal(t, 1, se.Hint.SuspectLine)
}

func TestCheckUnreadableFileAbortsRun(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.sql", "SELECT 1;")

	_, err := newChecker(t).Check([]string{clean, filepath.Join(dir, "missing.sql")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.sql")
}

func TestFixWritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.sql", "select id from users")

	res, err := newChecker(t).Fix([]string{path}, fixer.Options{KeywordCase: lint.KeywordCaseUpper}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users;\n", string(data))
}

func TestFixDryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.sql", "select id from users")

	res, err := newChecker(t).Fix([]string{path}, fixer.Options{KeywordCase: lint.KeywordCaseUpper}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changed)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "SELECT id FROM users;\n", res.Files[0].Fixed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "select id from users", string(data))
}

func TestFixUnchangedFileNotRewritten(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.sql", "SELECT id FROM users;\n")

	res, err := newChecker(t).Fix([]string{path}, fixer.Options{KeywordCase: lint.KeywordCaseUpper}, false)
	require.NoError(t, err)
	assert.Zero(t, res.Changed)
	assert.False(t, res.Files[0].Changed)
}

func TestLintCountsFindings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.sql", "select * from users")

	res, err := newChecker(t).Lint([]string{path}, lint.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	var rules []string
	for _, d := range res.Files[0].Diagnostics {
		rules = append(rules, d.RuleID)
	}
	// Ordered by source position: select (1:1), the star (1:8),
	// from (1:10), then the missing semicolon at the line end.
	assert.Equal(t, []string{
		"keyword-case", "no-select-star", "keyword-case", "trailing-semicolon",
	}, rules)
	assert.Equal(t, 4, res.TotalFindings)
}
