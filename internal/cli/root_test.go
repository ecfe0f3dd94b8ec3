package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlex/internal/cli/commands"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeSQL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func exitCode(err error) int {
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 0
}

func TestCheckCleanFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "clean.sql", "SELECT id FROM users;\n")

	out, _, err := runCommand(t, "check", path)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ "+path+" - OK")
	assert.Contains(t, out, "Total: 1 file(s), 0 error(s)")
}

func TestCheckBrokenFileExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "broken.sql", "SELECT\n  id,\nFROM users;\n")

	out, _, err := runCommand(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	assert.Contains(t, out, "✗ "+path+" - 1 error(s)")
	assert.Contains(t, out, "Syntax error (line 3, col 1)")
	// Context block with the caret under the error column.
	assert.Contains(t, out, "3 | FROM users")
	assert.Contains(t, out, "  | ^")
	// Hint about the dangling comma on line 2.
	assert.Contains(t, out, "Line 2 may have a trailing comma")
}

func TestCheckJapaneseMessages(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "clean.sql", "SELECT 1;\n")

	out, _, err := runCommand(t, "check", "--lang", "ja", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+path+" - 問題なし")
}

func TestCheckMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCommand(t, "check", "missing.sql")
	require.Error(t, err)
	assert.Zero(t, exitCode(err))
	assert.Contains(t, err.Error(), "missing.sql")
}

func TestFixDryRunDiff(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "q.sql", "select id from users\n")

	out, _, err := runCommand(t, "fix", "--dry-run", "--format", "diff", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Would fix: "+path)
	assert.Contains(t, out, "-select id from users")
	assert.Contains(t, out, "+SELECT id FROM users;")

	// Dry run leaves the file untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "select id from users\n", string(data))
}

func TestFixWrites(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "q.sql", "select id from users\n")

	out, _, err := runCommand(t, "fix", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed: "+path)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "SELECT id FROM users;\n", string(data))
}

func TestLintReportsFindings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "q.sql", "select * from users;\n")

	out, _, err := runCommand(t, "lint", path)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	assert.Contains(t, out, path)
	assert.Contains(t, out, "[keyword-case] line 1:1 - Keyword 'select' should be 'SELECT'")
	assert.Contains(t, out, "[no-select-star] line 1:8 - Avoid SELECT *")
	assert.Contains(t, out, "Total: 1 file(s), 3 warning(s)")
}

func TestLintFlagsOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSQL(t, dir, "q.sql", "SELECT id FROM users;\n")

	// Clean by default.
	_, _, err := runCommand(t, "lint", path)
	require.NoError(t, err)

	// Requiring aliases flips the same file to a warning.
	out, _, err := runCommand(t, "lint", "--require-alias", path)
	require.Error(t, err)
	assert.Contains(t, out, "[require-table-alias]")
}

func TestLintConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlex.yaml"), []byte(`
lint:
  keyword_case: ignore
  no_select_star: false
  trailing_semicolon: false
`), 0o644))
	path := writeSQL(t, dir, "q.sql", "select * from users")

	_, _, err := runCommand(t, "lint", path)
	require.NoError(t, err)
}

func TestInvalidDialect(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCommand(t, "check", "--dialect", "oracle", "x.sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlex")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlex dev")
	assert.Contains(t, out, "commit: none")
}
