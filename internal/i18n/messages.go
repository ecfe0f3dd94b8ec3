// Package i18n holds the localized user-facing message catalog.
// English and Japanese are supported; the language is resolved once at
// startup and the catalog is immutable afterwards.
package i18n

import "fmt"

// Lang identifies a supported message language.
type Lang string

const (
	LangEnglish  Lang = "en"
	LangJapanese Lang = "ja"
)

// ParseLang validates a language tag.
func ParseLang(s string) (Lang, error) {
	switch Lang(s) {
	case LangEnglish, LangJapanese:
		return Lang(s), nil
	default:
		return "", fmt.Errorf("unsupported language %q (want en or ja)", s)
	}
}

// Messages renders user-facing text in one language. It satisfies
// lint.Catalog and hints.Catalog.
type Messages struct {
	lang Lang
}

// NewMessages creates a catalog for the given language.
func NewMessages(lang Lang) *Messages {
	return &Messages{lang: lang}
}

// Lang returns the catalog language.
func (m *Messages) Lang() Lang { return m.lang }

func (m *Messages) ja() bool { return m.lang == LangJapanese }

// Checking renders the per-file progress line.
func (m *Messages) Checking(path string) string {
	if m.ja() {
		return fmt.Sprintf("チェック中: %s", path)
	}
	return fmt.Sprintf("Checking: %s", path)
}

// SyntaxError renders a located syntax error.
func (m *Messages) SyntaxError(line, col int, msg string) string {
	if m.ja() {
		return fmt.Sprintf("構文エラー (%d行目, %d列目): %s", line, col, msg)
	}
	return fmt.Sprintf("Syntax error (line %d, col %d): %s", line, col, msg)
}

// FileOK renders the per-file success line.
func (m *Messages) FileOK(path string) string {
	if m.ja() {
		return fmt.Sprintf("✓ %s - 問題なし", path)
	}
	return fmt.Sprintf("✓ %s - OK", path)
}

// FileError renders the per-file failure line.
func (m *Messages) FileError(path string, count int) string {
	if m.ja() {
		return fmt.Sprintf("✗ %s - %d件のエラー", path, count)
	}
	return fmt.Sprintf("✗ %s - %d error(s)", path, count)
}

// Summary renders the check run totals.
func (m *Messages) Summary(files, errors int) string {
	if m.ja() {
		return fmt.Sprintf("\n合計: %dファイル, %d件のエラー", files, errors)
	}
	return fmt.Sprintf("\nTotal: %d file(s), %d error(s)", files, errors)
}

// WouldFix renders the dry-run fix line.
func (m *Messages) WouldFix(path string) string {
	if m.ja() {
		return fmt.Sprintf("修正予定: %s", path)
	}
	return fmt.Sprintf("Would fix: %s", path)
}

// Fixed renders the applied fix line.
func (m *Messages) Fixed(path string) string {
	if m.ja() {
		return fmt.Sprintf("修正完了: %s", path)
	}
	return fmt.Sprintf("Fixed: %s", path)
}

// KeywordCase renders the keyword-case lint message.
func (m *Messages) KeywordCase(found, expected string) string {
	if m.ja() {
		return fmt.Sprintf("キーワード '%s' は '%s' であるべきです", found, expected)
	}
	return fmt.Sprintf("Keyword '%s' should be '%s'", found, expected)
}

// NoSelectStar renders the no-select-star lint message.
func (m *Messages) NoSelectStar() string {
	if m.ja() {
		return "SELECT * の使用は推奨されません。カラムを明示的に指定してください"
	}
	return "Avoid SELECT *. Specify columns explicitly"
}

// RequireTableAlias renders the require-table-alias lint message.
func (m *Messages) RequireTableAlias(table string) string {
	if m.ja() {
		return fmt.Sprintf("テーブル '%s' にはエイリアスを指定してください", table)
	}
	return fmt.Sprintf("Table '%s' should have an alias", table)
}

// TrailingSemicolon renders the trailing-semicolon lint message.
func (m *Messages) TrailingSemicolon() string {
	if m.ja() {
		return "文末にセミコロンがありません"
	}
	return "Missing trailing semicolon"
}

// LintWarning renders one lint finding line.
func (m *Messages) LintWarning(rule string, line, col int, msg string) string {
	if m.ja() {
		return fmt.Sprintf("  [%s] %d行目:%d列目 - %s", rule, line, col, msg)
	}
	return fmt.Sprintf("  [%s] line %d:%d - %s", rule, line, col, msg)
}

// LintSummary renders the lint run totals.
func (m *Messages) LintSummary(files, warnings int) string {
	if m.ja() {
		return fmt.Sprintf("\n合計: %dファイル, %d件の警告", files, warnings)
	}
	return fmt.Sprintf("\nTotal: %d file(s), %d warning(s)", files, warnings)
}

// HintTrailingComma renders the trailing-comma hint.
func (m *Messages) HintTrailingComma(line int) string {
	if m.ja() {
		return fmt.Sprintf("%d行目の末尾に余計なカンマがある可能性があります", line)
	}
	return fmt.Sprintf("Line %d may have a trailing comma that should be removed", line)
}

// HintCheckParentheses renders the mismatched-parenthesis hint.
func (m *Messages) HintCheckParentheses() string {
	if m.ja() {
		return "括弧の対応を確認してください"
	}
	return "Check for mismatched parentheses"
}

// HintMissingParentheses renders the missing-parenthesis hint.
func (m *Messages) HintMissingParentheses() string {
	if m.ja() {
		return "関数呼び出しに括弧が必要かもしれません"
	}
	return "Function call may require parentheses"
}

// HintUnclosedParentheses renders the unclosed-parenthesis hint.
func (m *Messages) HintUnclosedParentheses(count int) string {
	if m.ja() {
		return fmt.Sprintf("閉じ括弧が%d個不足しています", count)
	}
	return fmt.Sprintf("%d unclosed parenthesis(es) found", count)
}

// HintUnclosedQuote renders the unclosed-quote hint.
func (m *Messages) HintUnclosedQuote() string {
	if m.ja() {
		return "閉じられていない引用符があります"
	}
	return "Unclosed quote found"
}
