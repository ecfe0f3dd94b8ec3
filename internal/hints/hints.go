// Package hints infers likely root causes from raw parser error text
// plus the surrounding source.
//
// The rules form an ordered decision list; at most one hint is produced
// per error, and earlier rules win when message patterns overlap.
package hints

import (
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/source"
)

// Hint is a heuristic diagnosis for one syntax error.
type Hint struct {
	// Text is the localized hint message.
	Text string

	// SuspectLine is the 1-based line the hint points at; 0 when the
	// hint has no specific line.
	SuspectLine int

	// SuspectPattern is the literal the heuristic keyed on ("," / "(" / "'").
	SuspectPattern string
}

// Catalog supplies the localized hint messages. Implemented by the i18n
// message catalog.
type Catalog interface {
	HintTrailingComma(line int) string
	HintCheckParentheses() string
	HintMissingParentheses() string
	HintUnclosedParentheses(count int) string
	HintUnclosedQuote() string
}

// clauseKeywords are the words that typically start a new clause. The
// trailing-comma heuristic scans for lines beginning with one of them.
var clauseKeywords = []string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER",
	"FULL", "CROSS", "ON", "AND", "OR", "ORDER", "GROUP", "HAVING", "LIMIT",
	"OFFSET", "UNION", "INSERT", "UPDATE", "DELETE", "SET", "VALUES", "INTO",
}

// Analyze inspects a rendered parser error and the document it came from.
// errorLine is the 1-based line the error was reported at. Returns nil
// when no heuristic applies; that is the common case and not an error.
func Analyze(errMsg string, doc *source.Document, errorLine int, msgs Catalog) *Hint {
	// Marker matching is case-insensitive so renderings like
	// "Expected: =, found: active" trigger the same rules.
	lower := strings.ToLower(errMsg)

	// Rule 1: expected/found pair, likely a trailing comma dangling
	// before the next clause.
	if strings.Contains(lower, "expected") && strings.Contains(lower, "found") {
		if h := trailingCommaHint(doc, errorLine, msgs); h != nil {
			return h
		}
	}

	// Rule 2: missing closing parenthesis expected.
	if strings.Contains(lower, "expected )") {
		return &Hint{Text: msgs.HintCheckParentheses()}
	}

	// Rule 3: opening parenthesis expected, likely a call without parens.
	if strings.Contains(lower, "expected (") {
		return &Hint{Text: msgs.HintMissingParentheses()}
	}

	// Rule 4: unexpected end of input.
	if strings.Contains(errMsg, "EOF") || strings.Contains(lower, "end of") {
		text := doc.Text()

		opens := strings.Count(text, "(")
		closes := strings.Count(text, ")")
		if opens > closes {
			return &Hint{
				Text:           msgs.HintUnclosedParentheses(opens - closes),
				SuspectPattern: "(",
			}
		}

		if strings.Count(text, "'")%2 != 0 {
			return &Hint{
				Text:           msgs.HintUnclosedQuote(),
				SuspectPattern: "'",
			}
		}
	}

	return nil
}

// trailingCommaHint scans backward from the error line for the nearest
// clause-keyword line and checks whether the line before it ends with a
// comma. Falls back to the line right before the error line.
func trailingCommaHint(doc *source.Document, errorLine int, msgs Catalog) *Hint {
	if errorLine <= 1 || errorLine > doc.LineCount() {
		return nil
	}

	// Nearest clause-keyword line at or before the error line.
	keywordLine := 0
	for line := errorLine; line >= 1; line-- {
		content := strings.ToUpper(strings.TrimSpace(doc.Line(line)))
		for _, kw := range clauseKeywords {
			if strings.HasPrefix(content, kw) {
				keywordLine = line
				break
			}
		}
		if keywordLine != 0 {
			break
		}
	}

	if keywordLine > 1 {
		prev := strings.TrimSpace(doc.Line(keywordLine - 1))
		if strings.HasSuffix(prev, ",") {
			return &Hint{
				Text:           msgs.HintTrailingComma(keywordLine - 1),
				SuspectLine:    keywordLine - 1,
				SuspectPattern: ",",
			}
		}
	}

	// Error may sit on the keyword line itself; check its predecessor.
	prev := strings.TrimSpace(doc.Line(errorLine - 1))
	if strings.HasSuffix(prev, ",") {
		return &Hint{
			Text:           msgs.HintTrailingComma(errorLine - 1),
			SuspectLine:    errorLine - 1,
			SuspectPattern: ",",
		}
	}

	return nil
}
