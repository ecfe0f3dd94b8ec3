// Package fixer normalizes keyword case and the trailing terminator of
// SQL text while preserving all other formatting byte for byte.
package fixer

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/source"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Replacement is a single text edit at a byte offset.
type Replacement struct {
	Offset int
	Length int
	Text   string
}

// Options selects what the fixer normalizes.
type Options struct {
	// KeywordCase is the case style keywords are rewritten to.
	// KeywordCaseIgnore skips the case pass.
	KeywordCase lint.KeywordCase
}

// Result is the outcome of a fix pass.
type Result struct {
	// Text is the fixed content.
	Text string

	// Changed reports whether Text differs from the input.
	Changed bool

	// CasedKeywords counts the keyword-case replacements applied.
	CasedKeywords int
}

// Fix rewrites doc's text. Keywords are re-cased from their exact token
// spans; replacements apply in descending byte-offset order so earlier
// offsets stay valid. When tokenization fails the case pass is skipped
// but terminator normalization still runs. Non-empty output always ends
// with ";\n".
func Fix(doc *source.Document, fe frontend.Frontend, opts Options) Result {
	text := doc.Text()

	var reps []Replacement
	if opts.KeywordCase == lint.KeywordCaseUpper || opts.KeywordCase == lint.KeywordCaseLower {
		if tokens, err := fe.Tokenize(text); err == nil {
			reps = keywordReplacements(doc, fe, tokens, opts.KeywordCase)
		}
	}

	fixed := applyReplacements(text, reps)
	fixed = normalizeTerminator(fixed)

	return Result{
		Text:          fixed,
		Changed:       fixed != text,
		CasedKeywords: len(reps),
	}
}

// keywordReplacements computes one edit per mis-cased reserved word.
// Quoted identifiers and string literals are never touched.
func keywordReplacements(doc *source.Document, fe frontend.Frontend, tokens []token.Token, kc lint.KeywordCase) []Replacement {
	d, err := dialect.Get(fe.Name())
	if err != nil {
		return nil
	}

	var reps []Replacement
	for _, tok := range tokens {
		if tok.Quoted {
			continue
		}
		if tok.Type != token.IDENT && !token.IsKeyword(tok.Type) {
			continue
		}
		word := tok.Literal
		if !d.IsReservedWord(word) {
			continue
		}

		cased := strings.ToUpper(word)
		if kc == lint.KeywordCaseLower {
			cased = strings.ToLower(word)
		}
		if cased == word {
			continue
		}

		reps = append(reps, Replacement{
			Offset: doc.ByteOffset(tok.Pos),
			Length: len(word),
			Text:   cased,
		})
	}
	return reps
}

// applyReplacements splices edits into text from the highest offset down.
func applyReplacements(text string, reps []Replacement) string {
	sorted := make([]Replacement, len(reps))
	copy(sorted, reps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset > sorted[j].Offset
	})

	for _, r := range sorted {
		end := r.Offset + r.Length
		if r.Offset < 0 || end > len(text) {
			continue
		}
		text = text[:r.Offset] + r.Text + text[end:]
	}
	return text
}

// normalizeTerminator trims trailing whitespace and guarantees the text
// ends with ";\n". Empty input stays empty.
func normalizeTerminator(text string) string {
	trimmed := strings.TrimRight(text, " \t\r\n")
	if trimmed == "" {
		return ""
	}
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}
	return trimmed + "\n"
}
