// Package checker drives the per-file pipelines behind the check, fix
// and lint commands. It reads files, runs the front end and collects
// structured results for the command layer to render.
package checker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/leapstack-labs/sqlex/internal/fixer"
	"github.com/leapstack-labs/sqlex/internal/hints"
	"github.com/leapstack-labs/sqlex/internal/i18n"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
	"github.com/leapstack-labs/sqlex/pkg/parser"
	"github.com/leapstack-labs/sqlex/pkg/source"
)

// Checker binds a front end and a message catalog for one run.
type Checker struct {
	Frontend frontend.Frontend
	Messages *i18n.Messages
}

// SyntaxError is one located syntax error with its optional hint.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
	Hint    *hints.Hint
}

// FileReport is the check outcome for a single file.
type FileReport struct {
	Path   string
	Doc    *source.Document
	Errors []SyntaxError
}

// CheckResult aggregates a check run.
type CheckResult struct {
	Files       []FileReport
	TotalErrors int
}

// Check parses every file and collects located syntax errors. A file
// that cannot be read aborts the whole run.
func (c *Checker) Check(paths []string) (*CheckResult, error) {
	res := &CheckResult{}
	for _, path := range paths {
		doc, err := c.load(path)
		if err != nil {
			return nil, err
		}

		report := FileReport{Path: path, Doc: doc}
		if _, err := c.Frontend.Parse(doc.Text()); err != nil {
			report.Errors = append(report.Errors, c.locate(doc, err))
		}

		res.TotalErrors += len(report.Errors)
		res.Files = append(res.Files, report)
	}
	return res, nil
}

// FixOutcome is the fix outcome for a single file.
type FixOutcome struct {
	Path          string
	Doc           *source.Document
	Fixed         string
	Changed       bool
	CasedKeywords int
}

// FixResult aggregates a fix run.
type FixResult struct {
	Files   []FixOutcome
	Changed int
}

// Fix normalizes every file and, unless dryRun is set, writes changed
// files back in place with their original permissions.
func (c *Checker) Fix(paths []string, opts fixer.Options, dryRun bool) (*FixResult, error) {
	res := &FixResult{}
	for _, path := range paths {
		doc, err := c.load(path)
		if err != nil {
			return nil, err
		}

		fixed := fixer.Fix(doc, c.Frontend, opts)
		outcome := FixOutcome{
			Path:          path,
			Doc:           doc,
			Fixed:         fixed.Text,
			Changed:       fixed.Changed,
			CasedKeywords: fixed.CasedKeywords,
		}

		if fixed.Changed {
			res.Changed++
			if !dryRun {
				if err := writeInPlace(path, fixed.Text); err != nil {
					return nil, err
				}
			}
		}
		res.Files = append(res.Files, outcome)
	}
	return res, nil
}

// LintReport is the lint outcome for a single file.
type LintReport struct {
	Path        string
	Doc         *source.Document
	Diagnostics []lint.Diagnostic
}

// LintResult aggregates a lint run.
type LintResult struct {
	Files         []LintReport
	TotalFindings int
}

// Lint evaluates the rule set against every file.
func (c *Checker) Lint(paths []string, cfg *lint.Config) (*LintResult, error) {
	res := &LintResult{}
	for _, path := range paths {
		doc, err := c.load(path)
		if err != nil {
			return nil, err
		}

		diags := lint.Run(doc, c.Frontend, cfg, c.Messages)
		res.TotalFindings += len(diags)
		res.Files = append(res.Files, LintReport{Path: path, Doc: doc, Diagnostics: diags})
	}
	return res, nil
}

func (c *Checker) load(path string) (*source.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return source.New(path, string(data)), nil
}

// locate turns a parse error into a located SyntaxError. Structured
// parser errors carry their position directly; anything else is
// scanned for a "Line: N, Column: N" pair.
func (c *Checker) locate(doc *source.Document, err error) SyntaxError {
	full := err.Error()
	line, col := ParseErrorLocation(full)
	msg := full

	var perr *parser.Error
	if errors.As(err, &perr) {
		line, col = perr.Pos.Line, perr.Pos.Column
		msg = perr.Message
	}

	return SyntaxError{
		Line:    line,
		Column:  col,
		Message: msg,
		Hint:    hints.Analyze(full, doc, line, c.Messages),
	}
}

func writeInPlace(path, text string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
