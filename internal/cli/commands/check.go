package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlex/internal/checker"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir|glob>...",
		Short: "Check SQL files for syntax errors",
		Long: `Parse SQL files and report syntax errors with source context
and, where a likely cause can be inferred, a hint.

Directories are searched recursively for .sql files. Glob patterns
including ** are supported.`,
		Example: `  sqlex check queries/
  sqlex check model.sql
  sqlex check --dialect postgres 'models/**/*.sql'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	rc := runContext(cmd)
	r, msgs, styles := rc.Renderer, rc.Messages, rc.Renderer.Styles()

	fe, err := frontend.New(rc.Config.Dialect)
	if err != nil {
		return err
	}

	files, err := checker.CollectFiles(args)
	if err != nil {
		return err
	}
	GetLogger(cmd.Context()).Debug("collected files", "count", len(files))

	c := &checker.Checker{Frontend: fe, Messages: msgs}
	res, err := c.Check(files)
	if err != nil {
		return err
	}

	for _, f := range res.Files {
		if rc.Config.Verbose {
			r.Println(styles.Muted.Render(msgs.Checking(f.Path)))
		}

		if len(f.Errors) == 0 {
			r.Println(styles.Success.Render(msgs.FileOK(f.Path)))
			continue
		}

		r.Println(styles.Error.Render(msgs.FileError(f.Path, len(f.Errors))))
		for _, se := range f.Errors {
			r.Println("  " + msgs.SyntaxError(se.Line, se.Column, se.Message))

			suspect := 0
			if se.Hint != nil {
				suspect = se.Hint.SuspectLine
			}
			r.ErrorContext(f.Doc, se.Line, se.Column, suspect)

			if se.Hint != nil {
				r.Println(styles.Info.Render("  " + se.Hint.Text))
			}
		}
	}

	r.Println(msgs.Summary(len(res.Files), res.TotalErrors))

	if res.TotalErrors > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
