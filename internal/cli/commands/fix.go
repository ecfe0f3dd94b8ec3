package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlex/internal/checker"
	"github.com/leapstack-labs/sqlex/internal/fixer"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	"github.com/leapstack-labs/sqlex/pkg/lint"
)

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix <file|dir|glob>...",
		Short: "Normalize keyword case and trailing semicolons in place",
		Long: `Rewrite SQL files so reserved words follow the configured case
style and every file ends with a semicolon. All other formatting is
preserved byte for byte.

With --dry-run nothing is written; the pending changes are shown as a
summary or a unified diff.`,
		Example: `  sqlex fix queries/
  sqlex fix --dry-run --format diff model.sql
  sqlex fix --keyword-case lower 'models/**/*.sql'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFix,
	}

	cmd.Flags().Bool("dry-run", false, "show changes without writing files")
	cmd.Flags().String("format", "summary", "dry-run output format (summary, diff)")
	cmd.Flags().String("keyword-case", "upper", "keyword case style (upper, lower, ignore)")

	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	rc := runContext(cmd)
	r, msgs, styles := rc.Renderer, rc.Messages, rc.Renderer.Styles()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	fe, err := frontend.New(rc.Config.Dialect)
	if err != nil {
		return err
	}

	files, err := checker.CollectFiles(args)
	if err != nil {
		return err
	}

	kc, err := lint.ParseKeywordCase(rc.Config.Lint.KeywordCase)
	if err != nil {
		return err
	}

	c := &checker.Checker{Frontend: fe, Messages: msgs}
	res, err := c.Fix(files, fixer.Options{KeywordCase: kc}, dryRun)
	if err != nil {
		return err
	}

	for _, f := range res.Files {
		if !f.Changed {
			if rc.Config.Verbose {
				r.Println(styles.Muted.Render(msgs.FileOK(f.Path)))
			}
			continue
		}

		if !dryRun {
			r.Println(styles.Success.Render(msgs.Fixed(f.Path)))
			continue
		}

		r.Println(styles.Warning.Render(msgs.WouldFix(f.Path)))
		switch rc.Config.Fix.Format {
		case "diff":
			if err := r.UnifiedDiff(f.Path, f.Doc.Text(), f.Fixed); err != nil {
				return err
			}
		default:
			r.SummaryDiff(f.Doc.Text(), f.Fixed)
		}
	}

	return nil
}
