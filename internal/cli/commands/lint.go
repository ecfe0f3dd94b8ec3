package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlex/internal/checker"
	"github.com/leapstack-labs/sqlex/pkg/frontend"
	_ "github.com/leapstack-labs/sqlex/pkg/lint/rules" // register rules
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <file|dir|glob>...",
		Short: "Run style rules over SQL files",
		Long: `Evaluate the lint rules against SQL files and report findings.

Token- and text-level rules run on any input; rules that inspect the
statement tree are skipped for files that fail to parse.`,
		Example: `  sqlex lint queries/
  sqlex lint --keyword-case lower --require-alias 'models/**/*.sql'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLint,
	}

	cmd.Flags().String("keyword-case", "upper", "keyword case style (upper, lower, ignore)")
	cmd.Flags().Bool("no-select-star", true, "flag SELECT * usage")
	cmd.Flags().Bool("require-alias", false, "require aliases on FROM and JOIN tables")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	rc := runContext(cmd)
	r, msgs := rc.Renderer, rc.Messages

	fe, err := frontend.New(rc.Config.Dialect)
	if err != nil {
		return err
	}

	files, err := checker.CollectFiles(args)
	if err != nil {
		return err
	}

	c := &checker.Checker{Frontend: fe, Messages: msgs}
	res, err := c.Lint(files, rc.Config.RuleConfig())
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, f := range res.Files {
		if len(f.Diagnostics) == 0 {
			if rc.Config.Verbose {
				r.Println(r.Styles().Muted.Render(msgs.FileOK(f.Path)))
			}
			continue
		}

		r.Println(f.Path)
		for _, d := range f.Diagnostics {
			r.Println(msgs.LintWarning(d.RuleID, d.Pos.Line, d.Pos.Column, d.Message))
			counts[d.RuleID]++
		}
	}

	r.Println(msgs.LintSummary(len(res.Files), res.TotalFindings))
	r.RuleSummary(counts)

	if res.TotalFindings > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
