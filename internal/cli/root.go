// Package cli wires the sqlex command tree: configuration loading,
// output rendering and the check, fix and lint subcommands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlex/internal/cli/commands"
	"github.com/leapstack-labs/sqlex/internal/cli/config"
	"github.com/leapstack-labs/sqlex/internal/cli/output"
	"github.com/leapstack-labs/sqlex/internal/i18n"
	"github.com/leapstack-labs/sqlex/pkg/dialect"
)

var cfgFile string

// Version information, set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root sqlex command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sqlex",
		Short: "SQL syntax checker, fixer and linter",
		Long: `sqlex parses SQL files, reports syntax errors with source context
and heuristic hints, normalizes keyword case and trailing semicolons,
and runs configurable style rules.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Help, completion and version work without configuration.
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			msgs := i18n.NewMessages(cfg.ResolveLang())
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)

			logger := slog.New(slog.DiscardHandler)
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}
			if cfg.FileUsed != "" {
				logger.Debug("loaded config file", "path", cfg.FileUsed)
			}

			ctx := commands.WithRunContext(cmd.Context(), &commands.RunContext{
				Config:   cfg,
				Renderer: r,
				Messages: msgs,
			}, logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate("sqlex {{.Version}}\n")

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: sqlex.yaml in the working directory)")
	root.PersistentFlags().String("dialect", "generic", "SQL dialect")
	root.PersistentFlags().String("lang", "", "message language (en, ja); detected from the locale when empty")
	root.PersistentFlags().Bool("verbose", false, "enable debug output")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	_ = root.RegisterFlagCompletionFunc("dialect",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return dialect.List(), cobra.ShellCompDirectiveNoFileComp
		})
	_ = root.RegisterFlagCompletionFunc("lang",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"en", "ja"}, cobra.ShellCompDirectiveNoFileComp
		})

	root.AddCommand(
		commands.NewCheckCommand(),
		commands.NewFixCommand(),
		commands.NewLintCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			// Findings were already reported by the command.
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
