// Package commands implements the sqlex subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlex/internal/cli/config"
	"github.com/leapstack-labs/sqlex/internal/cli/output"
	"github.com/leapstack-labs/sqlex/internal/i18n"
)

type configKey struct{}
type rendererKey struct{}
type messagesKey struct{}
type loggerKey struct{}

// RunContext carries the per-invocation state resolved by the root
// command before any subcommand runs.
type RunContext struct {
	Config   *config.Config
	Renderer *output.Renderer
	Messages *i18n.Messages
}

// WithRunContext stores the resolved run state on a context.
func WithRunContext(ctx context.Context, rc *RunContext, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, rc.Config)
	ctx = context.WithValue(ctx, rendererKey{}, rc.Renderer)
	ctx = context.WithValue(ctx, messagesKey{}, rc.Messages)
	ctx = context.WithValue(ctx, loggerKey{}, logger)
	return ctx
}

func runContext(cmd *cobra.Command) *RunContext {
	ctx := cmd.Context()
	return &RunContext{
		Config:   ctx.Value(configKey{}).(*config.Config),
		Renderer: ctx.Value(rendererKey{}).(*output.Renderer),
		Messages: ctx.Value(messagesKey{}).(*i18n.Messages),
	}
}

// GetLogger returns the logger stored on the context, or a discarding
// logger when none is set.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

// ExitError signals a non-zero exit code without an error message.
// Check and lint use it when they find problems they already reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
