package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/amp-labs/amp-sorted/cli"
	"github.com/amp-labs/amp-sorted/logger"
	"github.com/amp-labs/amp-sorted/telemetry"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newRootCommand() *cobra.Command {
	flags := &flagValues{}

	cmd := &cobra.Command{
		Use:   "sortedmerge [flags] [input...]",
		Short: "Merge line files into one sorted stream",
		Long: `sortedmerge reads line files, plain or compressed with gzip (.gz),
zstd (.zst), brotli (.br), lz4 (.lz4) or snappy (.sz), and writes their lines
as one sorted stream. Inputs may be local paths or http(s) URLs. Inputs that
are already sorted are merged as they are; the rest are sorted in parallel
first. With no inputs, or with "-", stdin is read.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			return runMerge(cmd, cfg, args)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func runMerge(cmd *cobra.Command, cfg Config, args []string) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logOpts := logger.Options{
		Subsystem: "sortedmerge",
		JSON:      cfg.Log.JSON,
		MinLevel:  level,
		Output:    cmd.ErrOrStderr(),
	}

	logger.ConfigureLoggingWithOptions(logOpts)

	ctx := logger.With(cmd.Context(), "run", uuid.NewString())

	tracing, err := cfg.Tracing.ApplyEnv()
	if err != nil {
		return err
	}

	if err := telemetry.Initialize(ctx, tracing); err != nil {
		return err
	}

	if exported := telemetry.LogHandler(); exported != nil {
		logOpts.Tee = exported
		logger.ConfigureLoggingWithOptions(logOpts)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if shutdownErr := telemetry.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Get(ctx).Warn("flushing traces failed", "error", shutdownErr)
		}
	}()

	m, err := newMerger(cfg)
	if err != nil {
		return err
	}

	m.stdin = cmd.InOrStdin()
	m.stdout = cmd.OutOrStdout()
	m.confirm = func(label string) (bool, error) {
		return cli.PromptConfirm(label, io.NopCloser(cmd.InOrStdin()), nopWriteCloser{cmd.ErrOrStderr()})
	}

	result, err := m.run(ctx, args)
	if err != nil {
		return err
	}

	if cfg.Summary {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), cli.Banner(result.String(), cli.DefaultWidth, cli.AlignLeft))
	} else if result.Checksum != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s  %s\n", result.Checksum, cfg.Output)
	}

	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
