package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
	"github.com/nao1215/weaponstats/internal/model"
	"github.com/nao1215/weaponstats/internal/pipeline"
	"github.com/nao1215/weaponstats/internal/stats"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the weapon category distribution and top-N rankings",
		Long: `Analyze loads the weapon table and prints three sections:
- Category distribution: total weapons, unique types and the most common types
- Top weapons by physical attack (Phy_Attack)
- Heaviest weapons (Wgt)

Non-numeric damage and weight cells such as "-" count as 0. Ties keep the
order of the rows in the file.

Examples:
  # Analyze elden_ring_weapon.csv in the current directory
  weaponstats analyze

  # Analyze another file and show the top 10
  weaponstats analyze -n 10 data/weapons.csv

  # Output JSON report
  weaponstats analyze --json

  # Read the table from standard input
  cat weapons.csv | weaponstats analyze -

  # Run the queries on an in-memory SQLite database
  weaponstats analyze --engine sqlite`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	addInputFlags(cmd)
	addQueryFlags(cmd)
	addFormatFlags(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()

	rep, err := runAnalyze(ctx, cfg, cmd.InOrStdin(), logger)
	if err != nil {
		return reportFailure(out, err)
	}

	if _, err := newWriter(cfg, out).Write(rep); err != nil {
		return reportFailure(out, err)
	}

	return nil
}

// runAnalyze executes the default pipeline and returns the finished report.
func runAnalyze(ctx context.Context, cfg *config.Config, stdin io.Reader, logger *slog.Logger) (*model.Report, error) {
	engine, err := stats.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Warn("failed to close engine", "engine", engine.Name(), "error", err)
		}
	}()

	logger.Info("starting analysis",
		"file", cfg.DataFile,
		"engine", engine.Name(),
		"limit", cfg.Limit,
	)

	state := pipeline.NewState(cfg.DataFile, cfg.Limit)
	p := pipeline.DefaultPipeline(engine,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipelineOptions(cfg, stdin, logger)...,
	)

	if err := p.Execute(ctx, state); err != nil {
		return nil, err
	}

	state.Report.GeneratedAt = time.Now()
	return state.Report, nil
}
