package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
	"github.com/nao1215/weaponstats/internal/model"
	"github.com/nao1215/weaponstats/internal/pipeline"
	"github.com/nao1215/weaponstats/internal/stats"
)

// NewTopCmd creates the top command.
func NewTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [file]",
		Short: "Rank weapons by one numeric column",
		Long: `Top prints the N weapons with the highest value in one numeric column.

Columns: ` + metricNames() + `

Examples:
  # Strongest magic attack
  weaponstats top --by Mag_Attack

  # Highest combined attack across all five damage types
  weaponstats top --by Total_Attack

  # Best physical guard, 10 entries
  weaponstats top --by Phy_Guard -n 10

  # Highest critical multiplier as Markdown
  weaponstats top --by Cri -m`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTopCmd,
	}

	cmd.Flags().StringP("by", "b", stats.MetricPhyAttack.String(),
		"Column to rank by")
	addInputFlags(cmd)
	addQueryFlags(cmd)
	addFormatFlags(cmd)

	return cmd
}

// metricNames lists the rankable columns.
func metricNames() string {
	metrics := stats.Metrics()
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

// runTopCmd executes the top command.
func runTopCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	by, err := cmd.Flags().GetString("by")
	if err != nil {
		return err
	}
	metric, err := stats.ParseMetric(by)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()

	ranking, err := runTop(ctx, cfg, metric, cmd.InOrStdin(), logger)
	if err != nil {
		return reportFailure(out, err)
	}

	if _, err := newWriter(cfg, out).WriteRanking(ranking); err != nil {
		return reportFailure(out, err)
	}

	return nil
}

// runTop loads the data file and ranks it by metric.
func runTop(ctx context.Context, cfg *config.Config, metric stats.Metric, stdin io.Reader, logger *slog.Logger) (model.Ranking, error) {
	engine, err := stats.New(cfg.Engine)
	if err != nil {
		return model.Ranking{}, err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Warn("failed to close engine", "engine", engine.Name(), "error", err)
		}
	}()

	state := pipeline.NewState(cfg.DataFile, cfg.Limit)
	p := pipeline.LoadPipeline(engine,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipelineOptions(cfg, stdin, logger)...,
	)
	p.AddStep(pipeline.NewRankStep(engine, metric))

	if err := p.Execute(ctx, state); err != nil {
		return model.Ranking{}, err
	}

	return state.Rankings[0], nil
}
