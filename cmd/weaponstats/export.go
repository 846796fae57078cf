package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
	"github.com/nao1215/weaponstats/internal/model"
	"github.com/nao1215/weaponstats/internal/pipeline"
	"github.com/nao1215/weaponstats/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the weapon table as JSON weapon documents",
		Long: `Export converts every row of the weapon table into a JSON document with
id, name, category, weight, damage (attack values, critical and their
total), scaling, isSomber and maxUpgrade fields, and prints the array to
stdout. maxUpgrade is 10 for somber weapons and 25 for the rest.

The id is the lowercased name without spaces or punctuation, so
"Bloodhound's Fang" becomes "bloodhoundsfang".

Examples:
  # Export elden_ring_weapon.csv
  weaponstats export > weapons.json

  # Read from standard input
  weaponstats export - < weapons.csv

  # Compact output
  weaponstats export --compact data/weapons.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().Bool("compact", false, "Write compact JSON without indentation")
	addInputFlags(cmd)

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()

	docs, err := runExport(ctx, cfg, cmd.InOrStdin(), logger)
	if err != nil {
		return reportFailure(out, err)
	}

	var opts []report.JSONWriterOption
	if !compact {
		opts = append(opts, report.WithPrettyPrint())
	}
	if _, err := report.NewJSONWriter(out, opts...).WriteValue(docs); err != nil {
		return reportFailure(out, err)
	}

	return nil
}

// runExport loads the data file and converts every weapon into a document.
func runExport(ctx context.Context, cfg *config.Config, stdin io.Reader, logger *slog.Logger) ([]model.WeaponDocument, error) {
	state := pipeline.NewState(cfg.DataFile, cfg.Limit)
	p := pipeline.LoadPipeline(nil,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipelineOptions(cfg, stdin, logger)...,
	)

	if err := p.Execute(ctx, state); err != nil {
		return nil, err
	}

	docs := make([]model.WeaponDocument, len(state.Weapons))
	for i, w := range state.Weapons {
		docs[i] = model.NewWeaponDocument(w)
	}
	return docs, nil
}
