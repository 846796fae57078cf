package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
	applog "github.com/nao1215/weaponstats/internal/log"
	"github.com/nao1215/weaponstats/internal/pipeline"
	"github.com/nao1215/weaponstats/internal/report"
)

// addInputFlags registers the flags that control how the data file is read.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("delimiter", "d", string(config.DefaultDelimiter),
		`Field delimiter of the data file (use \t for tab)`)
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .weaponstats in current or home directory)")
}

// addQueryFlags registers the flags of commands that run top-N queries.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", config.DefaultLimit,
		"Number of entries in each top-N section")
	cmd.Flags().StringP("engine", "e", config.DefaultEngine,
		"Query engine: memory or sqlite (in-memory database)")
}

// addFormatFlags registers the report format flags.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and the
// command flags, in that order of precedence (flags win).
// Only flags the user actually set override the config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if flags.Lookup("config") != nil {
		cfg.ConfigFilePath, err = flags.GetString("config")
		if err != nil {
			return nil, err
		}
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(file); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if flags.Changed("delimiter") {
		raw, err := flags.GetString("delimiter")
		if err != nil {
			return nil, err
		}
		if cfg.Delimiter, err = config.ParseDelimiter(raw); err != nil {
			return nil, err
		}
	}

	if flags.Changed("limit") {
		if cfg.Limit, err = flags.GetInt("limit"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("engine") {
		if cfg.Engine, err = flags.GetString("engine"); err != nil {
			return nil, err
		}
	}

	// A format flag replaces the format chosen in the config file.
	if flags.Changed("json") || flags.Changed("markdown") {
		cfg.JSONReport, cfg.MarkdownReport = false, false
		if flags.Changed("json") {
			if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
				return nil, err
			}
		}
		if flags.Changed("markdown") {
			if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
				return nil, err
			}
		}
	}

	if len(args) > 0 {
		cfg.DataFile = args[0]
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if f := flags.Lookup("log-format"); f != nil && f.Changed {
		cfg.LogFormat = f.Value.String()
	}

	return cfg, nil
}

// setupLogger creates a structured logger writing to w in the configured encoding.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return applog.NewJSONLogger(w, cfg.Verbose)
	}
	return applog.NewLogger(w, cfg.Verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// pipelineOptions converts the config into default pipeline options.
// stdin backs the "-" data path.
func pipelineOptions(cfg *config.Config, stdin io.Reader, logger *slog.Logger) []pipeline.DefaultPipelineOption {
	return []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineDelimiter(cfg.Delimiter),
		pipeline.WithPipelineStdin(stdin),
		pipeline.WithPipelineLogger(logger),
	}
}

// newWriter returns the report writer selected by the config.
func newWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch cfg.Format() {
	case config.FormatJSON:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w)
	}
}
