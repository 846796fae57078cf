package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
)

//go:embed templates/weaponstats.yaml
var configTemplate embed.FS

// errGlobalWithOutput is returned when --global and --output are combined.
var errGlobalWithOutput = errors.New("--global and --output cannot be used together")

// presetKeys are the config keys init can fill in, in template order.
var presetKeys = []string{"data", "delimiter", "limit", "engine", "format", "log_format"}

// presetFlag returns the init flag that presets key.
func presetFlag(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .weaponstats file with the analysis defaults",
		Long: `Init writes a weaponstats configuration file. Every option is listed with
its default commented out; options given on the command line are written
uncommented so later runs pick them up without flags.

By default the file is .weaponstats in the current directory. With --global
it is ` + config.GlobalConfigFile() + `,
which is read when no .weaponstats exists in the current or home directory.

Examples:
  # Defaults only, every option commented out
  weaponstats init

  # Analyze a tab-separated export with the SQLite engine from now on
  weaponstats init --data weapons.tsv --delimiter '\t' --engine sqlite

  # Show the top 10 as Markdown for every project on this machine
  weaponstats init --global --limit 10 --format markdown

  # Replace an existing file
  weaponstats init -f --limit 3`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Path of the file to write")
	cmd.Flags().BoolP("global", "g", false,
		"Write config.yaml in the XDG config directory instead")
	cmd.Flags().BoolP("force", "f", false,
		"Replace an existing file")

	cmd.Flags().String("data", "", "Preset the data file path")
	cmd.Flags().String("delimiter", "", `Preset the field delimiter (use \t for tab)`)
	cmd.Flags().Int("limit", 0, "Preset the number of entries in each top-N section")
	cmd.Flags().String("engine", "", "Preset the query engine: memory or sqlite")
	cmd.Flags().String("format", "", "Preset the report format: text, json or markdown")
	// Shadows the root --log-format: init writes the value instead of using it.
	cmd.Flags().String("log-format", "", "Preset the log encoding: text or json")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := initOutputPath(cmd)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	presets, err := initPresets(cmd)
	if err != nil {
		return err
	}

	content, err := renderConfig(presets)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	for _, key := range presetKeys {
		if v, ok := presets[key]; ok {
			fmt.Fprintf(out, "  %s: %s\n", key, v)
		}
	}
	fmt.Fprintln(out, "Command line flags still override these values.")

	return nil
}

// initOutputPath resolves where init writes the file.
func initOutputPath(cmd *cobra.Command) (string, error) {
	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return "", err
	}
	if global {
		if cmd.Flags().Changed("output") {
			return "", errGlobalWithOutput
		}
		return config.GlobalConfigFile(), nil
	}
	return cmd.Flags().GetString("output")
}

// initPresets collects the preset flags the user set and checks them with
// the same rules the analysis commands apply. Values are YAML scalars.
func initPresets(cmd *cobra.Command) (map[string]string, error) {
	flags := cmd.Flags()
	presets := map[string]string{}
	file := &config.File{}

	for _, key := range presetKeys {
		name := presetFlag(key)
		if !flags.Changed(name) {
			continue
		}
		raw := flags.Lookup(name).Value.String()
		presets[key] = strconv.Quote(raw)

		switch key {
		case "data":
			file.Data = raw
		case "delimiter":
			file.Delimiter = raw
			// Single quotes keep `\t` literal for ParseDelimiter.
			presets[key] = "'" + strings.ReplaceAll(raw, "'", "''") + "'"
		case "limit":
			limit, err := flags.GetInt(name)
			if err != nil {
				return nil, err
			}
			if limit <= 0 {
				return nil, fmt.Errorf("configuration error: %w", config.ErrInvalidLimit)
			}
			file.Limit = limit
			presets[key] = raw
		case "engine":
			file.Engine = raw
		case "format":
			file.Format = raw
		case "log_format":
			file.LogFormat = raw
		}
	}

	cfg := config.NewConfig()
	if err := cfg.Apply(file); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return presets, nil
}

// renderConfig returns the embedded template with the commented-out line
// of every preset key replaced by its value.
func renderConfig(presets map[string]string) ([]byte, error) {
	content, err := configTemplate.ReadFile("templates/weaponstats.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config template: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		for key, value := range presets {
			if strings.HasPrefix(line, "# "+key+":") {
				lines[i] = key + ": " + value
			}
		}
	}
	return []byte(strings.Join(lines, "\n")), nil
}
