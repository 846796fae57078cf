// Package main provides the entry point for the weaponstats CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/weaponstats/internal/config"
)

// NewRootCmd creates the root command for weaponstats.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weaponstats",
		Short: "Descriptive statistics for the Elden Ring weapon table",
		Long: `weaponstats reads a delimited weapon table (elden_ring_weapon.csv by default)
and prints summaries: weapon counts by type, the top weapons by physical
attack and the heaviest weapons.

The table repeats the Phy, Mag, Fir, Lit and Hol headers: the first block is
attack damage, the second is guard reduction. weaponstats renames them to
Phy_Attack ... Holy_Attack and Phy_Guard ... Holy_Guard before analysis.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.DefaultLogFormat,
		"Log encoding on stderr: text or json")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewTopCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// A failed analysis has already printed its one-line message to stdout and
// only sets the exit code. Any other error goes to stderr with exit code 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitGeneral)
	}
}
