package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kicadmod",
	Short: "KiCad footprint pad importer",
	Long: `kicadmod reads KiCad footprint files (.kicad_mod) and extracts their
surface-mount, top-copper pad geometry.

Examples:
  kicadmod pads R_0603.kicad_mod      # List importable pads
  kicadmod tree R_0603.kicad_mod      # Dump the parsed S-expression tree`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
