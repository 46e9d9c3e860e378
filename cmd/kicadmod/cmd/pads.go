package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/kicadmod/pkg/kicad/footprint"
	"github.com/spf13/cobra"
)

var padsCmd = &cobra.Command{
	Use:   "pads <footprint_file>",
	Short: "List importable pads in a footprint file",
	Long: `Parses a .kicad_mod file and lists its surface-mount, top-copper pads.

Through-hole pads, pads off the top copper layer, and pads with trapezoid or
custom shapes are not listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPads,
}

func init() {
	rootCmd.AddCommand(padsCmd)
}

func runPads(cmd *cobra.Command, args []string) error {
	filename := args[0]

	pads, err := footprint.ImportFile(filename)
	if err != nil {
		return fmt.Errorf("error importing footprint: %w", err)
	}

	fmt.Printf("✓ Imported %d pad(s) from %s\n\n", len(pads), filename)
	fmt.Printf("%-8s %-10s %10s %10s %10s %10s %10s %10s\n",
		"NAME", "SHAPE", "X", "Y", "ROT", "WIDTH", "HEIGHT", "ROUND")
	for _, pad := range pads {
		fmt.Printf("%-8s %-10s %10.4f %10.4f %10.1f %10.4f %10.4f %10.4f\n",
			pad.Name, pad.Shape, pad.X, pad.Y, pad.Rotation,
			pad.Width, pad.Height, pad.Roundness)
	}
	return nil
}
