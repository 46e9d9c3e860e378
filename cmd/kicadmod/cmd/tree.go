package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/kicadmod/pkg/kicad/modsexp"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <footprint_file>",
	Short: "Dump the parsed S-expression tree",
	Long:  `Parses a .kicad_mod file and prints the node tree, one list per line.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	root, err := modsexp.Parse(data)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", filename, err)
	}

	fmt.Println(root)
	return nil
}
