// Command investigate-sexp cross-checks the in-tree footprint parser against
// the github.com/chewxy/sexp parser on the same file. Useful when a footprint
// fails to import and the question is whether the file or the parser is at
// fault.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/kicadmod/pkg/kicad/modsexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: investigate-sexp <footprint_file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	data, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	fmt.Printf("File size: %d bytes\n", len(data))

	fmt.Println("\nAttempt 1: in-tree modsexp.Parse...")
	root, err := modsexp.Parse(data)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		nodes, atoms := countTree(root)
		fmt.Printf("  Success! Root node %q\n", root.Name())
		fmt.Printf("  Nodes: %d, atoms: %d\n", nodes, atoms)
		fmt.Printf("  Pad nodes: %d\n", len(root.FindAllNodes("pad")))
	}

	fmt.Println("\nAttempt 2: chewxy sexp.Parse...")
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}
	fmt.Printf("  Success! Parsed %d s-expression(s)\n", len(sexps))
	if len(sexps) > 0 {
		fmt.Printf("  First sexp is leaf: %v\n", sexps[0].IsLeaf())
		if !sexps[0].IsLeaf() {
			fmt.Printf("  Leaf count: %d\n", sexps[0].LeafCount())
		}
	}
}

// countTree returns the number of nodes and atoms in the tree. The node
// names themselves are not counted as atoms.
func countTree(n *modsexp.Node) (nodes, atoms int) {
	nodes = 1
	atoms = len(n.Items)
	for _, child := range n.Children {
		cn, ca := countTree(child)
		nodes += cn
		atoms += ca
	}
	return nodes, atoms
}
