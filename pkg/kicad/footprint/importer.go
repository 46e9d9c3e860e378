package footprint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/kicadmod/pkg/kicad/modsexp"
)

// Importer reads a footprint file and produces the pads worth placing:
// surface-mount pads on top copper with an importable shape. An Importer is
// not safe for concurrent use; each Import call owns its parse tree for the
// duration of the call.
type Importer struct {
	log *slog.Logger
}

// NewImporter creates an Importer. A nil logger falls back to slog.Default.
func NewImporter(log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{log: log}
}

// Import reads a footprint from r with a default Importer.
func Import(r io.Reader) ([]Pad, error) {
	return NewImporter(nil).Import(r)
}

// ImportFile reads a footprint from filename with a default Importer.
func ImportFile(filename string) ([]Pad, error) {
	return NewImporter(nil).ImportFile(filename)
}

// ImportFile opens filename and imports its pads.
func (imp *Importer) ImportFile(filename string) ([]Pad, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open footprint file: %w", err)
	}
	defer file.Close()

	return imp.Import(file)
}

// Import parses one footprint and extracts its pads, in file order. A file
// with no "pad" nodes at all is ErrNoPads; a file whose pads are all
// filtered or skipped imports successfully with an empty result.
func (imp *Importer) Import(r io.Reader) ([]Pad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read footprint file: %w", err)
	}

	root, err := modsexp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint: %w", err)
	}

	padNodes := root.FindAllNodes("pad")
	if len(padNodes) == 0 {
		return nil, fmt.Errorf("%w (root node %q)", ErrNoPads, root.Name())
	}

	var pads []Pad
	skipped := 0
	for _, node := range padNodes {
		src := padNode{node}

		if src.mountType() != MountSMD || !src.onTopCopper() {
			continue
		}

		pad, err := src.extract()
		if err != nil {
			if errors.Is(err, errUnsupportedShape) {
				imp.log.Warn("skipping pad", "pad", src.name(), "shape", src.shape())
				skipped++
				continue
			}
			return nil, err
		}
		pads = append(pads, pad)
	}

	imp.log.Debug("footprint imported",
		"root", root.Name(), "pads", len(pads), "skipped", skipped, "total", len(padNodes))

	return pads, nil
}

// padNode wraps a parsed "pad" node. Items are [name, mount_type, shape,
// ...]; geometry lives in the "at", "size", "layers" and "roundrect_rratio"
// sub-nodes. All lookups are lenient: footprint files vary across KiCad
// versions and an absent field reads as zero, never an error.
type padNode struct {
	node *modsexp.Node
}

func (p padNode) name() string {
	s, _ := p.node.Item(0)
	return s
}

func (p padNode) mountType() string {
	s, _ := p.node.Item(1)
	return s
}

func (p padNode) shape() string {
	s, _ := p.node.Item(2)
	return s
}

// floatField reads item index of the sub-node tagged tag. Missing sub-node
// or missing item is 0; a value that is present but not a number is an
// error and aborts the import.
func (p padNode) floatField(tag string, index int) (float64, error) {
	sub, ok := p.node.FindNode(tag)
	if !ok {
		return 0, nil
	}

	s, ok := sub.Item(index)
	if !ok {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("pad %q: bad %s value %q: %w", p.name(), tag, s, err)
	}
	return v, nil
}

// onTopCopper reports whether the pad's layers place it on top copper:
// an exact "F.Cu" or any layer containing "*.Cu". The substring check is
// intentionally loose, not a glob match; KiCad writes wildcard layer sets
// like "*.Cu" for through pads and tightening this would change which pads
// import.
func (p padNode) onTopCopper() bool {
	layers, ok := p.node.FindNode("layers")
	if !ok {
		return false
	}
	for _, layer := range layers.Items {
		if layer == "F.Cu" || strings.Contains(layer, "*.Cu") {
			return true
		}
	}
	return false
}

// extract builds the Pad record. Position, size and rotation default to zero
// when absent; the shape decides Roundness (see Pad.Roundness for the unit
// quirk).
func (p padNode) extract() (Pad, error) {
	pad := Pad{
		Name:      p.name(),
		MountType: p.mountType(),
		Shape:     p.shape(),
	}

	var err error
	if pad.X, err = p.floatField("at", 0); err != nil {
		return Pad{}, err
	}
	if pad.Y, err = p.floatField("at", 1); err != nil {
		return Pad{}, err
	}
	if pad.Rotation, err = p.floatField("at", 2); err != nil {
		return Pad{}, err
	}
	if pad.Width, err = p.floatField("size", 0); err != nil {
		return Pad{}, err
	}
	if pad.Height, err = p.floatField("size", 1); err != nil {
		return Pad{}, err
	}

	if pad.Roundness, err = p.roundness(); err != nil {
		return Pad{}, err
	}
	return pad, nil
}
