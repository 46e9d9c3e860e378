// Package footprint extracts surface-mount, top-copper pad geometry from
// KiCad footprint files (.kicad_mod).
package footprint

// Pad mount types as they appear in footprint files.
const (
	MountSMD      = "smd"
	MountThruHole = "thru_hole"
)

// Pad shape keywords. Trapezoid and custom shapes are recognized but not
// importable; pads carrying them are skipped.
const (
	ShapeRect      = "rect"
	ShapeCircle    = "circle"
	ShapeOval      = "oval"
	ShapeRoundRect = "roundrect"
	ShapeTrapezoid = "trapezoid"
	ShapeCustom    = "custom"
)

// Pad is one extracted pad. Coordinates and sizes are taken verbatim from
// the file (millimeters in current KiCad files); Rotation is in degrees.
type Pad struct {
	Name      string
	MountType string
	Shape     string
	X         float64
	Y         float64
	Rotation  float64
	Width     float64
	Height    float64

	// Roundness is not on a uniform scale, a quirk inherited from the
	// importer this package replaces: rect is 0 and circle/oval are 100
	// (a 0-100 percent scale), but roundrect carries the file's raw
	// roundrect_rratio, typically a 0..1 fraction. Values are passed
	// through unrescaled.
	Roundness float64
}
