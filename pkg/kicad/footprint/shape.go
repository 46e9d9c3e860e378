package footprint

import "fmt"

// roundness maps the pad's shape keyword to its roundness value. The scale
// is shape-dependent and deliberately left as the upstream importer defined
// it: rect/circle/oval on 0-100 percent, roundrect as the file's raw
// roundrect_rratio fraction. Shapes outside this set (trapezoid, custom,
// anything unrecognized) return errUnsupportedShape so the caller can skip
// the pad and keep going.
func (p padNode) roundness() (float64, error) {
	switch shape := p.shape(); shape {
	case ShapeRect:
		return 0, nil
	case ShapeCircle, ShapeOval:
		return 100, nil
	case ShapeRoundRect:
		return p.floatField("roundrect_rratio", 0)
	default:
		return 0, fmt.Errorf("%w %q", errUnsupportedShape, shape)
	}
}
