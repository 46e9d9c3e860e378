package footprint

import "errors"

// ErrNoPads means the file parsed cleanly but contains no "pad" nodes at
// all. It is distinct from a successful import in which every pad was
// filtered out, which returns an empty slice and no error.
var ErrNoPads = errors.New("no pads found in footprint")

// errUnsupportedShape marks a pad whose shape keyword is outside the
// importable set. It never escapes Import: the pad is skipped with a
// diagnostic and extraction continues.
var errUnsupportedShape = errors.New("unsupported pad shape")
