package canvas

import "errors"

// Sentinel errors for canvas export.
var (
	// ErrNilWriter is returned when WritePPM is given a nil writer.
	ErrNilWriter = errors.New("canvas: nil writer")
)
