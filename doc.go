// Package canvas provides the pixel buffer and image export of a small
// software ray tracer.
//
// # Overview
//
// A [Canvas] is a fixed-size grid of [Color] values. Colors are linear
// RGB triples with float64 components that are never clamped while they
// are combined; clamping to bytes happens only on export.
//
// # Quick Start
//
//	c := canvas.NewCanvas(5, 3)
//	c.WritePixel(0, 0, canvas.NewColor(1.5, 0, 0))
//	c.WritePixel(4, 2, canvas.Red.Scale(0.5))
//
//	// Plain-text PPM
//	text := c.ToPPM()
//
//	// Or straight to a file
//	err := c.SavePPM("out.ppm")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Errors
//
// Non-positive dimensions and out-of-bounds coordinates passed to
// [NewCanvas], [Canvas.WritePixel] and [Canvas.PixelAt] are programming
// errors and panic. I/O errors from [Canvas.WritePPM] and
// [Canvas.SavePPM] are returned.
//
// # Interoperability
//
// Canvas implements image.Image and draw.Image, so it can be used as a
// destination for the image/draw and golang.org/x/image/draw packages.
package canvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
