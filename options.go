package canvas

// PPMOption configures PPM serialization.
//
// Example:
//
//	// Default 70-column body lines
//	text := c.ToPPM()
//
//	// Narrower lines
//	text := c.ToPPM(canvas.WithLineWidth(40))
type PPMOption func(*ppmOptions)

// ppmOptions holds optional configuration for PPM serialization.
type ppmOptions struct {
	lineWidth int
}

// defaultPPMOptions returns the default serialization options.
func defaultPPMOptions() ppmOptions {
	return ppmOptions{
		lineWidth: MaxLineWidth,
	}
}

func newPPMOptions(opts []PPMOption) ppmOptions {
	o := defaultPPMOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLineWidth sets the maximum length of a body line.
// Values less than 1 keep the default of [MaxLineWidth].
//
// Lines longer than 70 characters are not portable between PPM readers.
func WithLineWidth(n int) PPMOption {
	return func(o *ppmOptions) {
		if n > 0 {
			o.lineWidth = n
		}
	}
}
