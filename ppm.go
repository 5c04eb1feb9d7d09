package canvas

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// PPM format constants.
const (
	// MaxColorValue is the largest channel value written to a PPM file.
	MaxColorValue = 255

	// MaxLineWidth is the default limit on the length of a PPM body line.
	MaxLineWidth = 70

	ppmMagic = "P3"
)

// ToPPM returns the canvas as a plain-text PPM ("P3") document.
//
// The header holds the magic number, the dimensions and the maximum
// channel value. Each canvas row follows as space-separated channel values,
// wrapped at spaces so that no line is longer than the line width.
// The document ends with a newline.
func (c *Canvas) ToPPM(opts ...PPMOption) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = c.encodePPM(&sb, newPPMOptions(opts))
	return sb.String()
}

// WritePPM writes the document produced by [Canvas.ToPPM] to w.
func (c *Canvas) WritePPM(w io.Writer, opts ...PPMOption) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := c.encodePPM(w, newPPMOptions(opts)); err != nil {
		return fmt.Errorf("canvas: write ppm: %w", err)
	}
	return nil
}

// SavePPM saves the canvas to a PPM file.
func (c *Canvas) SavePPM(path string, opts ...PPMOption) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvas: close file: %w", cerr)
		}
	}()

	if err := c.WritePPM(f, opts...); err != nil {
		return err
	}
	Logger().Info("saved ppm", "path", path, "width", c.width, "height", c.height)
	return nil
}

func (c *Canvas) encodePPM(w io.Writer, o ppmOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, MaxColorValue)

	var (
		row     []byte
		lines   int
		wrapped int
	)
	for y := 0; y < c.height; y++ {
		row = appendRow(row[:0], c.row(y))
		parts := WrapLine(string(row), o.lineWidth)
		if len(parts) > 1 {
			wrapped++
		}
		for _, line := range parts {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		lines += len(parts)
	}

	// bufio.Writer errors are sticky, so Flush reports any earlier failure.
	if err := bw.Flush(); err != nil {
		return err
	}
	Logger().Debug("encoded ppm",
		"width", c.width,
		"height", c.height,
		"lines", lines,
		"wrappedRows", wrapped,
	)
	return nil
}

// appendRow appends the channel values of pixels to dst as a single
// space-separated run of decimal integers.
func appendRow(dst []byte, pixels []Color) []byte {
	for i, p := range pixels {
		r, g, b := p.Bytes()
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendUint(dst, uint64(r), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendUint(dst, uint64(g), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendUint(dst, uint64(b), 10)
	}
	return dst
}
