package canvas

import "fmt"

// Canvas is a fixed-size grid of colors stored in row-major order.
// Every pixel starts out black.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas creates a black canvas with the given dimensions.
// It panics if either dimension is not positive.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid dimensions %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel stores col at column x, row y and returns the color that was
// there before. It panics if (x, y) lies outside the canvas.
func (c *Canvas) WritePixel(x, y int, col Color) Color {
	i := c.offset(x, y)
	prev := c.pix[i]
	c.pix[i] = col
	return prev
}

// PixelAt returns the color at column x, row y.
// It panics if (x, y) lies outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pix[c.offset(x, y)]
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Clear resets every pixel to black.
func (c *Canvas) Clear() {
	clear(c.pix)
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// offset returns the index of (x, y) in pix, panicking when out of range.
func (c *Canvas) offset(x, y int) int {
	if !c.inBounds(x, y) {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) out of bounds %dx%d", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// row returns the pixels of row y. The slice aliases the canvas.
func (c *Canvas) row(y int) []Color {
	return c.pix[y*c.width : (y+1)*c.width]
}
