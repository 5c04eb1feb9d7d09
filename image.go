package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ColorModel converts any color.Color to a [Color].
var ColorModel color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	return FromColor(c)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// At implements the image.Image interface.
// Unlike [Canvas.PixelAt] it does not panic: points outside the canvas are
// black, since a canvas has no transparency.
func (c *Canvas) At(x, y int) color.Color {
	if !c.inBounds(x, y) {
		return Black
	}
	return c.pix[y*c.width+x]
}

// Set implements the draw.Image interface.
// Unlike [Canvas.WritePixel] it silently ignores points outside the canvas.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pix[y*c.width+x] = colorModel(col).(Color)
}

// ToImage converts the canvas to an image.RGBA using the export
// clamping of [Color.Bytes].
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for i, p := range c.pix {
		r, g, b := p.Bytes()
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates a width×height canvas holding img resampled with
// bilinear filtering. The image is expected to be already decoded.
func FromImage(img image.Image, width, height int) *Canvas {
	c := NewCanvas(width, height)
	xdraw.ApproxBiLinear.Scale(c, c.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return c
}
