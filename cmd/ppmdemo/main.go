// Command ppmdemo paints a small scene onto a canvas and saves it as a
// plain-text PPM file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/canvas"
)

func main() {
	var (
		width     = flag.Int("width", 320, "image width")
		height    = flag.Int("height", 240, "image height")
		output    = flag.String("output", "demo.ppm", "output file")
		lineWidth = flag.Int("line-width", canvas.MaxLineWidth, "maximum PPM body line length")
		verbose   = flag.Bool("v", false, "log serialization details to stderr")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("Invalid size %dx%d", *width, *height)
	}
	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := canvas.NewCanvas(*width, *height)

	drawGradientBackground(c)
	drawSphere(c)
	drawProjectile(c)

	if err := c.SavePPM(*output, canvas.WithLineWidth(*lineWidth)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := c.Width(), c.Height()
	p := message.NewPrinter(language.English)
	p.Printf("Demo saved to %s (%dx%d, %d pixels)\n", *output, w, h, w*h)
}

func drawGradientBackground(c *canvas.Canvas) {
	top := canvas.NewColor(0.1, 0.2, 0.4)
	bottom := canvas.NewColor(0.5, 0.5, 0.6)
	h := float64(c.Height() - 1)
	for y := 0; y < c.Height(); y++ {
		t := 0.0
		if h > 0 {
			t = float64(y) / h
		}
		row := top.Lerp(bottom, t)
		for x := 0; x < c.Width(); x++ {
			c.WritePixel(x, y, row)
		}
	}
}

// drawSphere shades a disc as a diffusely lit sphere. The light is brighter
// than 1, so the highlight clips on export.
func drawSphere(c *canvas.Canvas) {
	var (
		cx      = float64(c.Width()) / 2
		cy      = float64(c.Height()) / 2
		radius  = math.Min(cx, cy) * 0.6
		light   = canvas.NewColor(1.4, 1.3, 1.2)
		albedo  = canvas.NewColor(1, 0.3, 0.2)
		ambient = canvas.NewColor(0.05, 0.05, 0.08)
	)
	// direction to the light, normalized
	lx, ly, lz := -0.5, -0.6, 0.62
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			dx := (float64(x) + 0.5 - cx) / radius
			dy := (float64(y) + 0.5 - cy) / radius
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			diffuse := math.Max(0, dx*lx+dy*ly+nz*lz)
			col := light.Multiply(albedo).Scale(diffuse).Add(ambient)
			c.WritePixel(x, y, col)
		}
	}
}

// drawProjectile plots the path of a projectile launched from the
// bottom-left corner under constant gravity and wind.
func drawProjectile(c *canvas.Canvas) {
	var (
		px, py  = 0.0, 1.0
		vx, vy  = 1.0, 1.8
		gravity = -0.1
		wind    = -0.01
		scale   = float64(c.Width()) / 24
		trail   = canvas.Hex("#ffd700")
	)
	for py > 0 {
		x := int(px * scale)
		y := c.Height() - 1 - int(py*scale)
		if x >= 0 && x < c.Width() && y >= 0 && y < c.Height() {
			c.WritePixel(x, y, trail)
		}
		px, py = px+vx, py+vy
		vx, vy = vx+wind, vy+gravity
	}
}
