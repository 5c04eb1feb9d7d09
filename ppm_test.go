package canvas

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func ppmLines(ppm string) []string {
	return strings.Split(strings.TrimSuffix(ppm, "\n"), "\n")
}

func TestPPMHeader(t *testing.T) {
	lines := ppmLines(NewCanvas(5, 3).ToPPM())
	want := []string{"P3", "5 3", "255"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestPPMPixelData(t *testing.T) {
	c := NewCanvas(5, 3)
	c.WritePixel(0, 0, NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, NewColor(-0.5, 0, 1))

	lines := ppmLines(c.ToPPM())
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	want := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("line %d = %q, want %q", 3+i, lines[3+i], w)
		}
	}
}

func TestPPMSplitsLongLines(t *testing.T) {
	c := NewCanvas(10, 20)
	c.Fill(NewColor(1, 0.8, 0.6))

	lines := ppmLines(c.ToPPM())
	if len(lines) != 3+2*20 {
		t.Fatalf("got %d lines, want %d", len(lines), 3+2*20)
	}

	first := "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204"
	second := "153 255 204 153 255 204 153 255 204 153 255 204 153"
	row := strings.TrimSpace(strings.Repeat("255 204 153 ", 10))

	for y := 0; y < 20; y++ {
		a, b := lines[3+2*y], lines[4+2*y]
		if a != first || b != second {
			t.Fatalf("row %d = %q / %q, want %q / %q", y, a, b, first, second)
		}
		if len(a) > MaxLineWidth || len(b) > MaxLineWidth {
			t.Fatalf("row %d exceeds %d columns", y, MaxLineWidth)
		}
		if a+" "+b != row {
			t.Fatalf("row %d does not rejoin to %q", y, row)
		}
	}
}

func TestPPMWideCanvas(t *testing.T) {
	c := NewCanvas(100, 2)
	for x := 0; x < c.Width(); x++ {
		c.WritePixel(x, 0, NewColor(float64(x)/100, 1, 0))
		c.WritePixel(x, 1, NewColor(0.001*float64(x), 0.5, 1))
	}

	lines := ppmLines(c.ToPPM())
	var tokens int
	for _, line := range lines[3:] {
		if len(line) > MaxLineWidth {
			t.Errorf("line %q is %d long", line, len(line))
		}
		if line == "" {
			t.Error("unexpected empty line")
		}
		tokens += len(strings.Fields(line))
	}
	if want := 3 * 100 * 2; tokens != want {
		t.Errorf("got %d channel values, want %d", tokens, want)
	}
}

func TestPPMLineWidthOption(t *testing.T) {
	c := NewCanvas(10, 1)
	c.Fill(White)

	lines := ppmLines(c.ToPPM(WithLineWidth(20)))
	for _, line := range lines[3:] {
		if len(line) > 20 {
			t.Errorf("line %q is longer than 20", line)
		}
	}
	if got := strings.Join(lines[3:], " "); got != strings.TrimSpace(strings.Repeat("255 ", 30)) {
		t.Errorf("body = %q", got)
	}

	if got, want := c.ToPPM(WithLineWidth(0)), c.ToPPM(); got != want {
		t.Error("WithLineWidth(0) should keep the default width")
	}
}

func TestPPMTrailingNewline(t *testing.T) {
	ppm := NewCanvas(5, 3).ToPPM()
	if !strings.HasSuffix(ppm, "\n") {
		t.Error("document does not end with a newline")
	}
	if strings.HasSuffix(ppm, "\n\n") {
		t.Error("document ends with a blank line")
	}
}

func TestWritePPM(t *testing.T) {
	c := NewCanvas(12, 4)
	c.Fill(NewColor(0.2, 0.4, 0.6))

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM() = %v", err)
	}
	if buf.String() != c.ToPPM() {
		t.Error("WritePPM output differs from ToPPM")
	}
}

func TestWritePPMNilWriter(t *testing.T) {
	if err := NewCanvas(1, 1).WritePPM(nil); !errors.Is(err, ErrNilWriter) {
		t.Errorf("WritePPM(nil) = %v, want %v", err, ErrNilWriter)
	}
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBoom }

func TestWritePPMWriteError(t *testing.T) {
	err := NewCanvas(2, 2).WritePPM(failingWriter{})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WritePPM() = %v, want wrapped %v", err, errBoom)
	}
	if !strings.HasPrefix(err.Error(), "canvas: write ppm:") {
		t.Errorf("error %q lacks context", err)
	}
}

func TestSavePPM(t *testing.T) {
	c := NewCanvas(3, 2)
	c.WritePixel(1, 1, Red)

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := c.SavePPM(path); err != nil {
		t.Fatalf("SavePPM() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != c.ToPPM() {
		t.Errorf("file contents = %q, want %q", data, c.ToPPM())
	}
}

func TestSavePPMBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ppm")
	if err := NewCanvas(1, 1).SavePPM(path); err == nil {
		t.Error("SavePPM into a missing directory succeeded")
	}
}
