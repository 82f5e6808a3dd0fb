package pdfsurface

import "bytes"
import "image"
import "errors"
import "testing"
import "image/color"

import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

func TestSurfaceWritesPage(t *testing.T) {
	var out bytes.Buffer
	pdfSurface, err := New(&out, 200, 100)
	if err != nil { t.Fatal(err) }
	if pdfSurface.Capability() != surface.Vector {
		t.Fatalf("expected Vector, got %s", pdfSurface.Capability())
	}
	if pdfSurface.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Fatalf("unexpected bounds %v", pdfSurface.Bounds())
	}

	square := []outline.Contour{{
		Start: outline.Point{ X: 10, Y: 10 },
		Segments: []outline.Segment{
			{ Op: outline.OpLineTo, Points: [3]outline.Point{{ X: 30, Y: 10 }} },
			{ Op: outline.OpQuadTo, Points: [3]outline.Point{{ X: 40, Y: 20 }, { X: 30, Y: 30 }} },
			{ Op: outline.OpLineTo, Points: [3]outline.Point{{ X: 10, Y: 30 }} },
		},
	}}
	err = pdfSurface.FillPath(square, color.RGBA{200, 0, 0, 255})
	if err != nil { t.Fatal(err) }
	err = pdfSurface.FillRect(image.Rect(50, 50, 60, 60), color.Black)
	if err != nil { t.Fatal(err) }

	err = pdfSurface.BlitMask(image.NewAlpha(image.Rect(0, 0, 1, 1)), image.Point{}, color.Black)
	if !errors.Is(err, surface.ErrUnsupported) { t.Fatalf("expected ErrUnsupported, got %v", err) }

	err = pdfSurface.Close()
	if err != nil { t.Fatal(err) }
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF-1.7")) {
		t.Fatalf("expected a PDF header, got %q", out.Bytes()[ : min(16, out.Len())])
	}
	if !errors.Is(pdfSurface.Close(), surface.ErrClosed) { t.Fatal("expected ErrClosed") }
	if !errors.Is(pdfSurface.FillPath(square, color.Black), surface.ErrClosed) {
		t.Fatal("expected ErrClosed")
	}
}

func TestTextMatrix(t *testing.T) {
	pdfSurface := &Surface{ height: 100 }
	m := pdfSurface.textMatrix(10, 20, 90)
	if m[4] != 10 || m[5] != 80 { t.Fatalf("expected translation (10, 80), got (%f, %f)", m[4], m[5]) }
	if m[1] < 0.999 || m[2] > -0.999 { t.Fatalf("expected counterclockwise rotation, got %v", m) }
}

func TestAsciiOnly(t *testing.T) {
	got := asciiOnly("Hi\n\u00e9!")
	if got != "Hi?!" { t.Fatalf("expected %q, got %q", "Hi?!", got) }
	if simpleGlyphName('7') != "seven" { t.Fatal("unexpected digit name") }
	if simpleGlyphName('%') != "" { t.Fatal("expected no simple name") }
}
