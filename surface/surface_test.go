package surface

import "image"
import "errors"
import "strings"
import "testing"
import "image/color"

import "github.com/tinne26/showtxt/outline"

type stubDrawer struct { calls int }

func (self *stubDrawer) DrawText(s Surface, req *TextRequest) (Pen, error) {
	self.calls += 1
	return Pen{ req.X + 1, req.Y }, nil
}

func (self *stubDrawer) MeasureText(Surface, *TextRequest) (float64, error) {
	self.calls += 1
	return 42, nil
}

func (self *stubDrawer) GlyphMetrics(Surface, *TextRequest, rune) (Metrics, error) {
	self.calls += 1
	return Metrics{ Width: 7 }, nil
}

func TestTextDrawerSlot(t *testing.T) {
	recorder := NewRecorder(image.Rect(0, 0, 100, 100), 72, Vector)
	native := recorder.TextDrawer()
	if native != recorder.NativeTextDrawer() { t.Fatal("expected native drawer by default") }

	stub := &stubDrawer{}
	recorder.SetTextDrawer(stub)
	pen, err := recorder.DrawText(&TextRequest{ Text: "hey", X: 5, Y: 10 })
	if err != nil { t.Fatal(err) }
	if pen.X != 6 { t.Fatalf("expected %d, got %f", 6, pen.X) }
	width, _ := recorder.MeasureText(&TextRequest{ Text: "hey" })
	if width != 42 { t.Fatalf("expected %d, got %f", 42, width) }
	if stub.calls != 2 { t.Fatalf("expected %d, got %d", 2, stub.calls) }
	if len(recorder.Ops()) != 0 { t.Fatal("expected stub drawer to bypass native recording") }

	recorder.SetTextDrawer(nil)
	if recorder.TextDrawer() != native { t.Fatal("expected nil drawer to restore the native one") }
	_, err = recorder.DrawText(&TextRequest{ Text: "hey", Size: 10 })
	if err != nil { t.Fatal(err) }
	ops := recorder.OpsOf(OpNativeText)
	if len(ops) != 1 || ops[0].Text != "hey" { t.Fatalf("unexpected ops %v", recorder.Ops()) }
}

func TestRecorderCapabilities(t *testing.T) {
	vector := NewRecorder(image.Rect(0, 0, 10, 10), 0, Vector)
	raster := NewRecorder(image.Rect(0, 0, 10, 10), 96, Raster)
	if vector.ID() == raster.ID() { t.Fatal("expected unique surface ids") }

	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	err := vector.BlitMask(mask, image.Pt(1, 1), color.Black)
	if !errors.Is(err, ErrUnsupported) { t.Fatalf("expected ErrUnsupported, got %v", err) }
	err = raster.FillPath(nil, color.Black)
	if !errors.Is(err, ErrUnsupported) { t.Fatalf("expected ErrUnsupported, got %v", err) }
	err = raster.BlitMask(mask, image.Pt(1, 1), color.Black)
	if err != nil { t.Fatal(err) }

	if raster.Close() != nil { t.Fatal("unexpected close error") }
	if !raster.Closed() { t.Fatal("expected closed surface") }
	if !errors.Is(raster.Close(), ErrClosed) { t.Fatal("expected ErrClosed on second close") }
	_, err = raster.DrawText(&TextRequest{ Text: "x" })
	if !errors.Is(err, ErrClosed) { t.Fatalf("expected ErrClosed, got %v", err) }
	if !errors.Is(raster.BlitMask(mask, image.Pt(0, 0), color.Black), ErrClosed) {
		t.Fatal("expected ErrClosed")
	}
}

func TestRecorderSVG(t *testing.T) {
	recorder := NewRecorder(image.Rect(0, 0, 20, 20), 72, Both)
	triangle := []outline.Contour{{
		Start: outline.Point{ X: 1, Y: 1 },
		Segments: []outline.Segment{
			{ Op: outline.OpLineTo, Points: [3]outline.Point{{ X: 10, Y: 1 }} },
			{ Op: outline.OpQuadTo, Points: [3]outline.Point{{ X: 12, Y: 5 }, { X: 10, Y: 10 }} },
		},
	}}
	_ = recorder.FillPath(triangle, color.RGBA{255, 0, 0, 255})
	mask := image.NewAlpha(image.Rect(0, -2, 2, 0))
	mask.Pix[0] = 255
	_ = recorder.BlitMask(mask, image.Pt(3, 4), color.Black)
	_, _ = recorder.DrawText(&TextRequest{ Text: "a<b", X: 1, Y: 15, Size: 8 })

	var builder strings.Builder
	err := recorder.WriteSVG(&builder)
	if err != nil { t.Fatal(err) }
	svg := builder.String()
	for _, expected := range []string{
		`<path fill-rule="nonzero" fill="#ff0000" d="M1 1 L10 1 Q12 5 10 10 Z"/>`,
		`<image x="3" y="2" width="2" height="2"`,
		`a&lt;b</text>`,
	} {
		if !strings.Contains(svg, expected) {
			t.Fatalf("expected svg to contain %q, got:\n%s", expected, svg)
		}
	}
}

func TestSVGMaskColors(t *testing.T) {
	mask := image.NewAlpha(image.Rect(5, 5, 7, 6))
	mask.Pix[0], mask.Pix[1] = 255, 0
	translucentRed := color.RGBA{64, 0, 0, 128} // premultiplied
	colored := svgMaskImage(mask, translucentRed)
	if colored.Rect != image.Rect(0, 0, 2, 1) { t.Fatalf("unexpected bounds %v", colored.Rect) }
	expected := color.NRGBA{127, 0, 0, 128}
	if colored.NRGBAAt(0, 0) != expected {
		t.Fatalf("expected %v, got %v", expected, colored.NRGBAAt(0, 0))
	}
	if colored.NRGBAAt(1, 0).A != 0 { t.Fatalf("expected transparent pixel, got %v", colored.NRGBAAt(1, 0)) }

	if svgFill(translucentRed) != `fill="#7f0000" fill-opacity="0.502"` {
		t.Fatalf("unexpected fill %s", svgFill(translucentRed))
	}
}

func TestImageBlitMask(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 4, 4))
	surface := NewImage(target, 96)
	if surface.Capability() != Raster { t.Fatalf("expected Raster, got %s", surface.Capability()) }

	mask := image.NewAlpha(image.Rect(-1, -1, 1, 1))
	mask.SetAlpha(-1, -1, color.Alpha{255})
	mask.SetAlpha( 0, -1, color.Alpha{128})
	mask.SetAlpha( 0,  0, color.Alpha{255})
	err := surface.BlitMask(mask, image.Pt(0, 1), color.RGBA{0, 0, 255, 255})
	if err != nil { t.Fatal(err) }

	// (-1, -1) + (0, 1) falls outside the target
	tests := []struct { x, y int; expected color.RGBA }{
		{ 0, 0, color.RGBA{0, 0, 128, 128} },
		{ 0, 1, color.RGBA{0, 0, 255, 255} },
		{ 1, 1, color.RGBA{0, 0,   0,   0} },
	}
	for _, test := range tests {
		got := target.RGBAAt(test.x, test.y)
		if got != test.expected {
			t.Fatalf("at (%d, %d): expected %v, got %v", test.x, test.y, test.expected, got)
		}
	}

	err = surface.FillPath(nil, color.Black)
	if !errors.Is(err, ErrUnsupported) { t.Fatalf("expected ErrUnsupported, got %v", err) }
}

func TestImageNativeText(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 64, 16))
	surface := NewImage(target, 0)
	pen, err := surface.DrawText(&TextRequest{ Text: "ab", X: 0, Y: 12, Color: color.White })
	if err != nil { t.Fatal(err) }
	if pen.X != 14 { t.Fatalf("expected %d, got %f", 14, pen.X) }
	width, _ := surface.MeasureText(&TextRequest{ Text: "abc" })
	if width != 21 { t.Fatalf("expected %d, got %f", 21, width) }
	_, err = surface.DrawText(&TextRequest{ Text: "ab", Rotation: 90 })
	if !errors.Is(err, ErrUnsupported) { t.Fatalf("expected ErrUnsupported, got %v", err) }

	var painted bool
	for _, value := range target.Pix {
		if value != 0 { painted = true ; break }
	}
	if !painted { t.Fatal("expected native text to paint the target") }
}
