package outline

import "errors"
import "testing"

import "github.com/google/go-cmp/cmp"
import "github.com/google/go-cmp/cmp/cmpopts"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/internal/testfont"

func loadGoRegular(t *testing.T) *font.Face {
	t.Helper()
	faces := font.NewCache()
	id, err := faces.LoadBytes("goregular", goregular.TTF, "", font.Regular)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	face, err := faces.Face(id)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	return face
}

func TestExtractDeterminism(t *testing.T) {
	face := loadGoRegular(t)
	first, err := NewExtractor().Extract(face, 'g')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	extractor := NewExtractor()
	_, _ = extractor.Extract(face, 'W') // dirty the scratch buffer
	second, err := extractor.Extract(face, 'g')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("outlines differ (-first +second):\n%s", diff)
	}
	if first.IsBlank() || first.Index == 0 || first.Synthetic {
		t.Fatalf("unexpected outline %+v", first)
	}
}

func TestExtractShape(t *testing.T) {
	face := loadGoRegular(t)
	extractor := NewExtractor()

	h, err := extractor.Extract(face, 'H')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if h.UnitsPerEm != 2048 { t.Fatalf("expected %d units per em, got %d", 2048, h.UnitsPerEm) }
	bounds := h.Bounds()
	if bounds.Empty() { t.Fatal("expected non-empty bounds") }
	if bounds.Min.Y >= -1000 || bounds.Max.Y > 1 || bounds.Max.Y < -1 {
		t.Fatalf("expected 'H' above the baseline in y-down coordinates, got %+v", bounds)
	}
	if bounds.Min.X < 0 || bounds.Max.X > h.Advance {
		t.Fatalf("expected 'H' within its advance %f, got %+v", h.Advance, bounds)
	}

	space, err := extractor.Extract(face, ' ')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !space.IsBlank() || space.Advance <= 0 {
		t.Fatalf("expected blank space with advance, got %+v", space)
	}
	if !space.Bounds().Empty() { t.Fatal("expected empty bounds for blank outline") }
}

func TestExtractMissing(t *testing.T) {
	face := loadGoRegular(t)
	extractor := NewExtractor()
	_, err := extractor.Extract(face, '\uE000')
	if !errors.Is(err, ErrGlyphNotFound) { t.Fatalf("expected ErrGlyphNotFound, got %v", err) }

	notdef, err := extractor.Missing(face)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if notdef.IsBlank() || notdef.Advance <= 0 { t.Fatalf("expected a visible missing glyph, got %+v", notdef) }
}

func TestSynthesizeBox(t *testing.T) {
	box := SynthesizeBox(1000)
	if !box.Synthetic || box.Advance != 600 || len(box.Contours) != 2 {
		t.Fatalf("unexpected box %+v", box)
	}
	expected := Rect{ Min: Point{50, -700}, Max: Point{550, 0} }
	if diff := cmp.Diff(expected, box.Bounds()); diff != "" {
		t.Fatalf("unexpected bounds (-want +got):\n%s", diff)
	}
	if box.SegmentCount() != 6 { t.Fatalf("expected %d segments, got %d", 6, box.SegmentCount()) }
}

func TestTransform(t *testing.T) {
	box := SynthesizeBox(1000)
	moved := box.Transform(affine.Compose(10, 72, 0).PerEm(1000).Anchor(100, 50))
	expected := Rect{ Min: Point{100.5, 43}, Max: Point{105.5, 50} }
	if diff := cmp.Diff(expected, moved.Bounds(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected bounds (-want +got):\n%s", diff)
	}
	if moved.Advance != box.Advance { t.Fatal("expected advance to be preserved") }
	if box.Bounds().Min.X != 50 { t.Fatal("expected the source outline to be unmodified") }

	clone := box.Clone()
	clone.Contours[0].Segments[0].Points[0].X = -1
	if box.Contours[0].Segments[0].Points[0].X == -1 { t.Fatal("expected clone to be independent") }
}

func TestExtractType1(t *testing.T) {
	faces := font.NewCache()
	id, err := faces.LoadBytes("squares.pfa", testfont.SquaresPFA(), "", font.Regular)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	face, _ := faces.Face(id)
	extractor := NewExtractor()

	a, err := extractor.Extract(face, 'A')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if a.UnitsPerEm != 1000 || a.Advance != 600 || a.Synthetic {
		t.Fatalf("unexpected outline %+v", a)
	}
	if len(a.Contours) != 1 { t.Fatalf("expected %d contour, got %d", 1, len(a.Contours)) }
	// design units are y-up, outlines are y-down
	expected := Rect{ Min: Point{100, -400}, Max: Point{500, 0} }
	if diff := cmp.Diff(expected, a.Bounds()); diff != "" {
		t.Fatalf("unexpected 'A' bounds (-want +got):\n%s", diff)
	}

	b, err := extractor.Extract(face, 'B')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	expected = Rect{ Min: Point{100, -500}, Max: Point{600, 200} }
	if diff := cmp.Diff(expected, b.Bounds()); diff != "" {
		t.Fatalf("unexpected 'B' bounds (-want +got):\n%s", diff)
	}
	if b.Advance != 700 { t.Fatalf("expected advance %d, got %f", 700, b.Advance) }

	_, err = extractor.Extract(face, 'C')
	if !errors.Is(err, ErrGlyphNotFound) { t.Fatalf("expected ErrGlyphNotFound, got %v", err) }

	notdef, err := extractor.Missing(face)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if notdef.Synthetic || notdef.Advance != 500 { t.Fatalf("expected the font's .notdef, got %+v", notdef) }
	expected = Rect{ Min: Point{50, -700}, Max: Point{450, 0} }
	if diff := cmp.Diff(expected, notdef.Bounds()); diff != "" {
		t.Fatalf("unexpected .notdef bounds (-want +got):\n%s", diff)
	}
}
