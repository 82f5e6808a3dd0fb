package outline

import "fmt"
import "errors"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "seehuhn.de/go/postscript/type1"

import "github.com/tinne26/showtxt/font"

// Returned when a face has no glyph for the requested code point.
var ErrGlyphNotFound = errors.New("outline: glyph not found")

// Extracts glyph outlines from font faces.
//
// Extraction is a pure function of the face and the code point. An
// Extractor keeps scratch buffers and is not safe for concurrent use;
// create one per goroutine or guard it externally.
type Extractor struct {
	buffer sfnt.Buffer
}

// Creates a new outline extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Returns the outline of the glyph for the given code point, in
// design units. If the face doesn't contain the code point,
// [ErrGlyphNotFound] is returned.
func (self *Extractor) Extract(face *font.Face, code rune) (*Outline, error) {
	if face.Type1() != nil {
		name := font.Type1GlyphName(face.Type1(), code)
		if name == "" { return nil, glyphNotFound(face, code) }
		return type1Outline(face, name), nil
	}

	index, err := face.SFNT().GlyphIndex(&self.buffer, code)
	if err != nil { return nil, fmt.Errorf("%w: %s: %U: %v", ErrGlyphNotFound, face, code, err) }
	if index == 0 { return nil, glyphNotFound(face, code) }
	return self.sfntOutline(face, index)
}

// Returns the outline of the face's missing glyph (.notdef). If the
// font doesn't provide a visible .notdef glyph, a box is synthesized
// with [SynthesizeBox].
func (self *Extractor) Missing(face *font.Face) (*Outline, error) {
	var notdef *Outline
	if face.Type1() != nil {
		if _, found := face.Type1().Glyphs[".notdef"]; found {
			notdef = type1Outline(face, ".notdef")
		}
	} else {
		var err error
		notdef, err = self.sfntOutline(face, 0)
		if err != nil && !errors.Is(err, ErrGlyphNotFound) { return nil, err }
	}
	if notdef == nil || notdef.IsBlank() {
		return SynthesizeBox(face.UnitsPerEm), nil
	}
	return notdef, nil
}

// Creates a hollow box outline similar to the typical missing glyph
// representation: 0.6em advance, cap-height tall and a 1/20em stroke.
func SynthesizeBox(unitsPerEm int) *Outline {
	em := float64(unitsPerEm)
	stroke := em/20
	minX, maxX := em*0.05, em*0.55
	minY, maxY := -em*0.7, 0.0

	var b builder
	b.MoveTo(minX, minY) // outer, clockwise on a y-down surface
	b.LineTo(maxX, minY)
	b.LineTo(maxX, maxY)
	b.LineTo(minX, maxY)
	b.Close()
	b.MoveTo(minX + stroke, minY + stroke) // inner, counter-clockwise
	b.LineTo(minX + stroke, maxY - stroke)
	b.LineTo(maxX - stroke, maxY - stroke)
	b.LineTo(maxX - stroke, minY + stroke)
	b.Close()
	return &Outline{
		Contours: b.Contours(),
		Advance: em*0.6,
		UnitsPerEm: unitsPerEm,
		Synthetic: true,
	}
}

// ---- helpers ----

func glyphNotFound(face *font.Face, code rune) error {
	return fmt.Errorf("%w: %s: %U", ErrGlyphNotFound, face, code)
}

func (self *Extractor) sfntOutline(face *font.Face, index sfnt.GlyphIndex) (*Outline, error) {
	// loading at ppem == unitsPerEm gives us design units directly
	ppem := fixed.Int26_6(face.UnitsPerEm << 6)
	segments, err := face.SFNT().LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) || errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: %s: glyph %d: %v", ErrGlyphNotFound, face, index, err)
		}
		return nil, fmt.Errorf("%w: %s: glyph %d: %v", font.ErrInvalidFontData, face, index, err)
	}

	var b builder
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := unfix(segment.Args[0])
			b.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := unfix(segment.Args[0])
			b.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := unfix(segment.Args[0])
			x, y := unfix(segment.Args[1])
			b.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cx1, cy1 := unfix(segment.Args[0])
			cx2, cy2 := unfix(segment.Args[1])
			x, y := unfix(segment.Args[2])
			b.CubeTo(cx1, cy1, cx2, cy2, x, y)
		}
	}

	advance, err := face.SFNT().GlyphAdvance(&self.buffer, index, ppem, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: glyph %d advance: %v", font.ErrInvalidFontData, face, index, err)
	}

	return &Outline{
		Contours: b.Contours(),
		Advance: float64(advance)/64.0,
		UnitsPerEm: face.UnitsPerEm,
		Index: uint32(index),
	}, nil
}

func type1Outline(face *font.Face, name string) *Outline {
	glyph := face.Type1().Glyphs[name]
	var b builder
	for _, cmd := range glyph.Cmds {
		args := cmd.Args
		switch cmd.Op {
		case type1.OpMoveTo:
			if len(args) >= 2 { b.MoveTo(args[0], -args[1]) }
		case type1.OpLineTo:
			if len(args) >= 2 { b.LineTo(args[0], -args[1]) }
		case type1.OpCurveTo:
			if len(args) >= 6 {
				b.CubeTo(args[0], -args[1], args[2], -args[3], args[4], -args[5])
			}
		case type1.OpClosePath:
			b.Close()
		}
	}
	return &Outline{
		Contours: b.Contours(),
		Advance: glyph.WidthX,
		UnitsPerEm: face.UnitsPerEm,
	}
}

func unfix(pt fixed.Point26_6) (float64, float64) {
	return float64(pt.X)/64.0, float64(pt.Y)/64.0
}
