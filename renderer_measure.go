package showtxt

import "fmt"
import "math"
import "strings"

import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

// Returns the advance width of the text in surface units, measured
// along the (possibly rotated) baseline. For multiline text, the
// width of the longest line is returned.
func (self *Renderer) MeasureText(target surface.Surface, req *surface.TextRequest) (float64, error) {
	if target == nil || target.Closed() { return 0, surface.ErrClosed }
	if req.Text == "" { return 0, nil }
	op, err := self.prepare(target, req)
	if err != nil { return 0, err }

	var width float64
	text := normalizeText(req.Text, op.cfg.normalize)
	for _, line := range strings.Split(text, "\n") {
		pen, _ := self.traverse(op, line, 0, 0, nil)
		width = math.Max(width, math.Hypot(pen.X, pen.Y))
	}
	return width, nil
}

// Returns the metrics of the glyph that would be drawn for the given
// code point, in surface units. Ascent and descent are taken from the
// glyph bounds; blank glyphs have zero ascent and descent.
func (self *Renderer) GlyphMetrics(target surface.Surface, req *surface.TextRequest, code rune) (surface.Metrics, error) {
	if target == nil || target.Closed() { return surface.Metrics{}, surface.ErrClosed }
	op, err := self.prepare(target, req)
	if err != nil { return surface.Metrics{}, err }

	glyph, found := self.lookupGlyph(op, code)
	if !found {
		return surface.Metrics{}, fmt.Errorf("%w: %s: %U", outline.ErrGlyphNotFound, op.face, code)
	}
	scale := op.perEm.ScaleFactor()/float64(glyph.outline.UnitsPerEm)
	advance := op.cfg.sizer.GlyphAdvance(glyph.face, glyph.outline)
	metrics := surface.Metrics{ Width: advance*scale }
	if !glyph.outline.IsBlank() {
		bounds := glyph.outline.Bounds()
		metrics.Ascent  = math.Max(0, -bounds.Min.Y)*scale
		metrics.Descent = math.Max(0,  bounds.Max.Y)*scale
	}
	return metrics, nil
}
