package sizer

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/outline"

// When traversing text, renderers need some spacing information
// besides the glyph outlines: how much to advance after each glyph,
// the kerning between consecutive characters and the distance
// between lines.
//
// Sizers are the interface that renderers use to obtain that
// information. All values are in the design units of the given
// face; the renderer scales them together with the outlines.
//
// You rarely need to care about sizers, but they can be useful
// to customize line height or advances, disable kerning or adjust
// horizontal spacing.
//
// Sizers must be safe for concurrent use.
type Sizer interface {
	// Returns the advance of the given glyph.
	GlyphAdvance(face *font.Face, glyph *outline.Outline) float64

	// Returns the kerning adjustment between two consecutive
	// characters drawn with the same face. Negative values bring
	// the glyphs closer.
	Kern(face *font.Face, prev, code rune) float64

	// Returns the distance between the baselines of consecutive
	// lines, before the line spacing factor is applied.
	LineHeight(face *font.Face) float64
}
