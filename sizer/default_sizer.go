package sizer

import "sync"

import "golang.org/x/image/font/sfnt"
import xfont "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/outline"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer] used by showtxt renderers. It uses the glyph
// advances, the kerning table of sfnt fonts and the line height
// reported by [font.Face.Metrics]. Type 1 faces have no kerning.
type DefaultSizer struct {
	mutex sync.Mutex
	buffer sfnt.Buffer
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(_ *font.Face, glyph *outline.Outline) float64 {
	return glyph.Advance
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(face *font.Face, prev, code rune) float64 {
	program := face.SFNT()
	if program == nil { return 0 }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	prevIndex, err := program.GlyphIndex(&self.buffer, prev)
	if err != nil || prevIndex == 0 { return 0 }
	index, err := program.GlyphIndex(&self.buffer, code)
	if err != nil || index == 0 { return 0 }

	// at ppem = upem << 6, 26.6 results are in design units
	ppem := fixed.Int26_6(face.UnitsPerEm << 6)
	kern, err := program.Kern(&self.buffer, prevIndex, index, ppem, xfont.HintingNone)
	if err != nil { return 0 } // includes sfnt.ErrNotFound
	return float64(kern)/64
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(face *font.Face) float64 {
	return face.Metrics().LineHeight()
}
