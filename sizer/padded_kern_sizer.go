package sizer

import "github.com/tinne26/showtxt/font"

var _ Sizer = (*PaddedKernSizer)(nil)

// A [Sizer] that behaves like the default one, but with a horizontal
// padding added to the kern between glyphs. The padding is expressed
// as a fraction of the em, so it scales with the text size.
type PaddedKernSizer struct {
	DefaultSizer
	Padding float64
}

// Satisfies the [Sizer] interface.
func (self *PaddedKernSizer) Kern(face *font.Face, prev, code rune) float64 {
	return self.DefaultSizer.Kern(face, prev, code) + self.Padding*float64(face.UnitsPerEm)
}
