package sizer

import "github.com/tinne26/showtxt/font"

var _ Sizer = (*StaticSizer)(nil)

// A sizer that ignores the vertical metrics provided by the font
// and instead replaces them with fixed values relative to the em.
// This can be used to manually control the line height for a single
// font or a small set of fonts with inconsistent metrics.
type StaticSizer struct {
	DefaultSizer
	AscentMult float64
	DescentMult float64
	LineGapMult float64
}

// Satisfies the [Sizer] interface.
func (self *StaticSizer) LineHeight(face *font.Face) float64 {
	return (self.AscentMult + self.DescentMult + self.LineGapMult)*float64(face.UnitsPerEm)
}
