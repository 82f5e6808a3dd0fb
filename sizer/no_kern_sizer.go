package sizer

import "github.com/tinne26/showtxt/font"

var _ Sizer = (*NoKernSizer)(nil)

// A [Sizer] that behaves like [DefaultSizer] but ignores kerning.
type NoKernSizer struct {
	DefaultSizer
}

// Satisfies the [Sizer] interface. Always returns zero.
func (self *NoKernSizer) Kern(*font.Face, rune, rune) float64 { return 0 }
