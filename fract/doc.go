// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, used by showtxt to quantize continuous inputs
// (point sizes, rotations, DPIs and sub-pixel pen positions) into
// stable cache keys.
//
// A [Point] pair is also provided, which can be split into its
// integer pixel position and its fractional remainder when glyph
// masks need to be positioned on a raster surface.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
