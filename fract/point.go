package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates, typically a pen position
// within a surface.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of float64s, rounding each
// coordinate to the closest 64th.
func Float64sToPoint(x, y float64) Point {
	return Point{ X: FromFloat64Clamped(x), Y: FromFloat64Clamped(y) }
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Splits the point into its floored integer position and the
// remaining (always non-negative) fractional offset.
func (self Point) Split() (image.Point, Point) {
	whole := image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
	return whole, Point{ X: self.X - self.X.Floor(), Y: self.Y - self.Y.Floor() }
}

// Quantizes each coordinate with [Unit.QuantizeUp] and its own step.
func (self Point) Quantize(horzStep, vertStep Unit) Point {
	return Point{ X: self.X.QuantizeUp(horzStep), Y: self.Y.QuantizeUp(vertStep) }
}

// Returns a textual representation of the point, like "(2.5, -4)".
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
