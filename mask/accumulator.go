package mask

import "math"
import "image"

// Coverage accumulation buffer used by the edge marker. Each cell
// stores the signed coverage change introduced by the boundaries
// crossing it; a running sum along each row gives the final pixel
// coverage. The sign depends on the boundary direction, so both
// contour orientations fill.
type buffer struct {
	Width  int
	Height int
	Values []float64
}

// Sets a new size, growing the underlying slice if necessary.
// The contents are always cleared.
func (self *buffer) Resize(width, height int) {
	if width <= 0 || height <= 0 { panic("buffer width or height <= 0") }
	self.Width, self.Height = width, height
	size := width*height
	if cap(self.Values) < size {
		self.Values = make([]float64, size)
		return
	}
	self.Values = self.Values[ : size]
	self.Clear()
}

// Fills the buffer with zeros.
func (self *buffer) Clear() { clear(self.Values) }

// Accumulates the coverage changes row by row and writes the
// result to the given mask, whose pixel count must match the
// buffer size.
func (self *buffer) AccumulateInto(mask *image.Alpha) {
	if len(mask.Pix) != self.Width*self.Height { panic("mask size doesn't match buffer size") }

	for y := 0; y < self.Height; y++ {
		row := self.Values[y*self.Width : (y + 1)*self.Width]
		pix := mask.Pix[y*mask.Stride : y*mask.Stride + self.Width]
		var coverage float64
		var alpha uint8
		for x, change := range row {
			if change != 0 {
				coverage += change
				alpha = uint8(min(math.Abs(coverage), 1.0)*255 + 0.5)
			}
			pix[x] = alpha
		}
	}
}

// Linearly interpolates (ax, ay) and (bx, by) at t in [0, 1].
func lerp(ax, ay, bx, by float64, t float64) (float64, float64) {
	return ax + t*(bx - ax), ay + t*(by - ay)
}

// Returns the A, B and C coefficients of the line through the
// two given points, in the form "Ax + By + C = 0".
func toLinearFormABC(ox, oy, fx, fy float64) (float64, float64, float64) {
	return fy - oy, ox - fx, (fx - ox)*oy - (fy - oy)*ox
}
