package affine

import "math"

import "seehuhn.de/go/geom/matrix"

// Points per inch, the unit system used for font sizes.
const PointsPerInch = 72.0

// A 2x3 affine transform. The zero value is not valid; use
// [Identity]() or [Compose]() to create transforms.
//
// The matrix layout is [a b c d e f], mapping points as:
//   x' = a*x + c*y + e
//   y' = b*x + d*y + f
type Transform struct {
	m matrix.Matrix
}

// Returns the identity transform.
func Identity() Transform {
	return Transform{ m: matrix.Identity }
}

// Wraps an existing matrix.
func FromMatrix(m matrix.Matrix) Transform {
	return Transform{ m: m }
}

// Creates the transform from em units to surface units for the
// given point size, surface resolution and rotation. The resulting
// transform scales by pointSize*dpi/72 and then rotates. The
// translation is left at zero until [Transform.Anchor]() is used.
func Compose(pointSize, dpi, rotationDegrees float64) Transform {
	pxPerEm := pointSize*dpi/PointsPerInch
	scale := matrix.Matrix{pxPerEm, 0, 0, pxPerEm, 0, 0}
	return Transform{ m: scale.Mul(Rotation(rotationDegrees).m) }
}

// Returns a counterclockwise rotation (as seen on a y-down surface)
// by the given angle in degrees. Multiples of 90 degrees are exact.
func Rotation(degrees float64) Transform {
	sin, cos := sincosDeg(degrees)
	return Transform{ m: matrix.Matrix{cos, -sin, sin, cos, 0, 0} }
}

// Returns a pure translation.
func Translation(x, y float64) Transform {
	return Transform{ m: matrix.Matrix{1, 0, 0, 1, x, y} }
}

// Returns the underlying matrix.
func (self Transform) Matrix() matrix.Matrix { return self.m }

// Returns the transform that applies the receiver first and
// then the given transform.
func (self Transform) Then(next Transform) Transform {
	return Transform{ m: self.m.Mul(next.m) }
}

// Returns the transform with the design unit normalization
// prepended, so it can be applied directly to outlines
// expressed in font units.
func (self Transform) PerEm(unitsPerEm int) Transform {
	if unitsPerEm <= 0 { return self }
	inv := 1.0/float64(unitsPerEm)
	return Transform{ m: matrix.Matrix{inv, 0, 0, inv, 0, 0}.Mul(self.m) }
}

// Returns the transform with its translation replaced by the
// given anchor position (usually the pen position).
func (self Transform) Anchor(x, y float64) Transform {
	self.m[4], self.m[5] = x, y
	return self
}

// Returns the translation component.
func (self Transform) Offset() (float64, float64) {
	return self.m[4], self.m[5]
}

// Maps a point.
func (self Transform) Apply(x, y float64) (float64, float64) {
	m := self.m
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Maps a vector (the translation is ignored). Used for advances.
func (self Transform) ApplyVector(dx, dy float64) (float64, float64) {
	m := self.m
	return m[0]*dx + m[2]*dy, m[1]*dx + m[3]*dy
}

// Returns the uniform scaling factor of the transform (the square
// root of the absolute determinant).
func (self Transform) ScaleFactor() float64 {
	m := self.m
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// Returns the inverse transform. Singular transforms return
// the identity and false.
func (self Transform) Inverse() (Transform, bool) {
	m := self.m
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 { return Identity(), false }
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	e := -(a*m[4] + c*m[5])
	f := -(b*m[4] + d*m[5])
	return Transform{ m: matrix.Matrix{a, b, c, d, e, f} }, true
}

// Reports whether both transforms are equal within the given tolerance.
func (self Transform) ApproxEqual(other Transform, tolerance float64) bool {
	for i := range self.m {
		if math.Abs(self.m[i] - other.m[i]) > tolerance { return false }
	}
	return true
}

func sincosDeg(degrees float64) (sin, cos float64) {
	norm := math.Mod(degrees, 360)
	if norm < 0 { norm += 360 }
	switch norm {
	case 0  : return  0,  1
	case 90 : return  1,  0
	case 180: return  0, -1
	case 270: return -1,  0
	}
	return math.Sincos(norm*math.Pi/180)
}
