package mask

// Helper functions for testing.

import "math"
import "math/rand"

import "github.com/tinne26/showtxt/outline"

func similarFloat64Slices(a []float64, b []float64) bool {
	if len(a) != len(b) { return false }
	for i, valueA := range a {
		if valueA != b[i] {
			diff := math.Abs(valueA - b[i])
			if diff > 0.001 { return false } // allow small precision differences
		}
	}
	return true
}

// Outlines built here are already in pixel units, so they
// can be rasterized with the identity transform.
type testOutline struct {
	contours []outline.Contour
}

func (self *testOutline) moveTo(x, y float64) {
	self.contours = append(self.contours, outline.Contour{ Start: outline.Point{X: x, Y: y} })
}

func (self *testOutline) add(op outline.Op, pts ...float64) {
	var segment outline.Segment
	segment.Op = op
	for i := 0; i < len(pts); i += 2 {
		segment.Points[i/2] = outline.Point{X: pts[i], Y: pts[i + 1]}
	}
	last := &self.contours[len(self.contours) - 1]
	last.Segments = append(last.Segments, segment)
}

func (self *testOutline) lineTo(x, y float64) { self.add(outline.OpLineTo, x, y) }
func (self *testOutline) quadTo(cx, cy, x, y float64) { self.add(outline.OpQuadTo, cx, cy, x, y) }
func (self *testOutline) cubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.add(outline.OpCubeTo, cx1, cy1, cx2, cy2, x, y)
}

func (self *testOutline) build() *outline.Outline {
	return &outline.Outline{ Contours: self.contours, Advance: 1, UnitsPerEm: 1 }
}

func randomTriangle(rng *rand.Rand, w, h int) *outline.Outline {
	fw, fh := float64(w), float64(h)
	var shape testOutline
	startX, startY := fw/2, fh/16
	shape.moveTo(startX, startY)
	shape.lineTo(startX, fh - fh/16)
	shape.lineTo(rng.Float64()*fw, rng.Float64()*fh)
	return shape.build()
}

func randomQuad(rng *rand.Rand, w, h int) *outline.Outline {
	fw, fh := float64(w), float64(h)
	var shape testOutline
	startX, startY := fw/2, fh/16
	shape.moveTo(startX, startY)
	shape.lineTo(startX, fh - fh/16)
	shape.quadTo(rng.Float64()*fw, rng.Float64()*fh, startX, startY)
	return shape.build()
}

func randomSegments(rng *rand.Rand, lines, w, h int) *outline.Outline {
	fw, fh := float64(w), float64(h)
	var makeXY = func() (float64, float64) {
		return rng.Float64()*fw, rng.Float64()*fh
	}

	var shape testOutline
	shape.moveTo(makeXY())
	for i := 0; i < lines; i++ {
		x, y := makeXY()
		switch rng.Intn(3) {
		case 0: // LineTo
			shape.lineTo(x, y)
		case 1: // QuadTo
			cx, cy := makeXY()
			shape.quadTo(cx, cy, x, y)
		case 2: // CubeTo
			cx1, cy1 := makeXY()
			cx2, cy2 := makeXY()
			shape.cubeTo(cx1, cy1, cx2, cy2, x, y)
		default:
			panic("unexpected case")
		}
	}
	return shape.build()
}

func polyOutline(coords ...float64) *outline.Outline {
	if len(coords) % 2 != 0 { panic("number of coordinates must be even") }
	if len(coords) < 6 { panic("number of coordinates must be at least 6 (three points)") }

	var shape testOutline
	shape.moveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		shape.lineTo(coords[i], coords[i + 1])
	}
	return shape.build()
}
