package outline

import "math"

import "github.com/tinne26/showtxt/affine"

// A point in design units (or in surface units, once transformed).
type Point struct {
	X float64
	Y float64
}

// Segment operation type.
type Op uint8

const (
	OpLineTo Op = iota // Points[0] is the target
	OpQuadTo           // Points[0] is the control, Points[1] the target
	OpCubeTo           // Points[0:2] are the controls, Points[2] the target
)

func (self Op) String() string {
	switch self {
	case OpLineTo: return "LineTo"
	case OpQuadTo: return "QuadTo"
	case OpCubeTo: return "CubeTo"
	default:
		return "Unknown"
	}
}

// A single outline segment. The segment starts at the end
// point of the previous segment (or the contour start).
type Segment struct {
	Op Op
	Points [3]Point
}

// Returns the target point of the segment.
func (self Segment) End() Point {
	switch self.Op {
	case OpQuadTo: return self.Points[1]
	case OpCubeTo: return self.Points[2]
	default:
		return self.Points[0]
	}
}

func (self Segment) numPoints() int { return int(self.Op) + 1 }

// A closed contour.
type Contour struct {
	Start Point
	Segments []Segment
}

// An axis-aligned bounding box.
type Rect struct {
	Min Point
	Max Point
}

// Returns whether the rect has no area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// The vector outline of a single glyph.
type Outline struct {
	Contours []Contour
	Advance float64 // horizontal advance, in design units
	UnitsPerEm int
	Index uint32 // glyph index within the font (0 for .notdef and synthesized boxes)
	Synthetic bool // set for outlines that don't come from the font
}

// Returns whether the outline has no contours to fill (e.g. a space).
func (self *Outline) IsBlank() bool {
	return len(self.Contours) == 0
}

// Returns the total number of segments across all contours.
func (self *Outline) SegmentCount() int {
	count := 0
	for _, contour := range self.Contours { count += len(contour.Segments) }
	return count
}

// Returns the bounding box of all the outline points, control
// points included. The result is empty for blank outlines.
func (self *Outline) Bounds() Rect {
	if self.IsBlank() { return Rect{} }
	minX, minY := math.Inf(+1), math.Inf(+1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	update := func(pt Point) {
		if pt.X < minX { minX = pt.X }
		if pt.Y < minY { minY = pt.Y }
		if pt.X > maxX { maxX = pt.X }
		if pt.Y > maxY { maxY = pt.Y }
	}
	for _, contour := range self.Contours {
		update(contour.Start)
		for _, segment := range contour.Segments {
			for i := 0; i < segment.numPoints(); i++ { update(segment.Points[i]) }
		}
	}
	return Rect{ Min: Point{minX, minY}, Max: Point{maxX, maxY} }
}

// Returns a deep copy of the outline.
func (self *Outline) Clone() *Outline {
	clone := *self
	clone.Contours = make([]Contour, len(self.Contours))
	for i, contour := range self.Contours {
		clone.Contours[i].Start = contour.Start
		clone.Contours[i].Segments = append([]Segment(nil), contour.Segments...)
	}
	return &clone
}

// Returns a copy of the outline with all its points mapped through
// the given transform. The advance is not modified; use
// [affine.Transform.ApplyVector] to transform advances.
func (self *Outline) Transform(transform affine.Transform) *Outline {
	out := self.Clone()
	apply := func(pt Point) Point {
		x, y := transform.Apply(pt.X, pt.Y)
		return Point{x, y}
	}
	for i := range out.Contours {
		contour := &out.Contours[i]
		contour.Start = apply(contour.Start)
		for j := range contour.Segments {
			segment := &contour.Segments[j]
			for k := 0; k < segment.numPoints(); k++ {
				segment.Points[k] = apply(segment.Points[k])
			}
		}
	}
	return out
}

// Helper to build outlines contour by contour.
type builder struct {
	contours []Contour
	open bool
}

func (self *builder) MoveTo(x, y float64) {
	self.Close()
	self.contours = append(self.contours, Contour{ Start: Point{x, y} })
	self.open = true
}

func (self *builder) LineTo(x, y float64) {
	self.add(Segment{ Op: OpLineTo, Points: [3]Point{{x, y}} })
}

func (self *builder) QuadTo(cx, cy, x, y float64) {
	self.add(Segment{ Op: OpQuadTo, Points: [3]Point{{cx, cy}, {x, y}} })
}

func (self *builder) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.add(Segment{ Op: OpCubeTo, Points: [3]Point{{cx1, cy1}, {cx2, cy2}, {x, y}} })
}

// Ends the current contour, dropping it if it has no segments.
func (self *builder) Close() {
	if !self.open { return }
	self.open = false
	last := len(self.contours) - 1
	if len(self.contours[last].Segments) == 0 {
		self.contours = self.contours[ : last]
	}
}

func (self *builder) add(segment Segment) {
	if !self.open { // implicit move to the previous end (or origin)
		var start Point
		if n := len(self.contours); n > 0 {
			contour := self.contours[n - 1]
			start = contour.Start
		}
		self.MoveTo(start.X, start.Y)
	}
	last := &self.contours[len(self.contours) - 1]
	last.Segments = append(last.Segments, segment)
}

func (self *builder) Contours() []Contour {
	self.Close()
	return self.contours
}
