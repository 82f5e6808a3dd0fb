package mask

import "math"

// The core of the [EdgeMarkerRasterizer]. It marks the outline
// boundaries that cross the raster buffer vertically, leaving the
// accumulation step to the buffer itself.
type edgeMarker struct {
	x float64 // current drawing point position
	y float64 // current drawing point position
	startX float64 // current contour start
	startY float64 // current contour start
	Buffer buffer
	Flattener flattener
}

// Moves the current position to the given coordinates.
func (self *edgeMarker) MoveTo(x, y float64) {
	self.x, self.y = x, y
	self.startX, self.startY = x, y
}

// Creates a straight boundary from the current position to the given
// target and moves the current position to the new one.
//
// While the 'LineTo' name is used to stay consistent with other similar
// interfaces, don't think in terms of "drawing lines"; we are defining
// the boundaries of an outline.
func (self *edgeMarker) LineTo(x, y float64) {
	// changes in y equal or below this threshold are considered 0.
	// this is bigger than 0 in order to account for floating point
	// division instability
	const HorizontalityThreshold = 0.000001

	// when we are done, set the new current position
	defer self.moveCursor(x, y)

	// if the y doesn't change, we are marking an horizontal boundary...
	// but horizontal boundaries don't have to be marked
	deltaX := x - self.x
	deltaY := y - self.y
	if math.Abs(deltaY) <= HorizontalityThreshold { return }
	xAdvancePerY := deltaX/deltaY

	// mark boundaries for every pixel that we pass through
	for {
		// get next whole position in the current direction
		nextX := nextWholeCoord(self.x, deltaX)
		nextY := nextWholeCoord(self.y, deltaY)

		// check if we reached targets and clamp
		atHorzTarget := hasReachedTarget(nextX, x, deltaX)
		atVertTarget := hasReachedTarget(nextY, y, deltaY)
		if atHorzTarget { nextX = x }
		if atVertTarget { nextY = y }

		// determine which whole coordinate we reach first
		horzAdvance := nextX - self.x
		vertAdvance := nextY - self.y
		altHorzAdvance := xAdvancePerY*vertAdvance
		if math.Abs(altHorzAdvance) <= math.Abs(horzAdvance) {
			horzAdvance = altHorzAdvance
		} else { // (notice that here xAdvancePerY can't be 0)
			vertAdvance = horzAdvance/xAdvancePerY
		}

		// mark the boundary segment traversing the vertical axis
		// at the current pixel and advance
		self.markBoundary(self.x, self.y, horzAdvance, vertAdvance)
		self.x += horzAdvance
		self.y += vertAdvance
		if atHorzTarget && atVertTarget { return }
	}
}

// Creates a quadratic Bézier boundary by segmenting the curve.
func (self *edgeMarker) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.Flattener.FlattenQuad(self.LineTo, self.x, self.y, ctrlX, ctrlY, x, y)
}

// Creates a cubic Bézier boundary by segmenting the curve.
func (self *edgeMarker) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.Flattener.FlattenCube(self.LineTo, self.x, self.y, cx1, cy1, cx2, cy2, x, y)
}

// Closes the current contour with a straight boundary.
func (self *edgeMarker) ClosePath() {
	if self.x != self.startX || self.y != self.startY {
		self.LineTo(self.startX, self.startY)
	}
}

func (self *edgeMarker) moveCursor(x, y float64) {
	self.x, self.y = x, y
}

func (self *edgeMarker) markBoundary(x, y, horzAdvance, vertAdvance float64) {
	// find the pixel position on which we have to mark the boundary
	col := intFloorOfSegment(x, horzAdvance)
	row := intFloorOfSegment(y, vertAdvance)

	// stop if going outside bounds (except for negative x
	// coords, which have to be applied anyway as they accumulate)
	if row < 0 || row >= self.Buffer.Height { return }
	if col >= self.Buffer.Width { return }

	// negative columns apply the whole change to the first column
	width := self.Buffer.Width
	if col < 0 {
		self.Buffer.Values[row*width] += vertAdvance
		return
	}

	// the change is split between the current pixel and the next
	// one, depending on how much of the pixel is covered
	totalChange := vertAdvance
	var partialChange float64
	if horzAdvance >= 0 {
		partialChange = (1 - (x - math.Floor(x) + horzAdvance/2))*vertAdvance
	} else { // horzAdvance < 0
		partialChange = (math.Ceil(x) - x - horzAdvance/2)*vertAdvance
	}

	self.Buffer.Values[row*width + col] += partialChange
	if col + 1 < width {
		self.Buffer.Values[row*width + col + 1] += (totalChange - partialChange)
	}
}

func hasReachedTarget(current float64, limit float64, deltaSign float64) bool {
	if deltaSign >= 0 { return current >= limit }
	return current <= limit
}

func nextWholeCoord(position float64, deltaSign float64) float64 {
	if deltaSign == 0 { return position }
	if deltaSign > 0 {
		ceil := math.Ceil(position)
		if ceil != position { return ceil }
		return ceil + 1.0
	} else { // deltaSign < 0
		floor := math.Floor(position)
		if floor != position { return floor }
		return floor - 1
	}
}

func intFloorOfSegment(start, advance float64) int {
	floor := math.Floor(start)
	if advance >= 0 { return int(floor) }
	if floor != start { return int(floor) }
	return int(floor) - 1
}
