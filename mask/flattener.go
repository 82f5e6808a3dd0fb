package mask

// Splits Bézier curves into straight boundaries for rasterizers
// that only handle lines. Curves are halved (de Casteljau at t = 0.5)
// until the control points lie within the tolerance distance of the
// chord, or until the maximum depth is reached.
//
// Subdivision uses an explicit stack instead of recursion, so the
// flattener can be reused without allocations after warming up.
type flattener struct {
	toleranceMillis uint16 // tolerance in thousandths of a pixel
	maxDepth uint8
	tolerance2 float64 // squared tolerance, cached
	stack []pendingCurve
}

type pendingCurve struct {
	x0, y0 float64
	x1, y1 float64 // first control point
	x2, y2 float64 // second control point, unused for quads
	x3, y3 float64 // end point
	depth uint8
}

// Returns a 24 bit signature of the configuration: the tolerance
// in thousandths on the lowest 16 bits, max depth on the next 8.
func (self *flattener) Signature() uint64 {
	return uint64(self.toleranceMillis) | (uint64(self.maxDepth) << 16)
}

// Sets the maximum distance between the curve and the straight
// boundaries approximating it. Values are clamped to [0, 6.5] and
// truncated to three decimal places.
func (self *flattener) SetTolerance(dist float64) {
	dist = min(max(dist, 0), 6.5)
	self.toleranceMillis = uint16(dist*1000)
	tolerance := float64(self.toleranceMillis)/1000
	self.tolerance2 = tolerance*tolerance
}

// Sets the maximum number of times a curve can be halved. A curve
// is approximated by at most 2^maxDepth lines. Values are clamped
// to [0, 255].
func (self *flattener) SetMaxDepth(maxDepth int) {
	self.maxDepth = uint8(min(max(maxDepth, 0), 255))
}

type lineToFunc = func(x, y float64)

// Flattens the quadratic curve from (x, y) to (fx, fy), calling
// lineTo for each boundary end point in order.
func (self *flattener) FlattenQuad(lineTo lineToFunc, x, y, ctrlX, ctrlY, fx, fy float64) {
	self.stack = append(self.stack[ : 0], pendingCurve{
		x0: x, y0: y, x1: ctrlX, y1: ctrlY, x3: fx, y3: fy,
	})
	for len(self.stack) > 0 {
		curve := self.stack[len(self.stack) - 1]
		self.stack = self.stack[ : len(self.stack) - 1]
		if curve.depth >= self.maxDepth || self.isFlat(curve.x0, curve.y0, curve.x3, curve.y3, curve.x1, curve.y1) {
			lineTo(curve.x3, curve.y3)
			continue
		}

		ax, ay := lerp(curve.x0, curve.y0, curve.x1, curve.y1, 0.5)
		bx, by := lerp(curve.x1, curve.y1, curve.x3, curve.y3, 0.5)
		mx, my := lerp(ax, ay, bx, by, 0.5)
		depth := curve.depth + 1
		// second half pushed first so the first half is traced first
		self.stack = append(self.stack,
			pendingCurve{ x0: mx, y0: my, x1: bx, y1: by, x3: curve.x3, y3: curve.y3, depth: depth },
			pendingCurve{ x0: curve.x0, y0: curve.y0, x1: ax, y1: ay, x3: mx, y3: my, depth: depth },
		)
	}
}

// Flattens the cubic curve from (x, y) to (fx, fy), calling
// lineTo for each boundary end point in order.
func (self *flattener) FlattenCube(lineTo lineToFunc, x, y, cx1, cy1, cx2, cy2, fx, fy float64) {
	self.stack = append(self.stack[ : 0], pendingCurve{
		x0: x, y0: y, x1: cx1, y1: cy1, x2: cx2, y2: cy2, x3: fx, y3: fy,
	})
	for len(self.stack) > 0 {
		c := self.stack[len(self.stack) - 1]
		self.stack = self.stack[ : len(self.stack) - 1]
		if c.depth >= self.maxDepth || (self.isFlat(c.x0, c.y0, c.x3, c.y3, c.x1, c.y1) && self.isFlat(c.x0, c.y0, c.x3, c.y3, c.x2, c.y2)) {
			lineTo(c.x3, c.y3)
			continue
		}

		ax, ay := lerp(c.x0, c.y0, c.x1, c.y1, 0.5)
		bx, by := lerp(c.x1, c.y1, c.x2, c.y2, 0.5)
		cx, cy := lerp(c.x2, c.y2, c.x3, c.y3, 0.5)
		abx, aby := lerp(ax, ay, bx, by, 0.5)
		bcx, bcy := lerp(bx, by, cx, cy, 0.5)
		mx, my := lerp(abx, aby, bcx, bcy, 0.5)
		depth := c.depth + 1
		self.stack = append(self.stack,
			pendingCurve{ x0: mx, y0: my, x1: bcx, y1: bcy, x2: cx, y2: cy, x3: c.x3, y3: c.y3, depth: depth },
			pendingCurve{ x0: c.x0, y0: c.y0, x1: ax, y1: ay, x2: abx, y2: aby, x3: mx, y3: my, depth: depth },
		)
	}
}

// Reports whether (px, py) is within the tolerance distance of the
// line through (ox, oy) and (fx, fy).
func (self *flattener) isFlat(ox, oy, fx, fy, px, py float64) bool {
	a, b, c := toLinearFormABC(ox, oy, fx, fy)
	n := a*px + b*py + c
	return n*n <= self.tolerance2*(a*a + b*b)
}
