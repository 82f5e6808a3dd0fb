package mask

import "image"

import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/outline"

var _ Rasterizer = (*EdgeMarkerRasterizer)(nil)

// An alternative to [DefaultRasterizer] that avoids using
// [golang.org/x/image/vector.Rasterizer] under the hood. Results
// are visually very similar, but performance is worse.
//
// The zero-value will produce jaggy results, as curve segmentation
// parameters are not configured. Use [NewEdgeMarkerRasterizer]()
// for reasonable defaults, or configure the rasterizer through
// [EdgeMarkerRasterizer.SetCurveThreshold](0.1) and
// [EdgeMarkerRasterizer.SetMaxCurveSplits](8).
type EdgeMarkerRasterizer struct {
	rasterizer edgeMarker
}

// Creates an edge marker rasterizer with a curve threshold
// of 0.1 and up to 8 curve splits.
func NewEdgeMarkerRasterizer() *EdgeMarkerRasterizer {
	rasterizer := &EdgeMarkerRasterizer{}
	rasterizer.SetCurveThreshold(0.1)
	rasterizer.SetMaxCurveSplits(8)
	return rasterizer
}

// Sets the threshold distance to use when splitting Bézier curves into
// linear segments. If a linear segment misses the curve by more than
// the threshold value, the curve will be split. Otherwise, the linear
// segment will be used to approximate it.
//
// Reasonable values range from 0.01 to 1.0. Values outside the [0, 6.5]
// range will be silently clamped. Precision is truncated to three decimal
// places.
func (self *EdgeMarkerRasterizer) SetCurveThreshold(threshold float64) {
	self.rasterizer.Flattener.SetTolerance(threshold)
}

// Sets the maximum amount of times a curve can be recursively split
// into subsegments while trying to approximate it.
//
// The maximum number of segments that will approximate a curve is
// 2^maxCurveSplits. Values outside the [0, 255] range will be silently
// clamped. Reasonable values range from 0 to 10.
func (self *EdgeMarkerRasterizer) SetMaxCurveSplits(maxCurveSplits int) {
	self.rasterizer.Flattener.SetMaxDepth(maxCurveSplits)
}

// Satisfies the [Rasterizer] interface. The signature for the
// edge marker rasterizer has the following shape:
//   - 0xFF00000000000000 unused bits.
//   - 0x00FF000000000000 bits being 0xE6 (self signature byte).
//   - 0x0000FFFFFF000000 bits being zero, currently undefined.
//   - 0x0000000000FFFFFF bits representing the curve flattening configuration.
func (self *EdgeMarkerRasterizer) Signature() uint64 {
	return 0x00E6000000000000 | self.rasterizer.Flattener.Signature()
}

// Satisfies the [Rasterizer] interface.
func (self *EdgeMarkerRasterizer) Rasterize(glyph *outline.Outline, transform affine.Transform) (*image.Alpha, error) {
	transformed, rect, err := prepare(glyph, transform)
	if err != nil { return nil, err }

	buffer := &self.rasterizer.Buffer
	buffer.Resize(rect.Dx(), rect.Dy())
	processOutline(&self.rasterizer, transformed, -float64(rect.Min.X), -float64(rect.Min.Y))

	// allocate glyph mask and apply buffer accumulation
	mask := image.NewAlpha(image.Rect(0, 0, buffer.Width, buffer.Height))
	buffer.AccumulateInto(mask)
	mask.Rect = rect
	return mask, nil
}
