package mask

import "math"
import "image"
import "errors"

import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/outline"

// Returned when an outline has nothing to rasterize and no advance,
// or when the transformed geometry is not finite.
var ErrDegenerateGeometry = errors.New("mask: degenerate geometry")

// Returned when the transformed outline would need an absurdly
// large mask (e.g. a huge point size).
var ErrMaskTooLarge = errors.New("mask: mask too large")

// Masks can't have more pixels than this.
const MaxMaskPixels = 1 << 26

// Rasterizer is an interface for glyph outline rasterization to an
// alpha mask. Rasterizers can't be used concurrently and must tolerate
// arbitrary transforms.
type Rasterizer interface {
	// Rasterizes the given outline after mapping it through the
	// given transform. The mask Rect must be expressed in the
	// transform's output coordinates, so a transform anchored at
	// a fractional pen position yields a mask relative to the
	// integer pen position.
	Rasterize(*outline.Outline, affine.Transform) (*image.Alpha, error)

	// The signature returns a uint64 that can be used with glyph caches
	// in order to tell rasterizers apart. Configuration changes that
	// affect the results must also change the signature.
	Signature() uint64
}

// Receiver of the path operations of a transformed outline.
type vectorTracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(ctrlX, ctrlY, x, y float64)
	CubeTo(cx1, cy1, cx2, cy2, x, y float64)
	ClosePath()
}

// Rasterizes the outline with the given rasterizer, handling the
// common edge cases first:
//  - Outlines without contours and without advance return
//    [ErrDegenerateGeometry].
//  - Blank outlines with an advance (e.g. spaces) return a nil mask.
func Rasterize(glyph *outline.Outline, transform affine.Transform, rasterizer Rasterizer) (*image.Alpha, error) {
	if glyph.IsBlank() {
		if glyph.Advance == 0 { return nil, ErrDegenerateGeometry }
		return nil, nil // nothing to draw
	}
	return rasterizer.Rasterize(glyph, transform)
}

// Transforms the outline and computes the integer mask rectangle
// covering it, including the one pixel margin.
func prepare(glyph *outline.Outline, transform affine.Transform) (*outline.Outline, image.Rectangle, error) {
	transformed := glyph.Transform(transform)
	bounds := transformed.Bounds()
	if !isFinite(bounds.Min.X) || !isFinite(bounds.Min.Y) || !isFinite(bounds.Max.X) || !isFinite(bounds.Max.Y) {
		return nil, image.Rectangle{}, ErrDegenerateGeometry
	}

	const margin = 1
	rect := image.Rect(
		int(math.Floor(bounds.Min.X)) - margin, int(math.Floor(bounds.Min.Y)) - margin,
		int(math.Ceil(bounds.Max.X))  + margin, int(math.Ceil(bounds.Max.Y))  + margin,
	)
	if rect.Dx()*rect.Dy() > MaxMaskPixels {
		return nil, image.Rectangle{}, ErrMaskTooLarge
	}
	return transformed, rect, nil
}

// Calls the tracer methods for each contour and segment of the
// (already transformed) outline, shifting all points by the given
// offset. Contours are closed explicitly.
func processOutline(tracer vectorTracer, glyph *outline.Outline, offsetX, offsetY float64) {
	for _, contour := range glyph.Contours {
		tracer.MoveTo(contour.Start.X + offsetX, contour.Start.Y + offsetY)
		for _, segment := range contour.Segments {
			pts := segment.Points
			switch segment.Op {
			case outline.OpLineTo:
				tracer.LineTo(pts[0].X + offsetX, pts[0].Y + offsetY)
			case outline.OpQuadTo:
				tracer.QuadTo(
					pts[0].X + offsetX, pts[0].Y + offsetY,
					pts[1].X + offsetX, pts[1].Y + offsetY,
				)
			case outline.OpCubeTo:
				tracer.CubeTo(
					pts[0].X + offsetX, pts[0].Y + offsetY,
					pts[1].X + offsetX, pts[1].Y + offsetY,
					pts[2].X + offsetX, pts[2].Y + offsetY,
				)
			default:
				panic("unexpected segment.Op case")
			}
		}
		tracer.ClosePath()
	}
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
