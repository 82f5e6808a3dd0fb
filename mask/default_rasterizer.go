package mask

import "image"
import "image/draw"
import "golang.org/x/image/vector"

import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/outline"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, so outlines are shifted by the mask origin.
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

func (self *DefaultRasterizer) MoveTo(x, y float64) {
	self.rasterizer.MoveTo(float32(x), float32(y))
}

func (self *DefaultRasterizer) LineTo(x, y float64) {
	self.rasterizer.LineTo(float32(x), float32(y))
}

func (self *DefaultRasterizer) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.rasterizer.QuadTo(float32(ctrlX), float32(ctrlY), float32(x), float32(y))
}

func (self *DefaultRasterizer) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.rasterizer.CubeTo(
		float32(cx1), float32(cy1), float32(cx2), float32(cy2), float32(x), float32(y),
	)
}

func (self *DefaultRasterizer) ClosePath() {
	self.rasterizer.ClosePath()
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(glyph *outline.Outline, transform affine.Transform) (*image.Alpha, error) {
	transformed, rect, err := prepare(glyph, transform)
	if err != nil { return nil, err }

	// prepare rasterizer
	self.rasterizer.Reset(rect.Dx(), rect.Dy())
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask and process outline
	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, transformed, -float64(rect.Min.X), -float64(rect.Min.Y))

	// since the source texture is a uniform (an image that returns the same
	// color for any coordinate), the value of the point at which we want to
	// start sampling the texture (the fourth parameter) is unimportant.
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = rect
	return mask, nil
}
