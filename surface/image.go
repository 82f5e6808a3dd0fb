package surface

import "image"
import "image/draw"
import "image/color"

import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/showtxt/outline"

// Image is a raster surface over a [draw.Image]. Masks are composited
// with source-over blending. Its native text drawer uses the fixed
// 7x13 bitmap face from [basicfont], which ignores sizes and can't
// rotate.
type Image struct {
	Base
	target draw.Image
	dpi float64
}

var _ Surface = (*Image)(nil)

// Creates a raster surface drawing on the given target. The dpi
// is reported to the text drawers; zero lets them pick a default.
func NewImage(target draw.Image, dpi float64) *Image {
	surface := &Image{ target: target, dpi: dpi }
	surface.Init(surface, imageText{ surface })
	return surface
}

func (self *Image) Capability() Capability { return Raster }
func (self *Image) DPI() float64 { return self.dpi }
func (self *Image) Bounds() image.Rectangle { return self.target.Bounds() }

// Returns the underlying target image.
func (self *Image) Target() draw.Image { return self.target }

func (self *Image) FillRect(rect image.Rectangle, c color.Color) error {
	if self.Closed() { return ErrClosed }
	draw.Draw(self.target, rect, image.NewUniform(c), image.Point{}, draw.Over)
	return nil
}

func (self *Image) FillPath([]outline.Contour, color.Color) error {
	if self.Closed() { return ErrClosed }
	return ErrUnsupported
}

// Draws the given color through the mask. The mask rect is
// relative to the given integer position.
func (self *Image) BlitMask(mask *image.Alpha, at image.Point, c color.Color) error {
	if self.Closed() { return ErrClosed }
	if mask == nil { return nil }

	// compute src and target rects within bounds
	srcRect := mask.Rect
	targetRect := self.target.Bounds().Intersect(srcRect.Add(at))
	if targetRect.Empty() { return nil }
	srcRect = targetRect.Sub(at)
	mixImageInto(mask, self.target, srcRect, targetRect, c)
	return nil
}

func (self *Image) Close() error { return self.MarkClosed() }

// Straightforward per-pixel source-over composition.
func mixImageInto(src *image.Alpha, target draw.Image, srcRect, tarRect image.Rectangle, mainColor color.Color) {
	width  := srcRect.Dx()
	height := srcRect.Dy()
	srcOffX := srcRect.Min.X
	srcOffY := srcRect.Min.Y
	tarOffX := tarRect.Min.X
	tarOffY := tarRect.Min.Y

	r, g, b, a := mainColor.RGBA()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			level := uint32(src.AlphaAt(srcOffX + x, srcOffY + y).A)
			if level == 0 { continue }

			// mask level applied to the premultiplied color
			newColor := color.RGBA64{
				R: uint16(r*level/255),
				G: uint16(g*level/255),
				B: uint16(b*level/255),
				A: uint16(a*level/255),
			}
			currColor := target.At(tarOffX + x, tarOffY + y)
			target.Set(tarOffX + x, tarOffY + y, blendOver(newColor, currColor))
		}
	}
}

func blendOver(new color.RGBA64, curr color.Color) color.Color {
	nr, ng, nb, na := uint32(new.R), uint32(new.G), uint32(new.B), uint32(new.A)
	if na == 0xFFFF { return new }
	if na == 0      { return curr }
	cr, cg, cb, ca := curr.RGBA()
	if ca == 0      { return new }

	return color.RGBA64{
		R: uint16N(nr + cr*(0xFFFF - na)/0xFFFF),
		G: uint16N(ng + cg*(0xFFFF - na)/0xFFFF),
		B: uint16N(nb + cb*(0xFFFF - na)/0xFFFF),
		A: uint16N(na + ca*(0xFFFF - na)/0xFFFF),
	}
}

func uint16N(value uint32) uint16 {
	if value > 65535 { return 65535 }
	return uint16(value)
}

// ---- native text ----

type imageText struct { surface *Image }

func (self imageText) DrawText(_ Surface, req *TextRequest) (Pen, error) {
	if req.Rotation != 0 { return Pen{ req.X, req.Y }, ErrUnsupported }
	drawer := font.Drawer{
		Dst: self.surface.target,
		Src: image.NewUniform(req.RGBA()),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{ X: fixed.Int26_6(req.X*64), Y: fixed.Int26_6(req.Y*64) },
	}
	drawer.DrawString(req.Text)
	return Pen{ float64(drawer.Dot.X)/64, float64(drawer.Dot.Y)/64 }, nil
}

func (self imageText) MeasureText(_ Surface, req *TextRequest) (float64, error) {
	return float64(font.MeasureString(basicfont.Face7x13, req.Text))/64, nil
}

func (self imageText) GlyphMetrics(_ Surface, _ *TextRequest, code rune) (Metrics, error) {
	face := basicfont.Face7x13
	advance, found := face.GlyphAdvance(code)
	if !found { return Metrics{}, ErrUnsupported }
	metrics := face.Metrics()
	return Metrics{
		Ascent: float64(metrics.Ascent)/64,
		Descent: float64(metrics.Descent)/64,
		Width: float64(advance)/64,
	}, nil
}
