// Package ebitensurface provides a raster surface over an
// [*ebiten.Image]. The native text drawer uses Ebitengine's debug
// print function, which only supports a fixed 6x16 bitmap font.
package ebitensurface

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"

import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

// Size of the glyphs used by ebitenutil.DebugPrintAt.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// Surface is a raster surface drawing on an Ebitengine image.
type Surface struct {
	surface.Base
	target *ebiten.Image
	dpi float64
	scale float64
}

var _ surface.Surface = (*Surface)(nil)

// Creates a surface drawing on the given target. The scale is the
// device scale factor (ebiten.DeviceScaleFactor()), which is applied
// on top of the 96 DPI logical resolution.
func New(target *ebiten.Image, scale float64) *Surface {
	if scale <= 0 { scale = 1 }
	s := &Surface{ target: target, dpi: 96*scale, scale: scale }
	s.Init(s, debugText{ surface: s })
	return s
}

func (self *Surface) Capability() surface.Capability { return surface.Raster }
func (self *Surface) DPI() float64 { return self.dpi }
func (self *Surface) Bounds() image.Rectangle { return self.target.Bounds() }

// Returns the underlying target.
func (self *Surface) Target() *ebiten.Image { return self.target }

// Sets a new target image, e.g. the screen passed to Game.Draw().
func (self *Surface) SetTarget(target *ebiten.Image) { self.target = target }

func (self *Surface) FillRect(rect image.Rectangle, c color.Color) error {
	if self.Closed() { return surface.ErrClosed }
	rect = rect.Intersect(self.target.Bounds())
	if rect.Empty() { return nil }
	self.target.SubImage(rect).(*ebiten.Image).Fill(c)
	return nil
}

func (self *Surface) FillPath([]outline.Contour, color.Color) error {
	if self.Closed() { return surface.ErrClosed }
	return surface.ErrUnsupported
}

func (self *Surface) BlitMask(mask *image.Alpha, at image.Point, c color.Color) error {
	if self.Closed() { return surface.ErrClosed }
	if mask == nil { return nil }

	glyph := convertAlphaToImage(mask)
	defer glyph.Dispose()
	opts := ebiten.DrawImageOptions{}
	srcRect := mask.Bounds()
	opts.GeoM.Translate(float64(at.X + srcRect.Min.X), float64(at.Y + srcRect.Min.Y))
	opts.ColorM.Scale(colorToFloat64(c))
	self.target.DrawImage(glyph, &opts)
	return nil
}

func (self *Surface) Close() error { return self.MarkClosed() }

// Convert a color to its float64 [0, 1.0] components.
func colorToFloat64(subject color.Color) (float64, float64, float64, float64) {
	rgbaColor, isRGBA := subject.(color.RGBA)
	if isRGBA {
		r, g, b, a := rgbaColor.R, rgbaColor.G, rgbaColor.B, rgbaColor.A
		return float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255
	} else {
		r, g, b, a := subject.RGBA()
		return float64(r)/65535, float64(g)/65535, float64(b)/65535, float64(a)/65535
	}
}

// Ebitengine doesn't have good support for alpha images, so
// the mask is expanded to white premultiplied RGBA.
func convertAlphaToImage(alpha *image.Alpha) *ebiten.Image {
	rgba   := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index  := 0
	for _, value := range alpha.Pix {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	return ebiten.NewImageFromImageWithOptions(rgba, &ebiten.NewImageFromImageOptions{ PreserveBounds: true })
}

// ---- native text ----

type debugText struct { surface *Surface }

func (self debugText) DrawText(_ surface.Surface, req *surface.TextRequest) (surface.Pen, error) {
	if req.Rotation != 0 { return surface.Pen{ X: req.X, Y: req.Y }, surface.ErrUnsupported }
	// debug text is drawn from its top-left corner
	ebitenutil.DebugPrintAt(self.surface.target, req.Text, int(req.X), int(req.Y) - debugGlyphHeight)
	width, _ := self.MeasureText(nil, req)
	return surface.Pen{ X: req.X + width, Y: req.Y }, nil
}

func (self debugText) MeasureText(_ surface.Surface, req *surface.TextRequest) (float64, error) {
	return float64(len([]rune(req.Text))*debugGlyphWidth), nil
}

func (self debugText) GlyphMetrics(surface.Surface, *surface.TextRequest, rune) (surface.Metrics, error) {
	return surface.Metrics{ Ascent: 12, Descent: 4, Width: debugGlyphWidth }, nil
}
