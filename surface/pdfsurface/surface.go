package pdfsurface

import "io"
import "math"
import "image"
import imgcolor "image/color"

import "seehuhn.de/go/geom/matrix"
import "seehuhn.de/go/pdf"
import "seehuhn.de/go/pdf/document"
import "seehuhn.de/go/pdf/graphics/color"

import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

// A4 page size in points.
const (
	A4Width  = 595.276
	A4Height = 841.890
)

// Surface is a vector surface over a single PDF page. The page is
// written when the surface is closed.
type Surface struct {
	surface.Base
	page *document.Page
	width float64
	height float64
}

var _ surface.Surface = (*Surface)(nil)

// Creates a surface writing a page of the given size (in points) to w.
func New(w io.Writer, width, height float64) (*Surface, error) {
	page, err := document.WriteSinglePage(w, &pdf.Rectangle{ URx: width, URy: height }, pdf.V1_7, nil)
	if err != nil { return nil, err }
	return newSurface(page, width, height), nil
}

// Creates a surface writing a page of the given size to a new file.
func Create(path string, width, height float64) (*Surface, error) {
	page, err := document.CreateSinglePage(path, &pdf.Rectangle{ URx: width, URy: height }, pdf.V1_7, nil)
	if err != nil { return nil, err }
	return newSurface(page, width, height), nil
}

func newSurface(page *document.Page, width, height float64) *Surface {
	s := &Surface{ page: page, width: width, height: height }
	s.Init(s, &helveticaText{ surface: s })
	return s
}

func (self *Surface) Capability() surface.Capability { return surface.Vector }
func (self *Surface) DPI() float64 { return 72 }
func (self *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(math.Ceil(self.width)), int(math.Ceil(self.height)))
}

// Returns the underlying page, for drawing operations
// not covered by the surface contract.
func (self *Surface) Page() *document.Page { return self.page }

func (self *Surface) FillRect(rect image.Rectangle, c imgcolor.Color) error {
	if self.Closed() { return surface.ErrClosed }
	self.page.PushGraphicsState()
	self.page.SetFillColor(deviceColor(c))
	self.page.Rectangle(float64(rect.Min.X), self.height - float64(rect.Max.Y), float64(rect.Dx()), float64(rect.Dy()))
	self.page.Fill()
	self.page.PopGraphicsState()
	return self.page.Err
}

// Fills the given contours with the nonzero winding rule. Quadratic
// segments are raised to cubics.
func (self *Surface) FillPath(contours []outline.Contour, c imgcolor.Color) error {
	if self.Closed() { return surface.ErrClosed }
	if len(contours) == 0 { return nil }

	self.page.PushGraphicsState()
	self.page.SetFillColor(deviceColor(c))
	for _, contour := range contours {
		current := contour.Start
		self.page.MoveTo(current.X, self.height - current.Y)
		for _, segment := range contour.Segments {
			switch segment.Op {
			case outline.OpLineTo:
				pt := segment.Points[0]
				self.page.LineTo(pt.X, self.height - pt.Y)
			case outline.OpQuadTo:
				ctrl, pt := segment.Points[0], segment.Points[1]
				c1x, c1y := current.X + (ctrl.X - current.X)*2/3, current.Y + (ctrl.Y - current.Y)*2/3
				c2x, c2y := pt.X + (ctrl.X - pt.X)*2/3, pt.Y + (ctrl.Y - pt.Y)*2/3
				self.page.CurveTo(c1x, self.height - c1y, c2x, self.height - c2y, pt.X, self.height - pt.Y)
			case outline.OpCubeTo:
				c1, c2, pt := segment.Points[0], segment.Points[1], segment.Points[2]
				self.page.CurveTo(c1.X, self.height - c1.Y, c2.X, self.height - c2.Y, pt.X, self.height - pt.Y)
			}
			current = segment.End()
		}
		self.page.ClosePath()
	}
	self.page.Fill()
	self.page.PopGraphicsState()
	return self.page.Err
}

func (self *Surface) BlitMask(*image.Alpha, image.Point, imgcolor.Color) error {
	if self.Closed() { return surface.ErrClosed }
	return surface.ErrUnsupported
}

// Writes the page and closes the surface.
func (self *Surface) Close() error {
	err := self.MarkClosed()
	if err != nil { return err }
	return self.page.Close()
}

// PDF device colors don't carry alpha; the color is un-premultiplied.
func deviceColor(c imgcolor.Color) color.Color {
	if c == nil { return color.DeviceRGB(0, 0, 0) }
	nrgba := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return color.DeviceRGB(float64(nrgba.R)/255, float64(nrgba.G)/255, float64(nrgba.B)/255)
}

// Maps a y-down surface point into a PDF text matrix rotated
// counterclockwise by the given degrees.
func (self *Surface) textMatrix(x, y, degrees float64) matrix.Matrix {
	sin, cos := math.Sincos(degrees*math.Pi/180)
	return matrix.Matrix{ cos, sin, -sin, cos, x, self.height - y }
}
