package surface

import "image"
import "errors"
import "image/color"
import "sync/atomic"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/outline"

// Returned by surfaces when asked to perform an operation they
// don't support (e.g. filling a path on a raster-only surface).
var ErrUnsupported = errors.New("surface: unsupported operation")

// Returned by any operation on a closed surface.
var ErrClosed = errors.New("surface: surface is closed")

// Capability flags. Surfaces can be vector, raster or both.
type Capability uint8

const (
	Raster Capability = 1 << iota
	Vector
	Both = Raster | Vector
)

// Returns whether the capability includes vector filling.
func (self Capability) IsVector() bool { return self & Vector != 0 }

// Returns whether the capability includes raster blitting.
func (self Capability) IsRaster() bool { return self & Raster != 0 }

func (self Capability) String() string {
	switch self {
	case Raster: return "Raster"
	case Vector: return "Vector"
	case Both  : return "Both"
	default:
		return "None"
	}
}

// Unique surface identifier within the process.
type ID uint64

var pkgNextID uint64

// Returns a new, never used surface id.
func NextID() ID { return ID(atomic.AddUint64(&pkgNextID, 1)) }

// A pen position in surface units.
type Pen struct {
	X float64
	Y float64
}

// A text draw or measure request. The face is given either by id,
// or by family and style when Face is zero.
type TextRequest struct {
	Text string
	X, Y float64 // baseline origin, in surface units
	Face font.FaceID
	Family string
	Style font.Style
	Size float64 // in points
	Rotation float64 // in degrees, counterclockwise
	Color color.Color // nil means opaque black
}

// Returns the request color, defaulting to opaque black.
func (self *TextRequest) RGBA() color.RGBA {
	if self.Color == nil { return color.RGBA{0, 0, 0, 255} }
	return toRGBA(self.Color)
}

// Glyph or line metrics, in surface units. Ascent and descent
// are positive distances from the baseline.
type Metrics struct {
	Ascent float64
	Descent float64
	Width float64
}

// The strategy slot used by surfaces to draw and measure text.
// Drawers get the surface they operate on as the first argument.
type TextDrawer interface {
	DrawText(Surface, *TextRequest) (Pen, error)
	MeasureText(Surface, *TextRequest) (float64, error)
	GlyphMetrics(Surface, *TextRequest, rune) (Metrics, error)
}

// The host surface contract. Surfaces can't be used concurrently.
type Surface interface {
	ID() ID
	Capability() Capability
	DPI() float64 // zero if the surface doesn't care
	Bounds() image.Rectangle

	// strategy slot
	TextDrawer() TextDrawer
	SetTextDrawer(TextDrawer)

	// text entry points, routed through the current TextDrawer
	DrawText(*TextRequest) (Pen, error)
	MeasureText(*TextRequest) (float64, error)
	GlyphMetrics(*TextRequest, rune) (Metrics, error)

	// primitives
	FillRect(image.Rectangle, color.Color) error
	FillPath([]outline.Contour, color.Color) error
	BlitMask(mask *image.Alpha, at image.Point, c color.Color) error

	Close() error
	Closed() bool
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, isRGBA := c.(color.RGBA); isRGBA { return rgba }
	r, g, b, a := c.RGBA()
	return color.RGBA{ uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8) }
}
