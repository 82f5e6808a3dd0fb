package surface

import "image"
import "image/color"

import "github.com/tinne26/showtxt/outline"

// Recorded operation kinds.
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpFillPath
	OpBlitMask
	OpNativeText
)

func (self OpKind) String() string {
	switch self {
	case OpFillRect  : return "FillRect"
	case OpFillPath  : return "FillPath"
	case OpBlitMask  : return "BlitMask"
	case OpNativeText: return "NativeText"
	default:
		return "Unknown"
	}
}

// A single recorded operation. Only the fields relevant
// to the operation kind are set.
type Op struct {
	Kind OpKind
	Color color.RGBA
	Rect image.Rectangle // FillRect
	Contours []outline.Contour // FillPath
	Mask *image.Alpha // BlitMask
	At image.Point // BlitMask
	Text string // NativeText
	Origin Pen // NativeText
	Size float64 // NativeText, in surface units
}

// Recorder is an in-memory surface that stores the operations it
// receives. It's mainly useful for tests, previews and SVG export.
// Its native text drawer records text operations with nominal
// monospace metrics.
type Recorder struct {
	Base
	bounds image.Rectangle
	dpi float64
	capability Capability
	ops []Op
}

var _ Surface = (*Recorder)(nil)

// Creates a new recorder. Surface units are 1/dpi inches (or
// points if dpi is zero).
func NewRecorder(bounds image.Rectangle, dpi float64, capability Capability) *Recorder {
	recorder := &Recorder{ bounds: bounds, dpi: dpi, capability: capability }
	recorder.Init(recorder, recorderText{ recorder })
	return recorder
}

func (self *Recorder) Capability() Capability { return self.capability }
func (self *Recorder) DPI() float64 { return self.dpi }
func (self *Recorder) Bounds() image.Rectangle { return self.bounds }

// Returns the recorded operations. The slice must not be modified.
func (self *Recorder) Ops() []Op { return self.ops }

// Returns the recorded operations of the given kind.
func (self *Recorder) OpsOf(kind OpKind) []Op {
	var ops []Op
	for _, op := range self.ops {
		if op.Kind == kind { ops = append(ops, op) }
	}
	return ops
}

// Discards all the recorded operations.
func (self *Recorder) Reset() { self.ops = self.ops[ : 0] }

func (self *Recorder) FillRect(rect image.Rectangle, c color.Color) error {
	if self.Closed() { return ErrClosed }
	self.ops = append(self.ops, Op{ Kind: OpFillRect, Rect: rect, Color: toRGBA(c) })
	return nil
}

func (self *Recorder) FillPath(contours []outline.Contour, c color.Color) error {
	if self.Closed() { return ErrClosed }
	if !self.capability.IsVector() { return ErrUnsupported }
	self.ops = append(self.ops, Op{ Kind: OpFillPath, Contours: contours, Color: toRGBA(c) })
	return nil
}

func (self *Recorder) BlitMask(mask *image.Alpha, at image.Point, c color.Color) error {
	if self.Closed() { return ErrClosed }
	if !self.capability.IsRaster() { return ErrUnsupported }
	self.ops = append(self.ops, Op{ Kind: OpBlitMask, Mask: mask, At: at, Color: toRGBA(c) })
	return nil
}

func (self *Recorder) Close() error { return self.MarkClosed() }

// ---- native text ----

const nominalAdvance = 0.6 // em

type recorderText struct { recorder *Recorder }

func (self recorderText) DrawText(_ Surface, req *TextRequest) (Pen, error) {
	size := nativeSize(req.Size, self.recorder.dpi)
	self.recorder.ops = append(self.recorder.ops, Op{
		Kind: OpNativeText,
		Color: req.RGBA(),
		Text: req.Text,
		Origin: Pen{ req.X, req.Y },
		Size: size,
	})
	width := float64(len([]rune(req.Text)))*size*nominalAdvance
	return Pen{ req.X + width, req.Y }, nil
}

func (self recorderText) MeasureText(_ Surface, req *TextRequest) (float64, error) {
	size := nativeSize(req.Size, self.recorder.dpi)
	return float64(len([]rune(req.Text)))*size*nominalAdvance, nil
}

func (self recorderText) GlyphMetrics(_ Surface, req *TextRequest, _ rune) (Metrics, error) {
	size := nativeSize(req.Size, self.recorder.dpi)
	return Metrics{ Ascent: size*0.8, Descent: size*0.2, Width: size*nominalAdvance }, nil
}

// Converts a point size to surface units.
func nativeSize(points, dpi float64) float64 {
	if dpi <= 0 { return points }
	return points*dpi/72
}
