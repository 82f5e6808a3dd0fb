package showtxt

import "image"
import "testing"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Returns a face cache with Go Regular and Go Bold loaded.
func newTestFaces(t *testing.T) (*font.Cache, font.FaceID, font.FaceID) {
	t.Helper()
	faces := font.NewCache()
	regular, err := faces.LoadBytes("goregular", goregular.TTF, "", font.Regular)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	bold, err := faces.LoadBytes("gobold", gobold.TTF, "", font.Bold)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	return faces, regular, bold
}

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, font.FaceID) {
	t.Helper()
	faces, regular, _ := newTestFaces(t)
	return NewRenderer(faces, opts...), regular
}

func opKinds(ops []surface.Op) []surface.OpKind {
	kinds := make([]surface.OpKind, 0, len(ops))
	for _, op := range ops { kinds = append(kinds, op.Kind) }
	return kinds
}

// Returns the union of the control point bounds of all the contours.
func contoursBounds(contours []outline.Contour) outline.Rect {
	glyph := outline.Outline{ Contours: contours }
	return glyph.Bounds()
}

func rectWithin(rect outline.Rect, bounds image.Rectangle) bool {
	return rect.Min.X >= float64(bounds.Min.X) && rect.Min.Y >= float64(bounds.Min.Y) &&
		rect.Max.X <= float64(bounds.Max.X) && rect.Max.Y <= float64(bounds.Max.Y)
}
