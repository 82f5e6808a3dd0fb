package showtxt

import "image"
import "errors"

import "github.com/tinne26/showtxt/mask"
import "github.com/tinne26/showtxt/fract"
import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/surface"

// Draws the text of the request on the given surface and returns the
// final pen position.
//
// On surfaces with vector capability, each visible glyph is emitted as
// a single [surface.Surface.FillPath] call containing all its contours.
// On raster-only surfaces, glyph masks are composited and blitted once
// for the whole text with [surface.Surface.BlitMask].
//
// Characters missing in the requested face go through the fallback
// chain and the missing glyph policy; they never abort the text.
// Errors returned by the surface primitives abort the draw.
func (self *Renderer) DrawText(target surface.Surface, req *surface.TextRequest) (surface.Pen, error) {
	if target == nil || target.Closed() { return surface.Pen{}, surface.ErrClosed }
	origin := surface.Pen{ X: req.X, Y: req.Y }
	if req.Text == "" { return origin, nil }

	op, err := self.prepare(target, req)
	if err != nil { return origin, err }
	text := normalizeText(req.Text, op.cfg.normalize)
	if op.capability.IsVector() {
		return self.drawVector(target, op, text, req.X, req.Y)
	}
	return self.drawRaster(target, op, text, req.X, req.Y)
}

func (self *Renderer) drawVector(target surface.Surface, op *textOp, text string, x, y float64) (surface.Pen, error) {
	return self.traverse(op, text, x, y,
		func(glyph glyphRef, transform affine.Transform, pen surface.Pen) error {
			if glyph.outline.IsBlank() { return nil }
			placed := glyph.outline.Transform(transform.Anchor(pen.X, pen.Y))
			return target.FillPath(placed.Contours, op.color)
		})
}

func (self *Renderer) drawRaster(target surface.Surface, op *textOp, text string, x, y float64) (surface.Pen, error) {
	horzQuant, vertQuant := op.cfg.horzQuant, op.cfg.vertQuant
	var masks []*image.Alpha
	pen, err := self.traverse(op, text, x, y,
		func(glyph glyphRef, transform affine.Transform, pen surface.Pen) error {
			if glyph.outline.IsBlank() { return nil }
			position := fract.Float64sToPoint(pen.X, pen.Y).Quantize(horzQuant, vertQuant)
			whole, fraction := position.Split()
			glyphMask, err := self.loadMask(op, glyph, transform, fraction)
			if err != nil {
				// degenerate or oversized glyphs are skipped, the pen still advances
				if !errors.Is(err, mask.ErrDegenerateGeometry) {
					Logger().Debug("showtxt: glyph rasterization failed", "code", codeAttr(glyph.code), "err", err)
				}
				return nil
			}
			if glyphMask == nil { return nil }

			// cached masks are shared, so they are placed through a shallow copy
			placed := *glyphMask
			placed.Rect = glyphMask.Rect.Add(whole)
			masks = append(masks, &placed)
			return nil
		})
	if err != nil { return pen, err }

	composite := mask.Composite(masks...)
	if composite == nil { return pen, nil }
	return pen, target.BlitMask(composite, image.Point{}, op.color)
}
