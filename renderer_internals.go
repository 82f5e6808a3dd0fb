package showtxt

import "fmt"
import "math"
import "errors"
import "image"
import "image/color"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/mask"
import "github.com/tinne26/showtxt/fract"
import "github.com/tinne26/showtxt/cache"
import "github.com/tinne26/showtxt/affine"
import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

// Cache code for the missing glyph of a face.
const notdefCode rune = -1

// State resolved once per text request.
type textOp struct {
	cfg config
	face *font.Face
	size fract.Unit
	dpi fract.Unit
	rotation fract.Unit
	capability surface.Capability
	perEm affine.Transform // em units to surface units, without translation
	color color.RGBA
}

// A glyph ready to be drawn: the face providing it, the code
// it's cached under and its outline in design units.
type glyphRef struct {
	face *font.Face
	code rune
	outline *outline.Outline
}

func (self *Renderer) prepare(target surface.Surface, req *surface.TextRequest) (*textOp, error) {
	cfg := self.snapshot()
	face, err := self.resolveFace(req, cfg)
	if err != nil { return nil, err }

	capability := target.Capability()
	if !capability.IsVector() && !capability.IsRaster() {
		return nil, fmt.Errorf("%w: surface without vector or raster primitives", surface.ErrUnsupported)
	}
	dpi := target.DPI()
	if dpi <= 0 {
		if capability.IsVector() { dpi = affine.PointsPerInch } else { dpi = cfg.dpi }
	}
	size := req.Size
	if size <= 0 || math.IsNaN(size) { size = DefaultSize }
	rotation := math.Mod(req.Rotation, 360)
	if math.IsNaN(rotation) { rotation = 0 }
	if rotation < 0 { rotation += 360 }

	op := &textOp{
		cfg: cfg,
		face: face,
		size: fract.FromFloat64Clamped(size),
		dpi: fract.FromFloat64Clamped(dpi),
		rotation: fract.FromFloat64Clamped(rotation),
		capability: capability,
		color: req.RGBA(),
	}
	if op.rotation >= fract.FromInt(360) { op.rotation = 0 }

	// quantized values are used for the transform too, so
	// cached masks always match what would be computed
	op.perEm = affine.Compose(op.size.ToFloat64(), op.dpi.ToFloat64(), op.rotation.ToFloat64())
	return op, nil
}

func (self *Renderer) resolveFace(req *surface.TextRequest, cfg config) (*font.Face, error) {
	id := req.Face
	if id == 0 && req.Family != "" {
		var err error
		id, err = self.faces.Resolve(req.Family, req.Style)
		if err != nil { return nil, err }
	}
	if id == 0 { id = cfg.defaultFace }
	if id == 0 {
		return nil, fmt.Errorf("%w: request without face nor family", font.ErrFaceNotFound)
	}
	return self.faces.Face(id)
}

// Returns the line advance vector in surface units.
func (self *textOp) lineAdvance() (float64, float64) {
	lineHeight := self.cfg.sizer.LineHeight(self.face)
	height := lineHeight/float64(self.face.UnitsPerEm)*self.cfg.lineSpacing
	return self.perEm.ApplyVector(0, height)
}

// Finds the glyph to draw for the given code point: the requested face
// first, then the fallback faces in order, then the missing glyph of
// the requested face (unless the policy is [MissingSkip]). Extraction
// errors never abort the text; the glyph is treated as missing.
func (self *Renderer) lookupGlyph(op *textOp, code rune) (glyphRef, bool) {
	glyph, err := self.loadOutline(op.face, code)
	if err == nil { return glyphRef{ op.face, code, glyph }, true }
	logLookupError(op.face, code, err)

	for _, id := range op.cfg.fallbacks {
		if id == op.face.ID { continue }
		face, err := self.faces.Face(id)
		if err != nil { continue } // unloaded fallback
		glyph, err := self.loadOutline(face, code)
		if err == nil {
			Logger().Debug("showtxt: glyph from fallback face", "code", codeAttr(code), "face", face.String())
			return glyphRef{ face, code, glyph }, true
		}
		logLookupError(face, code, err)
	}

	if op.cfg.missing == MissingSkip {
		Logger().Debug("showtxt: skipping missing glyph", "code", codeAttr(code), "face", op.face.String())
		return glyphRef{}, false
	}
	Logger().Warn("showtxt: missing glyph replaced", "code", codeAttr(code), "face", op.face.String())
	return glyphRef{ op.face, notdefCode, self.loadMissing(op.face) }, true
}

func logLookupError(face *font.Face, code rune, err error) {
	if errors.Is(err, outline.ErrGlyphNotFound) { return }
	Logger().Debug("showtxt: outline extraction failed", "code", codeAttr(code), "face", face.String(), "err", err)
}

func codeAttr(code rune) string { return fmt.Sprintf("%U", code) }

func (self *Renderer) loadOutline(face *font.Face, code rune) (*outline.Outline, error) {
	return self.cache.Outline(face.ID, code, func() (*outline.Outline, error) {
		self.scratchMutex.Lock()
		defer self.scratchMutex.Unlock()
		Logger().Debug("showtxt: extracting outline", "code", codeAttr(code), "face", face.String())
		return self.extractor.Extract(face, code)
	})
}

func (self *Renderer) loadMissing(face *font.Face) *outline.Outline {
	glyph, err := self.cache.Outline(face.ID, notdefCode, func() (*outline.Outline, error) {
		self.scratchMutex.Lock()
		defer self.scratchMutex.Unlock()
		return self.extractor.Missing(face)
	})
	if err != nil { return outline.SynthesizeBox(face.UnitsPerEm) }
	return glyph
}

// Returns the mask for the glyph drawn at the given fractional pen
// offset, relative to the integer pen position.
func (self *Renderer) loadMask(op *textOp, glyph glyphRef, transform affine.Transform, fraction fract.Point) (*image.Alpha, error) {
	rasterizer := op.cfg.rasterizer
	key := cache.MaskKey{
		Glyph: cache.GlyphKey{ Face: glyph.face.ID, Code: glyph.code, Size: op.size },
		DPI: op.dpi,
		Rotation: op.rotation,
		Fract: fraction,
		Rasterizer: rasterizer.Signature(),
	}
	return self.cache.Mask(key, func() (*image.Alpha, error) {
		self.scratchMutex.Lock()
		defer self.scratchMutex.Unlock()
		Logger().Debug("showtxt: rasterizing glyph", "key", key.String())
		fx, fy := fraction.ToFloat64s()
		return mask.Rasterize(glyph.outline, transform.Anchor(fx, fy), rasterizer)
	})
}

// Iterates the glyphs of the text, invoking fn with the glyph, its
// transform (em scale and rotation, not anchored) and the current pen
// position. Kerning applies between consecutive glyphs of the same
// face. Line breaks move the pen back to the origin, shifted by the
// line advance along the rotated vertical axis.
func (self *Renderer) traverse(op *textOp, text string, x, y float64, fn func(glyphRef, affine.Transform, surface.Pen) error) (surface.Pen, error) {
	lineX, lineY := op.lineAdvance()
	pen := surface.Pen{ X: x, Y: y }
	var prev glyphRef
	var line float64
	var iter textIterator
	for {
		code := iter.Next(text)
		if code == -1 { return pen, nil }
		if code == '\n' {
			line += 1
			pen = surface.Pen{ X: x + lineX*line, Y: y + lineY*line }
			prev = glyphRef{}
			continue
		}

		glyph, found := self.lookupGlyph(op, code)
		if !found { continue }
		transform := op.perEm.PerEm(glyph.outline.UnitsPerEm)
		if prev.face == glyph.face && prev.code != notdefCode && glyph.code != notdefCode {
			kern := op.cfg.sizer.Kern(glyph.face, prev.code, glyph.code)
			if kern != 0 {
				dx, dy := transform.ApplyVector(kern, 0)
				pen.X += dx
				pen.Y += dy
			}
		}
		if fn != nil {
			err := fn(glyph, transform, pen)
			if err != nil { return pen, err }
		}
		advance := op.cfg.sizer.GlyphAdvance(glyph.face, glyph.outline)
		dx, dy := transform.ApplyVector(advance, 0)
		pen.X += dx
		pen.Y += dy
		prev = glyph
	}
}
