package showtxt

import "sync"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/mask"
import "github.com/tinne26/showtxt/sizer"
import "github.com/tinne26/showtxt/fract"
import "github.com/tinne26/showtxt/cache"
import "github.com/tinne26/showtxt/outline"
import "github.com/tinne26/showtxt/surface"

// The [Renderer] is the render dispatcher: it converts text requests
// into glyph outlines, transforms them for the target surface and
// emits filled paths (vector surfaces) or a composite mask (raster
// surfaces).
//
// Renderers implement [surface.TextDrawer], so they can be installed
// directly in a surface's strategy slot, but they are typically used
// through a [Manager].
//
// Renderers are safe for concurrent use, though each surface must
// only be used from one goroutine at a time.
type Renderer struct {
	faces *font.Cache
	cache *cache.RenderCache

	configMutex sync.RWMutex
	config config

	scratchMutex sync.Mutex // guards the extractor and the rasterizers
	extractor *outline.Extractor
	unsubscribe func()
}

var _ surface.TextDrawer = (*Renderer)(nil)

// Creates a new [Renderer] drawing with the faces of the given cache.
// The renderer subscribes to face unloads in order to release the
// cached outlines and masks of unloaded faces. Renderers that don't
// live as long as the face cache should be released with
// [Renderer.Close].
func NewRenderer(faces *font.Cache, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts { opt(&cfg) }
	renderer := &Renderer{
		faces: faces,
		cache: cache.New(),
		config: cfg,
		extractor: outline.NewExtractor(),
	}
	renderer.unsubscribe = faces.OnUnload(renderer.cache.DropFace)
	return renderer
}

// Detaches the renderer from the face cache, so the renderer and its
// glyph cache can be garbage collected while the face cache stays in
// use. Drawing after Close still works, but cached entries of unloaded
// faces are no longer released. Closing twice is a no-op.
func (self *Renderer) Close() {
	self.unsubscribe()
}

// Returns the face cache used by the renderer.
func (self *Renderer) Faces() *font.Cache { return self.faces }

// Returns the renderer's glyph cache.
func (self *Renderer) Cache() *cache.RenderCache { return self.cache }

// Returns a snapshot of the current configuration.
func (self *Renderer) snapshot() config {
	self.configMutex.RLock()
	defer self.configMutex.RUnlock()
	return self.config
}

func (self *Renderer) modify(fn func(*config)) {
	self.configMutex.Lock()
	fn(&self.config)
	self.configMutex.Unlock()
}

// Sets the resolution for raster surfaces that don't report one.
// Non-positive values are ignored.
func (self *Renderer) SetDPI(dpi float64) { self.modify(WithDPI(dpi)) }

// Returns the resolution used for raster surfaces that don't
// report one. The default is 96.
func (self *Renderer) GetDPI() float64 { return self.snapshot().dpi }

// See [WithDefaultFace].
func (self *Renderer) SetDefaultFace(id font.FaceID) { self.modify(WithDefaultFace(id)) }

// Returns the default face, or zero if none.
func (self *Renderer) GetDefaultFace() font.FaceID { return self.snapshot().defaultFace }

// See [WithFallbacks].
func (self *Renderer) SetFallbacks(ids ...font.FaceID) { self.modify(WithFallbacks(ids...)) }

// Returns a copy of the fallback face list.
func (self *Renderer) GetFallbacks() []font.FaceID {
	return append([]font.FaceID(nil), self.snapshot().fallbacks...)
}

// See [WithMissingPolicy].
func (self *Renderer) SetMissingPolicy(policy MissingPolicy) { self.modify(WithMissingPolicy(policy)) }

// Returns the current missing glyph policy.
func (self *Renderer) GetMissingPolicy() MissingPolicy { return self.snapshot().missing }

// Sets the rasterizer for raster surfaces. Masks created with other
// rasterizers remain cached under their own signatures.
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) { self.modify(WithRasterizer(rasterizer)) }

// Returns the current rasterizer.
func (self *Renderer) GetRasterizer() mask.Rasterizer { return self.snapshot().rasterizer }

// See [WithSizer].
func (self *Renderer) SetSizer(glyphSizer sizer.Sizer) { self.modify(WithSizer(glyphSizer)) }

// Returns the current sizer.
func (self *Renderer) GetSizer() sizer.Sizer { return self.snapshot().sizer }

// See [WithNormalization].
func (self *Renderer) SetNormalization(enabled bool) { self.modify(WithNormalization(enabled)) }

// Returns whether text is NFC normalized before glyph lookup.
func (self *Renderer) GetNormalization() bool { return self.snapshot().normalize }

// See [WithLineSpacing].
func (self *Renderer) SetLineSpacing(factor float64) { self.modify(WithLineSpacing(factor)) }

// Returns the current line spacing factor.
func (self *Renderer) GetLineSpacing() float64 { return self.snapshot().lineSpacing }

// See [WithQuantization]. Values below one or above 64 will panic.
func (self *Renderer) SetQuantization(horz, vert fract.Unit) { self.modify(WithQuantization(horz, vert)) }

// Returns the current quantization levels.
func (self *Renderer) GetQuantization() (horz, vert fract.Unit) {
	cfg := self.snapshot()
	return cfg.horzQuant, cfg.vertQuant
}
