package showtxt

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/mask"
import "github.com/tinne26/showtxt/sizer"
import "github.com/tinne26/showtxt/fract"

// Quantization levels for [WithQuantization] and [Renderer.SetQuantization].
// Quantization applies to glyph positions on raster surfaces, where
// masks are cached per fractional pen position.
const (
	QtNone = fract.Unit( 1) // full glyph position resolution (1/64ths of a pixel)
	Qt32th = fract.Unit( 2) // quantize glyph positions to 1/32ths of a pixel
	Qt16th = fract.Unit( 4) // quantize glyph positions to 1/16ths of a pixel
	Qt8th  = fract.Unit( 8) // quantize glyph positions to 1/ 8ths of a pixel
	Qt4th  = fract.Unit(16) // quantize glyph positions to 1/ 4ths of a pixel
	QtHalf = fract.Unit(32) // quantize glyph positions to half of a pixel
	QtFull = fract.Unit(64) // full glyph position quantization (default)
)

// Default text size, in points, for requests that don't set one.
const DefaultSize = 12

// What to do with characters that no face can draw.
type MissingPolicy uint8

const (
	MissingBox  MissingPolicy = iota // draw the face's missing glyph (default)
	MissingSkip                      // draw nothing and don't advance
)

func (self MissingPolicy) String() string {
	switch self {
	case MissingBox : return "MissingBox"
	case MissingSkip: return "MissingSkip"
	default:
		return "MissingUnknown"
	}
}

// Option configures a [Renderer].
type Option func(*config)

type config struct {
	dpi float64
	defaultFace font.FaceID
	fallbacks []font.FaceID
	missing MissingPolicy
	rasterizer mask.Rasterizer
	sizer sizer.Sizer
	normalize bool
	lineSpacing float64
	horzQuant fract.Unit
	vertQuant fract.Unit
}

func defaultConfig() config {
	return config{
		dpi: 96,
		missing: MissingBox,
		rasterizer: &mask.DefaultRasterizer{},
		sizer: &sizer.DefaultSizer{},
		normalize: true,
		lineSpacing: 1.0,
		horzQuant: QtFull,
		vertQuant: QtFull,
	}
}

// Sets the resolution used on raster surfaces that don't report
// their own DPI. Defaults to 96. Vector surfaces that don't report
// a DPI always use 72, so surface units are points.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 { c.dpi = dpi }
	}
}

// Sets the face used by requests that specify neither a face id
// nor a family.
func WithDefaultFace(id font.FaceID) Option {
	return func(c *config) {
		c.defaultFace = id
	}
}

// Sets the faces to try, in order, when the requested face
// doesn't have a glyph for a character.
func WithFallbacks(ids ...font.FaceID) Option {
	return func(c *config) {
		c.fallbacks = append([]font.FaceID(nil), ids...)
	}
}

// Sets the policy for characters that no face can draw.
func WithMissingPolicy(policy MissingPolicy) Option {
	return func(c *config) {
		c.missing = policy
	}
}

// Sets the rasterizer used for raster surfaces. Defaults to
// [mask.DefaultRasterizer].
func WithRasterizer(rasterizer mask.Rasterizer) Option {
	return func(c *config) {
		if rasterizer != nil { c.rasterizer = rasterizer }
	}
}

// Sets the sizer that provides advances, kerning and line
// heights. Defaults to [sizer.DefaultSizer].
func WithSizer(glyphSizer sizer.Sizer) Option {
	return func(c *config) {
		if glyphSizer != nil { c.sizer = glyphSizer }
	}
}

// Enables or disables NFC normalization of the text before glyph
// lookup. Enabled by default.
func WithNormalization(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

// Sets the line spacing factor applied to the font line height
// on line breaks. Defaults to 1.
func WithLineSpacing(factor float64) Option {
	return func(c *config) {
		c.lineSpacing = factor
	}
}

// Sets the glyph position quantization for raster surfaces.
// Values below one or above 64 will panic.
func WithQuantization(horz, vert fract.Unit) Option {
	validateQuantization(horz, vert)
	return func(c *config) {
		c.horzQuant, c.vertQuant = horz, vert
	}
}

func validateQuantization(horz, vert fract.Unit) {
	if horz < 1 || horz > 64 { panic("horizontal quantization out of range") }
	if vert < 1 || vert > 64 { panic("vertical quantization out of range") }
}
