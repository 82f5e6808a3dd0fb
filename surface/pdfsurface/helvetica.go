package pdfsurface

import "math"

import "seehuhn.de/go/pdf"
import "seehuhn.de/go/pdf/font/type1"
import "seehuhn.de/go/pdf/font/standard"

import "github.com/tinne26/showtxt/surface"

// Average Helvetica width, used for glyphs without a simple name.
const helveticaAvgWidth = 556

// Native text drawer using the standard Helvetica font. Only the
// printable ASCII range is drawn; other characters are replaced
// with '?'.
type helveticaText struct {
	surface *Surface
	font *type1.Instance
}

func (self *helveticaText) instance() (*type1.Instance, error) {
	if self.font != nil { return self.font, nil }
	font, err := standard.Helvetica.New(nil)
	if err != nil { return nil, err }
	self.font = font
	return font, nil
}

func (self *helveticaText) DrawText(_ surface.Surface, req *surface.TextRequest) (surface.Pen, error) {
	font, err := self.instance()
	if err != nil { return surface.Pen{ X: req.X, Y: req.Y }, err }

	page := self.surface.page
	page.PushGraphicsState()
	page.SetFillColor(deviceColor(req.RGBA()))
	page.TextBegin()
	page.TextSetFont(font, req.Size)
	page.TextSetMatrix(self.surface.textMatrix(req.X, req.Y, req.Rotation))
	page.TextShowRaw(pdf.String(asciiOnly(req.Text)))
	page.TextEnd()
	page.PopGraphicsState()
	if page.Err != nil { return surface.Pen{ X: req.X, Y: req.Y }, page.Err }

	width, _ := self.MeasureText(nil, req)
	sin, cos := math.Sincos(req.Rotation*math.Pi/180)
	return surface.Pen{ X: req.X + width*cos, Y: req.Y - width*sin }, nil
}

func (self *helveticaText) MeasureText(_ surface.Surface, req *surface.TextRequest) (float64, error) {
	var units float64
	for _, code := range asciiOnly(req.Text) {
		units += self.width(code)
	}
	return units*req.Size/1000, nil
}

func (self *helveticaText) GlyphMetrics(_ surface.Surface, req *surface.TextRequest, code rune) (surface.Metrics, error) {
	return surface.Metrics{
		Ascent:  718*req.Size/1000,
		Descent: 207*req.Size/1000,
		Width: self.width(code)*req.Size/1000,
	}, nil
}

// Width in glyph space units (1/1000 em).
func (self *helveticaText) width(code rune) float64 {
	font, err := self.instance()
	if err != nil { return helveticaAvgWidth }
	name := simpleGlyphName(code)
	if name == "" { return helveticaAvgWidth }
	width := font.GlyphWidthPDF(name)
	if width <= 0 { return helveticaAvgWidth }
	return width
}

var digitNames = [10]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

func simpleGlyphName(code rune) string {
	switch {
	case code >= 'a' && code <= 'z', code >= 'A' && code <= 'Z':
		return string(code)
	case code >= '0' && code <= '9':
		return digitNames[code - '0']
	case code == ' ':
		return "space"
	default:
		return ""
	}
}

func asciiOnly(text string) string {
	bytes := make([]byte, 0, len(text))
	for _, code := range text {
		if code < 0x20 { continue }
		if code > 0x7E { code = '?' }
		bytes = append(bytes, byte(code))
	}
	return string(bytes)
}
