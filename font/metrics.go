package font

import "bytes"
import "math"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import sfntinfo "seehuhn.de/go/sfnt"

// Vertical font metrics, in design units. Ascent and Descent are
// both positive distances from the baseline.
type Metrics struct {
	Ascent float64
	Descent float64
	LineGap float64
}

// Returns the distance between consecutive baselines, in design units.
func (self Metrics) LineHeight() float64 {
	return self.Ascent + self.Descent + self.LineGap
}

// Reads the vertical metrics of the program. Collections and fonts
// rejected by the sfntinfo reader fall back to x/image metrics at a
// ppem that keeps design units unscaled.
func programMetrics(prog *program, data []byte) Metrics {
	if prog.type1 != nil { return type1Metrics(prog) }
	if prog.format != FormatCollection {
		info, err := sfntinfo.Read(bytes.NewReader(data))
		if err == nil && info.Ascent > 0 {
			return Metrics{
				Ascent:  float64(info.Ascent),
				Descent: math.Abs(float64(info.Descent)),
				LineGap: float64(info.LineGap),
			}
		}
	}

	var buffer sfnt.Buffer
	ppem := fixed.Int26_6(prog.upem << 6)
	metrics, err := prog.sfnt.Metrics(&buffer, ppem, font.HintingNone)
	if err != nil { return fallbackMetrics(prog.upem) }
	ascent  := float64(metrics.Ascent)/64
	descent := float64(metrics.Descent)/64
	lineGap := float64(metrics.Height)/64 - ascent - descent
	if lineGap < 0 { lineGap = 0 }
	return Metrics{ Ascent: ascent, Descent: descent, LineGap: lineGap }
}

// Type 1 fonts don't declare ascent and descent, so they are taken from
// the vertical extents of the glyph programs.
func type1Metrics(prog *program) Metrics {
	var top, bottom float64
	for _, glyph := range prog.type1.Glyphs {
		for _, cmd := range glyph.Cmds {
			for i := 1; i < len(cmd.Args); i += 2 {
				y := cmd.Args[i]
				if y > top { top = y }
				if y < bottom { bottom = y }
			}
		}
	}
	if top == 0 && bottom == 0 { return fallbackMetrics(prog.upem) }
	return Metrics{ Ascent: top, Descent: -bottom, LineGap: math.Round(float64(prog.upem)*0.1) }
}

func fallbackMetrics(upem int) Metrics {
	em := float64(upem)
	return Metrics{ Ascent: em*0.8, Descent: em*0.2, LineGap: em*0.1 }
}
