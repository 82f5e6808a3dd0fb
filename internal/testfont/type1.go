// Package testfont builds small synthetic fonts for tests.
package testfont

import "time"
import "bytes"

import "seehuhn.de/go/geom/matrix"
import "seehuhn.de/go/postscript/funit"
import "seehuhn.de/go/postscript/type1"

// Family name of the font returned by [SquaresPFA].
const SquaresFamily = "Test Squares"

// Returns a Type 1 font in PFA format with 1000 units per em and
// three rectangular glyphs. Coordinates are in y-up design units:
//   - .notdef: advance 500, box from (50, 0) to (450, 700).
//   - "A": advance 600, box from (100, 0) to (500, 400).
//   - "B": advance 700, box from (100, -200) to (600, 500).
//
// Only 'A' and 'B' are mapped by the encoding.
func SquaresPFA() []byte {
	encoding := make([]string, 256)
	for i := range encoding { encoding[i] = ".notdef" }
	encoding['A'] = "A"
	encoding['B'] = "B"

	font := &type1.Font{
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FontInfo: &type1.FontInfo{
			FontName: "TestSquares-Regular",
			Version: "1.000",
			FullName: "Test Squares Regular",
			FamilyName: SquaresFamily,
			Weight: "Regular",
			FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		},
		Outlines: &type1.Outlines{
			Private: &type1.PrivateDict{
				BlueValues: []funit.Int16{-10, 0, 690, 700},
				BlueScale: 0.039625,
				BlueShift: 7,
				StdHW: 50,
				StdVW: 50,
			},
			Glyphs: map[string]*type1.Glyph{},
			Encoding: encoding,
		},
	}
	addBox(font, ".notdef", 500, 50, 0, 450, 700)
	addBox(font, "A", 600, 100, 0, 500, 400)
	addBox(font, "B", 700, 100, -200, 600, 500)

	var buffer bytes.Buffer
	err := font.Write(&buffer, &type1.WriterOptions{ Format: type1.FormatPFA })
	if err != nil { panic(err) }
	return buffer.Bytes()
}

func addBox(font *type1.Font, name string, advance, minX, minY, maxX, maxY float64) {
	glyph := font.NewGlyph(name, advance)
	glyph.MoveTo(minX, minY)
	glyph.LineTo(maxX, minY)
	glyph.LineTo(maxX, maxY)
	glyph.LineTo(minX, maxY)
	glyph.ClosePath()
}
