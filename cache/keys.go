package cache

import "strconv"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/fract"

// Identifies a glyph of a face at a given point size. The size is
// quantized to 1/64 pt. Outline entries ignore the size.
type GlyphKey struct {
	Face font.FaceID
	Code rune
	Size fract.Unit
}

// Identifies a rasterized glyph mask. Together with the glyph key,
// the fields fully determine the transform applied to the outline.
type MaskKey struct {
	Glyph GlyphKey
	DPI fract.Unit
	Rotation fract.Unit // in degrees, normalized to [0, 360)
	Fract fract.Point // sub-pixel pen offset, in [0, 1) on both axes
	Rasterizer uint64 // rasterizer signature
}

// Returns a compact string form of the key, used for
// compute-once coordination.
func (self GlyphKey) String() string {
	buffer := make([]byte, 0, 32)
	return string(self.appendTo(buffer))
}

func (self GlyphKey) appendTo(buffer []byte) []byte {
	buffer = strconv.AppendUint(buffer, uint64(self.Face), 10)
	buffer = append(buffer, '/')
	buffer = strconv.AppendInt(buffer, int64(self.Code), 16)
	buffer = append(buffer, '/')
	return strconv.AppendInt(buffer, int64(self.Size), 10)
}

// Returns a compact string form of the key.
func (self MaskKey) String() string {
	buffer := make([]byte, 0, 64)
	buffer = self.Glyph.appendTo(buffer)
	buffer = append(buffer, '/')
	buffer = strconv.AppendInt(buffer, int64(self.DPI), 10)
	buffer = append(buffer, '/')
	buffer = strconv.AppendInt(buffer, int64(self.Rotation), 10)
	buffer = append(buffer, '/')
	buffer = strconv.AppendInt(buffer, int64(self.Fract.X), 10)
	buffer = append(buffer, ',')
	buffer = strconv.AppendInt(buffer, int64(self.Fract.Y), 10)
	buffer = append(buffer, '/')
	buffer = strconv.AppendUint(buffer, self.Rasterizer, 16)
	return string(buffer)
}
