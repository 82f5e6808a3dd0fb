package mask

import "image"

// Merges the given masks into a single one covering the union of
// their bounds. Overlapping coverage is added and saturated at 255.
// Nil masks are ignored; if all masks are nil, nil is returned.
func Composite(masks ...*image.Alpha) *image.Alpha {
	var bounds image.Rectangle
	for _, mask := range masks {
		if mask == nil || mask.Rect.Empty() { continue }
		bounds = bounds.Union(mask.Rect)
	}
	if bounds.Empty() { return nil }

	out := image.NewAlpha(bounds)
	for _, mask := range masks {
		if mask == nil || mask.Rect.Empty() { continue }
		width := mask.Rect.Dx()
		for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
			srcRow := mask.Pix[mask.PixOffset(mask.Rect.Min.X, y) : ]
			dstRow := out.Pix[out.PixOffset(mask.Rect.Min.X, y) : ]
			for x := 0; x < width; x++ {
				sum := uint16(dstRow[x]) + uint16(srcRow[x])
				if sum > 255 { sum = 255 }
				dstRow[x] = uint8(sum)
			}
		}
	}
	return out
}
