package surface

import "io"
import "fmt"
import "bufio"
import "bytes"
import "image"
import "strconv"
import "image/png"
import "image/color"
import "encoding/base64"
import "encoding/xml"

import "github.com/tinne26/showtxt/outline"

// Writes the recorded operations as an SVG document. Filled paths
// use the nonzero winding rule, blitted masks are embedded as PNG
// images and native text is written as plain SVG text.
func (self *Recorder) WriteSVG(w io.Writer) error {
	out := bufio.NewWriter(w)
	bounds := self.bounds
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d">`+"\n",
		bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy(), bounds.Dx(), bounds.Dy())
	for _, op := range self.ops {
		var err error
		switch op.Kind {
		case OpFillRect:
			fmt.Fprintf(out, `<rect x="%d" y="%d" width="%d" height="%d" %s/>`+"\n",
				op.Rect.Min.X, op.Rect.Min.Y, op.Rect.Dx(), op.Rect.Dy(), svgFill(op.Color))
		case OpFillPath:
			fmt.Fprintf(out, `<path fill-rule="nonzero" %s d="%s"/>`+"\n", svgFill(op.Color), svgPathData(op.Contours))
		case OpBlitMask:
			err = writeSVGMask(out, op)
		case OpNativeText:
			fmt.Fprintf(out, `<text x="%s" y="%s" font-size="%s" %s>`,
				svgFloat(op.Origin.X), svgFloat(op.Origin.Y), svgFloat(op.Size), svgFill(op.Color))
			err = xml.EscapeText(out, []byte(op.Text))
			out.WriteString("</text>\n")
		}
		if err != nil { return err }
	}
	out.WriteString("</svg>\n")
	return out.Flush()
}

func writeSVGMask(out *bufio.Writer, op Op) error {
	if op.Mask == nil { return nil }
	rect := op.Mask.Rect
	colored := svgMaskImage(op.Mask, op.Color)

	var pngBytes bytes.Buffer
	err := png.Encode(&pngBytes, colored)
	if err != nil { return err }
	fmt.Fprintf(out, `<image x="%d" y="%d" width="%d" height="%d" href="data:image/png;base64,%s"/>`+"\n",
		op.At.X + rect.Min.X, op.At.Y + rect.Min.Y, rect.Dx(), rect.Dy(),
		base64.StdEncoding.EncodeToString(pngBytes.Bytes()))
	return nil
}

func svgPathData(contours []outline.Contour) string {
	var data []byte
	point := func(cmd byte, pt outline.Point) {
		if cmd != 0 { data = append(data, cmd) }
		data = strconv.AppendFloat(data, pt.X, 'f', -1, 64)
		data = append(data, ' ')
		data = strconv.AppendFloat(data, pt.Y, 'f', -1, 64)
		data = append(data, ' ')
	}
	for _, contour := range contours {
		point('M', contour.Start)
		for _, segment := range contour.Segments {
			switch segment.Op {
			case outline.OpLineTo:
				point('L', segment.Points[0])
			case outline.OpQuadTo:
				point('Q', segment.Points[0])
				point(0, segment.Points[1])
			case outline.OpCubeTo:
				point('C', segment.Points[0])
				point(0, segment.Points[1])
				point(0, segment.Points[2])
			}
		}
		data = append(data, 'Z')
	}
	return string(data)
}

func svgFill(c color.RGBA) string {
	if c.A == 0 { return `fill="none"` }
	r, g, b := unpremultiply(c)
	fill := fmt.Sprintf(`fill="#%02x%02x%02x"`, r, g, b)
	if c.A == 255 { return fill }
	return fill + ` fill-opacity="` + strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64) + `"`
}

// Returns the mask colored with the given color, as a non-premultiplied
// image with its origin at the top-left corner of the mask.
func svgMaskImage(mask *image.Alpha, c color.RGBA) *image.NRGBA {
	rect := mask.Rect
	r, g, b := unpremultiply(c)
	colored := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			level := mask.AlphaAt(x, y).A
			alpha := uint8((uint16(level)*uint16(c.A) + 127)/255)
			colored.SetNRGBA(x - rect.Min.X, y - rect.Min.Y, color.NRGBA{ r, g, b, alpha })
		}
	}
	return colored
}

// color.RGBA is premultiplied, SVG and PNG colors are not.
func unpremultiply(c color.RGBA) (r, g, b uint8) {
	if c.A == 0 { return 0, 0, 0 }
	red   := min(uint32(c.R)*255/uint32(c.A), 255)
	green := min(uint32(c.G)*255/uint32(c.A), 255)
	blue  := min(uint32(c.B)*255/uint32(c.A), 255)
	return uint8(red), uint8(green), uint8(blue)
}

func svgFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
