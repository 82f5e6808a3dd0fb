// Package pdfsurface provides a vector surface that writes a single
// PDF page through seehuhn.de/go/pdf.
//
// Surface coordinates are PDF points with the origin at the top-left
// corner of the page and the y axis pointing down, like every other
// showtxt surface; the surface flips them when emitting operators.
// The native text drawer uses the standard Helvetica font.
package pdfsurface
