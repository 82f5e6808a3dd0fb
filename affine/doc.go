// The affine subpackage implements the transform pipeline that maps
// glyph outlines from em units to surface coordinates.
//
// Transforms wrap a [matrix.Matrix] from seehuhn.de/go/geom, so they
// can be handed over directly to vector back ends using the same
// representation. All the surfaces in showtxt use a y-down coordinate
// system, and rotations are counterclockwise as seen on the surface.
//
// [matrix.Matrix]: https://pkg.go.dev/seehuhn.de/go/geom/matrix#Matrix
package affine
