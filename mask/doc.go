// The mask subpackage defines the [Rasterizer] interface used by
// showtxt to convert glyph outlines into alpha coverage masks, and
// provides two implementations:
//  - [DefaultRasterizer], a wrapper around [vector.Rasterizer].
//  - [EdgeMarkerRasterizer], a pure Go edge accumulation rasterizer
//    with configurable curve segmentation.
//
// Masks are anti-aliased using exact area coverage, include a one
// pixel margin around the transformed outline bounds, and are fully
// deterministic: the same outline and transform always produce the
// same bytes.
//
// [vector.Rasterizer]: https://pkg.go.dev/golang.org/x/image/vector#Rasterizer
package mask
