// The cache subpackage defines the [RenderCache] used by showtxt to
// avoid re-extracting glyph outlines and re-rasterizing glyph masks.
//
// Outline entries are keyed by face and code point, while mask entries
// are keyed by a [MaskKey] that fully determines the transform applied
// to the glyph (size, resolution, rotation, sub-pixel position and
// rasterizer configuration). Continuous inputs are quantized to 1/64
// through the fract subpackage, which also defines the caching
// granularity.
//
// Entries are never evicted. Instead, the cache is scoped per face:
// when a face is unloaded from the face cache, [RenderCache.DropFace]
// releases all the entries associated to it. The [RenderCache.ApproxByteSize]
// and [RenderCache.PeakSize] methods can be used to monitor memory usage.
//
// Cache population is compute-once per key: concurrent requests for a
// missing entry wait for a single computation instead of duplicating it.
package cache
