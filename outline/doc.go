// The outline subpackage defines the glyph outline data model used
// across showtxt and the [Extractor] that builds outlines from the
// font programs held by a [font.Cache].
//
// Outline coordinates are expressed in font design units, with the
// y axis pointing down and the baseline at y = 0. This means that
// ascenders have negative y coordinates. Contours are always closed
// implicitly.
package outline
