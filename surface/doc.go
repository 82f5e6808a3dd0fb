// The surface subpackage defines the contract between showtxt and
// the output targets text is drawn on.
//
// A [Surface] exposes drawing primitives ([Surface.FillPath],
// [Surface.BlitMask], [Surface.FillRect]) and text entry points
// ([Surface.DrawText], [Surface.MeasureText], [Surface.GlyphMetrics]).
// The text entry points don't draw anything by themselves: they are
// routed through a replaceable [TextDrawer], the surface's strategy
// slot. Each surface starts with its own native drawer, and the
// interception manager in the root package temporarily swaps it for
// the showtxt renderer.
//
// Two implementations are provided here: [Recorder], a vector surface
// that stores the operations it receives and can export them as SVG,
// and [Image], a raster surface over a [draw.Image]. Subpackages
// pdfsurface and ebitensurface provide PDF and Ebitengine surfaces.
package surface
