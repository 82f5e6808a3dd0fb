// showtxt is a package to draw text with arbitrary font files on
// heterogeneous output surfaces, with identical appearance everywhere.
//
// The core workflow uses only a few types. First, you load the fonts
// into a [font.Cache]:
//   faces := font.NewCache()
//   _, err := faces.Load("path/to/font.ttf", font.Regular)
//   if err != nil { ... }
//
// Then you create a [Renderer] and a [Manager]:
//   renderer := showtxt.NewRenderer(faces)
//   manager  := showtxt.NewManager(renderer)
//
// Finally, you open surfaces through the manager and begin interception.
// While interception is active, all the text requests issued to the
// surface are drawn with the loaded fonts, as filled outlines on vector
// surfaces or as anti-aliased masks on raster surfaces:
//   _ = manager.Open(pdf)
//   _ = manager.Begin(pdf)
//   pdf.DrawText(&surface.TextRequest{ Text: "Hello!", Family: "Go", Size: 12, X: 72, Y: 72 })
//   _ = manager.End(pdf) // restores the surface's own text drawer
//
// With [Manager.SetAutoMode](true), interception begins as soon as a
// surface is opened and ends when it's closed.
//
// The [Renderer] can also be used directly as a [surface.TextDrawer],
// without any interception.
package showtxt
