// The font subpackage implements the face cache used by showtxt: a
// registry of parsed font programs (TrueType, OpenType, TrueType
// collections and Type 1) identified by opaque [FaceID] values and
// resolvable by family name and [Style].
//
// Parsed programs are shared between all the faces registered from
// the same source, and released when the last of those faces is
// unloaded. Unload listeners can be attached to the [Cache] so that
// dependent caches (outlines, masks) can drop their entries too.
//
// The package also contains a few helper functions to obtain
// information from sfnt fonts (family, subfamily, name, etc.).
//
// Font discovery is not handled here: the [Locator] interface is the
// boundary where an external font finder can be plugged in.
package font
