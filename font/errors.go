package font

import "errors"

// Returned when font bytes can't be parsed, either because the
// format is not recognized or because the font program is corrupt.
var ErrInvalidFontData = errors.New("font: invalid font data")

// Returned for recognized but unsupported font containers (WOFF, WOFF2).
var ErrUnsupportedFormat = errors.New("font: unsupported font format")

// Returned when a face can't be resolved or has been unloaded.
var ErrFaceNotFound = errors.New("font: face not found")

// Returned by the property getters when the requested
// name entry is missing or empty.
var ErrNotFound = errors.New("font: property not found or empty")
