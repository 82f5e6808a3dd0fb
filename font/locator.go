package font

import "strings"

// The boundary for external font discovery. A Locator maps a
// family and style to a font file path that can be loaded by
// [Cache.LoadFamily].
type Locator interface {
	ResolvePath(family string, style Style) (string, error)
}

// A [Locator] backed by a static table. Useful for configuration
// files and tests.
type MapLocator map[string]string

// Adds an entry for the given family and style.
func (self MapLocator) Set(family string, style Style, path string) {
	self[mapLocatorKey(family, style)] = path
}

// Implements [Locator].
func (self MapLocator) ResolvePath(family string, style Style) (string, error) {
	path, found := self[mapLocatorKey(family, style)]
	if !found { return "", ErrFaceNotFound }
	return path, nil
}

func mapLocatorKey(family string, style Style) string {
	return strings.ToLower(family) + "/" + style.String()
}
