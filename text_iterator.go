package showtxt

import "unicode"
import "unicode/utf8"

import "golang.org/x/text/unicode/norm"

// Iterates the code points of a text, skipping control characters
// other than line breaks.
type textIterator struct{ index int }

func (self *textIterator) Next(text string) rune {
	for self.index < len(text) {
		codePoint, runeSize := utf8.DecodeRuneInString(text[self.index:])
		self.index += runeSize
		if codePoint == '\n' || !unicode.IsControl(codePoint) {
			return codePoint
		}
	}
	return -1
}

// Applies NFC normalization, so precomposed glyphs are preferred
// when the font has them.
func normalizeText(text string, enabled bool) string {
	if enabled && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return text
}
