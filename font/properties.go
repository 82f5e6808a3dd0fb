package font

import "golang.org/x/image/font/sfnt"
import "sync/atomic"
import "fmt"
import "strings"

import "seehuhn.de/go/postscript/type1"

// One shared sfnt.Buffer for property and coverage queries. The
// buffer can't be used concurrently, so callers that fail to acquire
// it pass a nil buffer to sfnt instead, which allocates internally.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. If the information
// is missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
//
// In most cases, the subfamily value will be one of:
//  - Regular, Italic, Bold, Bold Italic
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the name of the given font. If the information is missing,
// [ErrNotFound] will be returned. Other errors are also possible (e.g.,
// if the font naming table is invalid).
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the identifier of the given font. If the information is missing,
// [ErrNotFound] will be returned. Other errors are also possible (e.g.,
// if the font naming table is invalid).
func GetIdentifier(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDUniqueIdentifier)
}

// Returns the runes in the given text that can't be represented by the
// face. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
func MissingRunes(face *Face, text string) ([]rune, error) {
	missing := make([]rune, 0)
	if face.prog.type1 != nil {
		for _, codePoint := range text {
			if Type1GlyphName(face.prog.type1, codePoint) == "" {
				missing = append(missing, codePoint)
			}
		}
		return missing, nil
	}

	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)
	for _, codePoint := range text {
		index, err := face.prog.sfnt.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

// Returns the name of the Type 1 glyph used for the given code point,
// or an empty string if the font has no such glyph. Codes below 256
// go through the font's built-in encoding, the rest are looked up by
// their "uniXXXX" name.
func Type1GlyphName(font *type1.Font, codePoint rune) string {
	if codePoint >= 0 && int(codePoint) < len(font.Encoding) {
		name := font.Encoding[codePoint]
		if name != "" && name != ".notdef" {
			if _, found := font.Glyphs[name]; found { return name }
		}
	}
	name := fmt.Sprintf("uni%04X", codePoint)
	if _, found := font.Glyphs[name]; found { return name }
	return ""
}

// Guesses the style flags of the given sfnt font from its
// subfamily name (e.g. "Bold Italic", "Oblique").
func DetectStyle(font *sfnt.Font) Style {
	subfamily, err := GetSubfamily(font)
	if err != nil { return Regular }
	return styleFromName(subfamily)
}

func styleFromName(name string) Style {
	name  = strings.ToLower(name)
	style := Regular
	if strings.Contains(name, "bold") || strings.Contains(name, "black") || strings.Contains(name, "heavy") {
		style |= Bold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		style |= Italic
	}
	if strings.Contains(name, "symbol") || strings.Contains(name, "dingbat") {
		style |= Symbol
	}
	return style
}
