package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "bytes"
import "math"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "seehuhn.de/go/postscript/type1"

// Detects the container format of the given font bytes from their
// leading magic numbers. WOFF and WOFF2 are recognized but will fail
// with [ErrUnsupportedFormat] when parsed.
func DetectFormat(data []byte) Format {
	if len(data) < 4 { return FormatUnknown }
	switch string(data[0 : 4]) {
	case "\x00\x01\x00\x00", "true": return FormatTrueType
	case "OTTO": return FormatOpenType
	case "ttcf": return FormatCollection
	case "wOFF", "wOF2": return formatWOFF
	}
	if data[0] == 0x80 && data[1] == 0x01 { return FormatType1 } // PFB segment header
	if bytes.HasPrefix(data, []byte("%!PS-AdobeFont")) || bytes.HasPrefix(data, []byte("%!FontType1")) {
		return FormatType1
	}
	return FormatUnknown
}

// Parses the given font bytes into a program. The bytes must not
// be modified while any face using the program is alive.
func parseProgram(key string, data []byte) (*program, error) {
	prog := &program{ key: key, format: DetectFormat(data) }
	switch prog.format {
	case FormatTrueType, FormatOpenType:
		font, err := sfnt.Parse(data)
		if err != nil { return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFontData, key, err) }
		prog.sfnt = font
	case FormatCollection:
		collection, err := sfnt.ParseCollection(data)
		if err != nil { return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFontData, key, err) }
		font, err := collection.Font(0)
		if err != nil { return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFontData, key, err) }
		prog.sfnt = font
	case FormatType1:
		font, err := type1.Read(bytes.NewReader(data))
		if err != nil { return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFontData, key, err) }
		prog.type1 = font
	case formatWOFF:
		return nil, fmt.Errorf("%w: %s: web font containers must be decompressed first", ErrUnsupportedFormat, key)
	default:
		return nil, fmt.Errorf("%w: %s: unrecognized font signature", ErrInvalidFontData, key)
	}

	prog.upem = programUnitsPerEm(prog)
	if prog.upem <= 0 {
		return nil, fmt.Errorf("%w: %s: invalid units per em", ErrInvalidFontData, key)
	}
	prog.metrics = programMetrics(prog, data)
	return prog, nil
}

func programUnitsPerEm(prog *program) int {
	if prog.sfnt != nil { return int(prog.sfnt.UnitsPerEm()) }
	scale := prog.type1.FontInfo.FontMatrix[0]
	if scale <= 0 { return 1000 }
	return int(math.Round(1.0/scale))
}

// Returns the default family name for the program. For sfnt fonts,
// the family entry of the naming table is used. Type 1 fonts use the
// FamilyName entry of the font dictionary, falling back to FontName.
func programFamily(prog *program) (string, error) {
	if prog.sfnt != nil { return GetFamily(prog.sfnt) }
	if prog.type1.FontInfo.FamilyName != "" {
		return prog.type1.FontInfo.FamilyName, nil
	}
	if prog.type1.FontInfo.FontName != "" {
		return prog.type1.FontInfo.FontName, nil
	}
	return "", ErrNotFound
}

// Returns the style flags declared by the program itself.
func programStyle(prog *program) Style {
	if prog.sfnt != nil { return DetectStyle(prog.sfnt) }
	style := styleFromName(prog.type1.FontInfo.FullName)
	if prog.type1.FontInfo.ItalicAngle != 0 { style |= Italic }
	return style
}

// Reads all the bytes from the given font file.
func readFontFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("%w: %v", ErrFaceNotFound, err) }
	return readAndClose(file)
}

// Same as readFontFile, but for embedded filesystems.
func readFontFileFS(filesys fs.FS, path string) ([]byte, error) {
	file, err := filesys.Open(path)
	if err != nil { return nil, fmt.Errorf("%w: %v", ErrFaceNotFound, err) }
	return readAndClose(file)
}

func readAndClose(file io.ReadCloser) ([]byte, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return fontBytes, nil
}

// Whether the font path ends in one of the extensions
// the cache can load (.ttf, .otf, .ttc, .pfb, .pfa).
func hasValidFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".pfb", ".pfa":
		return true
	default:
		return false
	}
}
