package font

import "testing"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"
import "seehuhn.de/go/postscript/type1"

func TestGetProperties(t *testing.T) {
	font, err := sfnt.Parse(goregular.TTF)
	if err != nil { t.Fatal(err) }

	// ensure state sanity
	buffer := getSfntBuffer()
	if buffer == nil { panic("unexpected nil") }
	releaseSfntBuffer(buffer)

	value, err := GetProperty(font, 999)
	if err != ErrNotFound {
		t.Fatalf("GetProperty(font, 999) error: %v", err)
	}
	if value != "" { t.Fatalf("GetProperty(font, 999) value = \"%s\"", value) }

	family, err := GetFamily(font)
	if err != nil || family != "Go" {
		t.Fatalf("expected family \"Go\", got \"%s\" (%v)", family, err)
	}
	if DetectStyle(font) != Regular {
		t.Fatalf("expected Regular, got %s", DetectStyle(font))
	}

	boldFont, err := sfnt.Parse(gobold.TTF)
	if err != nil { t.Fatal(err) }
	if DetectStyle(boldFont) != Bold {
		t.Fatalf("expected Bold, got %s", DetectStyle(boldFont))
	}
}

func TestStyleFromName(t *testing.T) {
	tests := []struct {
		in  string
		out Style
	}{
		{"Regular", Regular}, {"Bold", Bold}, {"Bold Italic", Bold | Italic},
		{"Oblique", Italic}, {"Black", Bold}, {"Dingbats", Symbol},
	}
	for i, test := range tests {
		out := styleFromName(test.in)
		if out != test.out {
			t.Fatalf("test #%d: expected %s, got %s", i, test.out, out)
		}
	}
}

func TestMissingRunes(t *testing.T) {
	cache := NewCache()
	id, err := cache.LoadBytes("goregular", goregular.TTF, "", Regular)
	if err != nil { t.Fatal(err) }
	face, _ := cache.Face(id)

	missing, err := MissingRunes(face, "Hi\uE000!")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(missing) != 1 || missing[0] != '\uE000' {
		t.Fatalf("expected [U+E000], got %q", missing)
	}
}

func TestType1GlyphName(t *testing.T) {
	encoding := make([]string, 256)
	encoding['A'] = "A"
	encoding['B'] = "B" // not present in glyphs
	font := &type1.Font {
		Outlines: &type1.Outlines {
			Glyphs: map[string]*type1.Glyph {
				"A": {}, "uni20AC": {},
			},
			Encoding: encoding,
		},
	}

	tests := []struct {
		in  rune
		out string
	}{
		{'A', "A"}, {'B', ""}, {'\u20AC', "uni20AC"}, {'\uE000', ""},
	}
	for i, test := range tests {
		out := Type1GlyphName(font, test.in)
		if out != test.out {
			t.Fatalf("test #%d: expected \"%s\", got \"%s\"", i, test.out, out)
		}
	}
}
