package font

import "strconv"
import "strings"

import "golang.org/x/image/font/sfnt"
import "seehuhn.de/go/postscript/type1"

// Opaque face identifier. Zero is never a valid id.
type FaceID uint32

// Style flags for faces. Multiple flags can be combined.
type Style uint8

const (
	Regular Style = 0
	Italic  Style = 1 << (iota - 1)
	Bold
	Symbol
)

// Returns whether all the given flags are set.
func (self Style) Has(flags Style) bool { return self & flags == flags }

func (self Style) String() string {
	if self == Regular { return "Regular" }
	parts := make([]string, 0, 3)
	if self.Has(Bold)   { parts = append(parts, "Bold")   }
	if self.Has(Italic) { parts = append(parts, "Italic") }
	if self.Has(Symbol) { parts = append(parts, "Symbol") }
	return strings.Join(parts, " ")
}

// Font program container format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTrueType
	FormatOpenType
	FormatCollection
	FormatType1
	formatWOFF
)

func (self Format) String() string {
	switch self {
	case FormatTrueType   : return "TrueType"
	case FormatOpenType   : return "OpenType"
	case FormatCollection : return "TrueTypeCollection"
	case FormatType1      : return "Type1"
	case formatWOFF       : return "WOFF"
	default:
		return "Unknown"
	}
}

// A parsed font program, shared by all the faces registered
// from the same source key.
type program struct {
	key    string
	format Format
	sfnt   *sfnt.Font
	type1  *type1.Font
	upem   int
	refs   int
	metrics Metrics
}

// A loaded font face. Faces are immutable once registered
// in a [Cache]; the same *Face can be read from multiple
// goroutines.
type Face struct {
	ID FaceID
	Family string
	Style Style
	Path string // source path, or the name given to LoadBytes
	Format Format
	UnitsPerEm int
	prog *program
}

// Returns the vertical metrics of the face, in design units.
func (self *Face) Metrics() Metrics { return self.prog.metrics }

// Returns the sfnt program of the face, or nil for Type 1 faces.
func (self *Face) SFNT() *sfnt.Font { return self.prog.sfnt }

// Returns the Type 1 program of the face, or nil for sfnt faces.
func (self *Face) Type1() *type1.Font { return self.prog.type1 }

// Returns a debug representation like "#3 DejaVu Sans (Bold)".
func (self *Face) String() string {
	return "#" + strconv.Itoa(int(self.ID)) + " " + self.Family + " (" + self.Style.String() + ")"
}
