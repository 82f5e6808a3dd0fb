package cache

import "image"
import "sync/atomic"

import "github.com/tinne26/showtxt/outline"

// Fixed overhead estimate for each entry (maps, headers, pointers).
const constEntryOverhead = 56

// A cached outline, or the deterministic error obtained while
// extracting it (e.g. a missing glyph).
type outlineEntry struct {
	Outline *outline.Outline // Read-only.
	Err error // Read-only.
	ByteSize uint32 // Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// A cached mask. Nil masks are valid for blank glyphs.
type maskEntry struct {
	Mask *image.Alpha // Read-only.
	Err error // Read-only.
	ByteSize uint32 // Read-only.
	accessCount uint32
}

func newOutlineEntry(glyph *outline.Outline, err error) *outlineEntry {
	return &outlineEntry{ Outline: glyph, Err: err, ByteSize: OutlineByteSize(glyph), accessCount: 1 }
}

func newMaskEntry(mask *image.Alpha, err error) *maskEntry {
	return &maskEntry{ Mask: mask, Err: err, ByteSize: MaskByteSize(mask), accessCount: 1 }
}

// Must be called after accessing an entry. Concurrent-safe.
func (self *outlineEntry) IncreaseAccessCount() { atomic.AddUint32(&self.accessCount, 1) }

// Returns the number of times the entry has been accessed,
// including the access that created it. Concurrent-safe.
func (self *outlineEntry) AccessCount() uint32 { return atomic.LoadUint32(&self.accessCount) }

// Must be called after accessing an entry. Concurrent-safe.
func (self *maskEntry) IncreaseAccessCount() { atomic.AddUint32(&self.accessCount, 1) }

func (self *maskEntry) AccessCount() uint32 { return atomic.LoadUint32(&self.accessCount) }

// Returns the approximate number of bytes used by the given mask.
func MaskByteSize(mask *image.Alpha) uint32 {
	if mask == nil { return constEntryOverhead }
	return uint32(len(mask.Pix)) + constEntryOverhead
}

// Returns the approximate number of bytes used by the given outline.
func OutlineByteSize(glyph *outline.Outline) uint32 {
	if glyph == nil { return constEntryOverhead }
	const segmentSize, contourSize = 56, 40
	size := uint32(constEntryOverhead)
	for _, contour := range glyph.Contours {
		size += contourSize + uint32(len(contour.Segments))*segmentSize
	}
	return size
}
