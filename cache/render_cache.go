package cache

import "sync"
import "image"
import "slices"
import "sync/atomic"

import "golang.org/x/sync/singleflight"

import "github.com/tinne26/showtxt/font"
import "github.com/tinne26/showtxt/outline"

// Glyph outline and mask cache, scoped per face.
//
// Entries are never evicted while their face is loaded; computations
// that produce deterministic errors (e.g. missing glyphs) are cached
// too, so repeated lookups of unsupported code points stay cheap.
//
// All methods are safe for concurrent use.
type RenderCache struct {
	mutex sync.RWMutex
	faces map[font.FaceID]*faceEntries
	dropped map[font.FaceID]struct{}
	group singleflight.Group

	byteSize uint64 // atomic
	peakSize uint64 // atomic
	hits uint64 // atomic
	misses uint64 // atomic
}

type faceEntries struct {
	outlines map[rune]*outlineEntry
	masks map[MaskKey]*maskEntry
}

// Snapshot of the cache usage counters.
type Stats struct {
	Outlines int
	Masks int
	Hits uint64
	Misses uint64
	ByteSize uint64
	PeakSize uint64
}

// Creates a new, empty render cache.
func New() *RenderCache {
	return &RenderCache{
		faces: make(map[font.FaceID]*faceEntries, 4),
		dropped: make(map[font.FaceID]struct{}),
	}
}

// Returns the outline for the given face and code point. If the
// outline isn't cached yet, compute is invoked once (even if Outline
// is called concurrently for the same key) and its result stored.
func (self *RenderCache) Outline(face font.FaceID, code rune, compute func() (*outline.Outline, error)) (*outline.Outline, error) {
	self.mutex.RLock()
	entries, found := self.faces[face]
	if found {
		entry, found := entries.outlines[code]
		if found {
			self.mutex.RUnlock()
			entry.IncreaseAccessCount()
			atomic.AddUint64(&self.hits, 1)
			return entry.Outline, entry.Err
		}
	}
	self.mutex.RUnlock()

	atomic.AddUint64(&self.misses, 1)
	key := GlyphKey{ Face: face, Code: code }.String()
	value, _, _ := self.group.Do("o:" + key, func() (any, error) {
		// another flight may have completed between the lookup and now
		self.mutex.RLock()
		if entries, found := self.faces[face]; found {
			if entry, found := entries.outlines[code]; found {
				self.mutex.RUnlock()
				return entry, nil
			}
		}
		self.mutex.RUnlock()

		glyph, err := compute()
		entry := newOutlineEntry(glyph, err)
		self.mutex.Lock()
		if _, isDropped := self.dropped[face]; !isDropped {
			entries := self.entriesFor(face)
			if _, exists := entries.outlines[code]; !exists {
				entries.outlines[code] = entry
				self.account(entry.ByteSize)
			}
		}
		self.mutex.Unlock()
		return entry, nil
	})
	entry := value.(*outlineEntry)
	return entry.Outline, entry.Err
}

// Returns the mask for the given key, computing it once if needed.
// A nil mask with a nil error is a valid cached result (blank glyphs).
func (self *RenderCache) Mask(key MaskKey, compute func() (*image.Alpha, error)) (*image.Alpha, error) {
	self.mutex.RLock()
	entries, found := self.faces[key.Glyph.Face]
	if found {
		entry, found := entries.masks[key]
		if found {
			self.mutex.RUnlock()
			entry.IncreaseAccessCount()
			atomic.AddUint64(&self.hits, 1)
			return entry.Mask, entry.Err
		}
	}
	self.mutex.RUnlock()

	atomic.AddUint64(&self.misses, 1)
	value, _, _ := self.group.Do("m:" + key.String(), func() (any, error) {
		self.mutex.RLock()
		if entries, found := self.faces[key.Glyph.Face]; found {
			if entry, found := entries.masks[key]; found {
				self.mutex.RUnlock()
				return entry, nil
			}
		}
		self.mutex.RUnlock()

		mask, err := compute()
		entry := newMaskEntry(mask, err)
		self.mutex.Lock()
		if _, isDropped := self.dropped[key.Glyph.Face]; !isDropped {
			entries := self.entriesFor(key.Glyph.Face)
			if _, exists := entries.masks[key]; !exists {
				entries.masks[key] = entry
				self.account(entry.ByteSize)
			}
		}
		self.mutex.Unlock()
		return entry, nil
	})
	entry := value.(*maskEntry)
	return entry.Mask, entry.Err
}

// Releases all the entries associated to the given face. After this,
// results for the face are no longer stored, as face ids are never
// reused by a [font.Cache]. Meant to be registered with
// [font.Cache.OnUnload].
func (self *RenderCache) DropFace(face font.FaceID) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.dropped[face] = struct{}{}
	entries, found := self.faces[face]
	if !found { return }
	var freed uint64
	for _, entry := range entries.outlines { freed += uint64(entry.ByteSize) }
	for _, entry := range entries.masks { freed += uint64(entry.ByteSize) }
	delete(self.faces, face)
	atomic.AddUint64(&self.byteSize, ^(freed - 1))
}

// Returns the number of cached outlines and masks.
func (self *RenderCache) Len() (outlines, masks int) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for _, entries := range self.faces {
		outlines += len(entries.outlines)
		masks += len(entries.masks)
	}
	return outlines, masks
}

// Returns an approximation of the number of bytes taken by the
// cached entries.
func (self *RenderCache) ApproxByteSize() uint64 {
	return atomic.LoadUint64(&self.byteSize)
}

// Returns the maximum value that [RenderCache.ApproxByteSize] has
// reached since the cache creation.
func (self *RenderCache) PeakSize() uint64 {
	return atomic.LoadUint64(&self.peakSize)
}

// Returns a snapshot of the cache counters.
func (self *RenderCache) Stats() Stats {
	outlines, masks := self.Len()
	return Stats{
		Outlines: outlines,
		Masks: masks,
		Hits: atomic.LoadUint64(&self.hits),
		Misses: atomic.LoadUint64(&self.misses),
		ByteSize: self.ApproxByteSize(),
		PeakSize: self.PeakSize(),
	}
}

// Access counters for a cached glyph: outline lookups and the
// lookups of all its masks, across sizes and pen offsets.
type GlyphUsage struct {
	Face font.FaceID
	Code rune
	OutlineAccesses uint32
	MaskAccesses uint32
}

// Returns up to n cached glyphs with the highest access counts
// (outline and mask accesses combined), most accessed first. Glyphs
// whose outline lookup failed are not included.
func (self *RenderCache) HotGlyphs(n int) []GlyphUsage {
	if n <= 0 { return nil }
	self.mutex.RLock()
	usages := make([]GlyphUsage, 0, 16)
	for face, entries := range self.faces {
		index := make(map[rune]int, len(entries.outlines))
		for code, entry := range entries.outlines {
			if entry.Err != nil { continue }
			index[code] = len(usages)
			usages = append(usages, GlyphUsage{ Face: face, Code: code, OutlineAccesses: entry.AccessCount() })
		}
		for key, entry := range entries.masks {
			i, found := index[key.Glyph.Code]
			if !found { continue }
			usages[i].MaskAccesses += entry.AccessCount()
		}
	}
	self.mutex.RUnlock()

	slices.SortFunc(usages, func(a, b GlyphUsage) int {
		totalA := uint64(a.OutlineAccesses) + uint64(a.MaskAccesses)
		totalB := uint64(b.OutlineAccesses) + uint64(b.MaskAccesses)
		if totalA != totalB {
			if totalA > totalB { return -1 }
			return 1
		}
		if a.Face != b.Face {
			if a.Face < b.Face { return -1 }
			return 1
		}
		return int(a.Code) - int(b.Code)
	})
	if len(usages) > n { usages = usages[ : n] }
	return usages
}

// Must be called with the write lock held.
func (self *RenderCache) entriesFor(face font.FaceID) *faceEntries {
	entries, found := self.faces[face]
	if !found {
		entries = &faceEntries{
			outlines: make(map[rune]*outlineEntry, 64),
			masks: make(map[MaskKey]*maskEntry, 64),
		}
		self.faces[face] = entries
	}
	return entries
}

func (self *RenderCache) account(size uint32) {
	newSize := atomic.AddUint64(&self.byteSize, uint64(size))
	for {
		peak := atomic.LoadUint64(&self.peakSize)
		if newSize <= peak { return }
		if atomic.CompareAndSwapUint64(&self.peakSize, peak, newSize) { return }
	}
}
