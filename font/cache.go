package font

import "io/fs"
import "fmt"
import "sort"
import "sync"
import "strings"
import "path/filepath"

// A registry of loaded font faces.
//
// Faces are registered with [Cache.Load], [Cache.LoadAs] or
// [Cache.LoadBytes] and can later be resolved by family and
// style with [Cache.Resolve]. Loading the same source twice
// reuses the parsed font program, and loading the same source
// with the same family and style returns the existing [FaceID].
//
// A Cache is safe for concurrent use.
type Cache struct {
	mutex sync.RWMutex
	faces map[FaceID]*Face
	programs map[string]*program
	nextID FaceID
	onUnload []unloadListener
	nextListener uint64
}

type unloadListener struct {
	id uint64
	fn func(FaceID)
}

// Creates a new, empty face [Cache].
func NewCache() *Cache {
	return &Cache {
		faces: make(map[FaceID]*Face),
		programs: make(map[string]*program),
	}
}

// Returns the current number of faces in the cache.
func (self *Cache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.faces)
}

// Loads the font file at the given path and registers it under
// the family name stored in the font itself.
func (self *Cache) Load(path string, style Style) (FaceID, error) {
	return self.LoadAs(path, "", style)
}

// Loads the font file at the given path and registers it under the
// given family alias. If the family is empty, the family name stored
// in the font is used instead.
func (self *Cache) LoadAs(path string, family string, style Style) (FaceID, error) {
	absPath, err := filepath.Abs(path)
	if err != nil { return 0, fmt.Errorf("%w: %v", ErrFaceNotFound, err) }

	id, found := self.lookupSource(absPath, family, style)
	if found { return id, nil }

	data, err := readFontFile(absPath)
	if err != nil { return 0, err }
	return self.register(absPath, data, family, style, false)
}

// Registers a face from in-memory font bytes. The name plays the role
// of the path: faces loaded with the same name share the parsed program.
// The bytes must not be modified while the face is in use.
func (self *Cache) LoadBytes(name string, data []byte, family string, style Style) (FaceID, error) {
	id, found := self.lookupSource(name, family, style)
	if found { return id, nil }
	return self.register(name, data, family, style, false)
}

// Same as [Cache.LoadAs], but for embedded filesystems.
func (self *Cache) LoadFS(filesys fs.FS, path string, family string, style Style) (FaceID, error) {
	key := "fs:" + path
	id, found := self.lookupSource(key, family, style)
	if found { return id, nil }

	data, err := readFontFileFS(filesys, path)
	if err != nil { return 0, err }
	return self.register(key, data, family, style, false)
}

// Walks the given directory non-recursively and loads all the font
// files in it, with their styles detected from the font names.
// Returns the ids of the added faces, in file name order.
func (self *Cache) LoadDir(dirName string) ([]FaceID, error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return nil, err }

	var ids []FaceID
	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}
			if !hasValidFontExtension(path) { return nil }

			data, err := readFontFile(path)
			if err != nil { return err }
			id, err := self.register(path, data, "", Regular, true)
			if err != nil { return err }
			ids = append(ids, id)
			return nil
		})
	return ids, err
}

// Resolves the family through the given locator and loads the
// resulting path. This is the boundary for external font discovery.
func (self *Cache) LoadFamily(locator Locator, family string, style Style) (FaceID, error) {
	id, err := self.Resolve(family, style)
	if err == nil { return id, nil }

	path, err := locator.ResolvePath(family, style)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%s): %v", ErrFaceNotFound, family, style, err)
	}
	return self.LoadAs(path, family, style)
}

// Releases the given face and notifies the unload listeners. The
// font program is released once no other face uses it. Unloading
// an already unloaded face is a no-op.
func (self *Cache) Unload(id FaceID) {
	self.mutex.Lock()
	face, found := self.faces[id]
	if !found {
		self.mutex.Unlock()
		return
	}
	delete(self.faces, id)
	face.prog.refs -= 1
	if face.prog.refs <= 0 {
		delete(self.programs, face.prog.key)
	}
	listeners := self.onUnload
	self.mutex.Unlock()

	for _, listener := range listeners { listener.fn(id) }
}

// Registers a function to be called after a face is unloaded.
// Listeners are invoked without any cache lock held.
//
// The returned function removes the listener. Calling it more
// than once is a no-op.
func (self *Cache) OnUnload(fn func(FaceID)) (unsubscribe func()) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.nextListener += 1
	id := self.nextListener
	self.onUnload = append(self.onUnload, unloadListener{ id, fn })
	return func() { self.removeListener(id) }
}

func (self *Cache) removeListener(id uint64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	for i, listener := range self.onUnload {
		if listener.id != id { continue }
		// copy on remove, Unload may be iterating the old slice
		listeners := make([]unloadListener, 0, len(self.onUnload) - 1)
		listeners = append(listeners, self.onUnload[ : i]...)
		self.onUnload = append(listeners, self.onUnload[i + 1 : ]...)
		return
	}
}

// Returns the face with the given id, or [ErrFaceNotFound].
func (self *Cache) Face(id FaceID) (*Face, error) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	face, found := self.faces[id]
	if !found { return nil, fmt.Errorf("%w: id %d", ErrFaceNotFound, id) }
	return face, nil
}

// Returns the id of the face registered for the given family and
// style. Family names are compared case-insensitively. When multiple
// faces match, the one registered first wins.
func (self *Cache) Resolve(family string, style Style) (FaceID, error) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	var best FaceID
	for id, face := range self.faces {
		if face.Style != style || !strings.EqualFold(face.Family, family) { continue }
		if best == 0 || id < best { best = id }
	}
	if best == 0 {
		return 0, fmt.Errorf("%w: %s (%s)", ErrFaceNotFound, family, style)
	}
	return best, nil
}

// Returns all the registered faces sorted by id.
func (self *Cache) Faces() []*Face {
	self.mutex.RLock()
	faces := make([]*Face, 0, len(self.faces))
	for _, face := range self.faces { faces = append(faces, face) }
	self.mutex.RUnlock()
	sort.Slice(faces, func(i, j int) bool { return faces[i].ID < faces[j].ID })
	return faces
}

// ---- helpers ----

// Finds a face already registered for the given source, family
// and style. An empty family matches the program's own family.
func (self *Cache) lookupSource(key string, family string, style Style) (FaceID, bool) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	prog, found := self.programs[key]
	if !found { return 0, false }
	if family == "" {
		fam, err := programFamily(prog)
		if err != nil { return 0, false }
		family = fam
	}
	for id, face := range self.faces {
		if face.prog == prog && face.Style == style && face.Family == family {
			return id, true
		}
	}
	return 0, false
}

// Parses (or reuses) the program for the given key and registers
// the face. With detect set, the style is taken from the font.
func (self *Cache) register(key string, data []byte, family string, style Style, detect bool) (FaceID, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	prog, found := self.programs[key]
	if !found {
		var err error
		prog, err = parseProgram(key, data)
		if err != nil { return 0, err }
	}
	if detect { style = programStyle(prog) }
	if family == "" {
		fam, err := programFamily(prog)
		if err != nil || fam == "" {
			return 0, fmt.Errorf("%w: %s: missing family name", ErrInvalidFontData, key)
		}
		family = fam
	}

	// another goroutine may have registered the same face meanwhile
	for id, face := range self.faces {
		if face.prog == prog && face.Style == style && face.Family == family {
			return id, nil
		}
	}

	self.programs[key] = prog
	prog.refs += 1
	self.nextID += 1
	face := &Face {
		ID: self.nextID,
		Family: family,
		Style: style,
		Path: key,
		Format: prog.format,
		UnitsPerEm: prog.upem,
		prog: prog,
	}
	self.faces[face.ID] = face
	return face.ID, nil
}
