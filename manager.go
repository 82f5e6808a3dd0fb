package showtxt

import "sync"

import "github.com/tinne26/showtxt/surface"

// Interception state for a surface: the drawer that was installed
// before interception began, plus the surface properties resolved
// at that point.
type binding struct {
	target surface.Surface
	original surface.TextDrawer
	capability surface.Capability
	dpi float64
}

// The [Manager] controls text interception on surfaces. While
// interception is active on a surface, its text entry points (draw,
// measure and glyph metrics) are served by the manager's [Renderer]
// instead of the surface's own text drawer. Other primitives are not
// affected.
//
// The manager also keeps track of the current surface (the last one
// opened) and supports an auto mode where interception begins on
// [Manager.Open] and ends on [Manager.Close].
//
// Managers are safe for concurrent use.
type Manager struct {
	mutex sync.Mutex
	renderer *Renderer
	current surface.Surface
	bindings map[surface.ID]*binding
	autoMode bool
}

// Creates a new manager for the given renderer.
func NewManager(renderer *Renderer) *Manager {
	return &Manager{
		renderer: renderer,
		bindings: make(map[surface.ID]*binding, 2),
	}
}

// Returns the manager's renderer.
func (self *Manager) Renderer() *Renderer { return self.renderer }

// Registers a newly created surface as the current one. In auto
// mode, interception begins immediately.
func (self *Manager) Open(target surface.Surface) error {
	if target == nil || target.Closed() { return ErrNoSurfaceOpen }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.current = target
	if self.autoMode {
		if _, active := self.bindings[target.ID()]; !active {
			return self.begin(target)
		}
	}
	return nil
}

// Ends interception on the surface (if active) and closes it. If
// the surface was the current one, there's no current surface
// afterwards.
func (self *Manager) Close(target surface.Surface) error {
	if target == nil { return ErrNoSurfaceOpen }
	self.mutex.Lock()
	self.end(target)
	if self.current == target { self.current = nil }
	self.mutex.Unlock()
	return target.Close()
}

// Begins text interception on the given surface. Returns
// [ErrNoSurfaceOpen] if the surface is nil or closed, and
// [ErrAlreadyActive] if interception is already active on it.
func (self *Manager) Begin(target surface.Surface) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.begin(target)
}

// Same as [Manager.Begin], but for the current surface.
func (self *Manager) BeginCurrent() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.begin(self.current)
}

// Ends text interception on the given surface, restoring the text
// drawer it had before [Manager.Begin]. If interception isn't active
// on the surface, End does nothing.
func (self *Manager) End(target surface.Surface) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.end(target)
}

// Same as [Manager.End], but for the current surface.
func (self *Manager) EndCurrent() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.end(self.current)
}

// Enables or disables auto mode. Changing the mode doesn't affect
// the interception state of already open surfaces.
func (self *Manager) SetAutoMode(enabled bool) {
	self.mutex.Lock()
	self.autoMode = enabled
	self.mutex.Unlock()
}

// Returns whether auto mode is enabled. The default is false.
func (self *Manager) AutoMode() bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.autoMode
}

// Returns whether interception is active on the given surface.
func (self *Manager) IsActive(target surface.Surface) bool {
	if target == nil { return false }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, active := self.bindings[target.ID()]
	return active
}

// Returns the current surface, or nil if none.
func (self *Manager) Current() surface.Surface {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.current
}

// Must be called with the mutex held.
func (self *Manager) begin(target surface.Surface) error {
	if target == nil || target.Closed() { return ErrNoSurfaceOpen }
	id := target.ID()
	if _, active := self.bindings[id]; active { return ErrAlreadyActive }

	self.bindings[id] = &binding{
		target: target,
		original: target.TextDrawer(),
		capability: target.Capability(),
		dpi: target.DPI(),
	}
	target.SetTextDrawer(self.renderer)
	Logger().Info("showtxt: interception started", "surface", uint64(id), "capability", target.Capability().String())
	return nil
}

// Must be called with the mutex held.
func (self *Manager) end(target surface.Surface) {
	if target == nil { return }
	id := target.ID()
	bound, active := self.bindings[id]
	if !active { return }
	target.SetTextDrawer(bound.original)
	delete(self.bindings, id)
	Logger().Info("showtxt: interception ended", "surface", uint64(id),
		"capability", bound.capability.String(), "dpi", bound.dpi)
}
