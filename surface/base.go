package surface

// Base implements the parts of the [Surface] contract that are common
// to all surfaces: identity, the text drawer slot, text routing and the
// closed state. Concrete surfaces embed it and call [Base.Init].
type Base struct {
	id ID
	outer Surface
	native TextDrawer
	drawer TextDrawer
	closed bool
}

// Assigns a new id to the surface and sets up the strategy slot with
// the surface's own native drawer. The outer surface is the one passed
// to the drawers.
func (self *Base) Init(outer Surface, native TextDrawer) {
	self.id = NextID()
	self.outer = outer
	self.native = native
	self.drawer = native
}

func (self *Base) ID() ID { return self.id }

// Returns the current text drawer.
func (self *Base) TextDrawer() TextDrawer { return self.drawer }

// Returns the native text drawer of the surface.
func (self *Base) NativeTextDrawer() TextDrawer { return self.native }

// Sets the text drawer. A nil drawer restores the native one.
func (self *Base) SetTextDrawer(drawer TextDrawer) {
	if drawer == nil { drawer = self.native }
	self.drawer = drawer
}

func (self *Base) DrawText(req *TextRequest) (Pen, error) {
	if self.closed { return Pen{}, ErrClosed }
	return self.drawer.DrawText(self.outer, req)
}

func (self *Base) MeasureText(req *TextRequest) (float64, error) {
	if self.closed { return 0, ErrClosed }
	return self.drawer.MeasureText(self.outer, req)
}

func (self *Base) GlyphMetrics(req *TextRequest, code rune) (Metrics, error) {
	if self.closed { return Metrics{}, ErrClosed }
	return self.drawer.GlyphMetrics(self.outer, req, code)
}

func (self *Base) Closed() bool { return self.closed }

// Marks the surface as closed. Returns [ErrClosed] if it
// was already closed.
func (self *Base) MarkClosed() error {
	if self.closed { return ErrClosed }
	self.closed = true
	return nil
}
