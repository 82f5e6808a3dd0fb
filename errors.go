package showtxt

import "errors"

// Returned by [Manager.Begin] when interception is already
// active on the given surface.
var ErrAlreadyActive = errors.New("showtxt: interception already active")

// Returned by [Manager] operations when the target surface is
// nil, closed or there's no current surface.
var ErrNoSurfaceOpen = errors.New("showtxt: no surface open")
