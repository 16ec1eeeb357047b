package binding

import "errors"

// ErrNotCurrent is returned when state that only exists while the
// context is current (framebuffer dimensions) is queried while it is
// not.
var ErrNotCurrent = errors.New("binding: context is not current")

// ErrContextLost marks a context stranded by a failed rebinding: the
// old surface was released, the new one could not be bound, and the
// old binding could not be restored. The context holds no surface and
// must be recreated by the caller.
var ErrContextLost = errors.New("binding: context lost")

// BindError reports a binding operation rejected by the platform
// layer. There is no automatic retry; recovery policy belongs to the
// caller.
type BindError struct {
	Op  string // "bind" or "unbind"
	Err error
}

func (e *BindError) Error() string {
	return "binding: " + e.Op + " failed: " + e.Err.Error()
}

func (e *BindError) Unwrap() error { return e.Err }
