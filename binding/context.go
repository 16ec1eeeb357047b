package binding

import (
	"errors"
	"fmt"
	"unsafe"
)

type state int

const (
	notCurrent state = iota
	current
)

// Context is an exclusive-access token for issuing graphics commands
// through a platform rendering context. It is either current (bound to
// the calling thread and associated with exactly one drawable surface
// of known dimensions) or not current.
//
// Rebinding to a new surface always transitions through not-current
// first; the platform consumes the old binding before issuing a new
// one.
type Context struct {
	driver  Driver
	state   state
	surface Surface

	// Dimensions recorded for the bound surface. Snapshotted from the
	// surface at bind time; the windowing layer does not push resize
	// notifications here, so the owning application refreshes them via
	// SetFramebufferDimensions.
	width, height int
}

// New returns a not-current context driven by d.
func New(d Driver) *Context {
	return &Context{driver: d}
}

// Wrap returns a context that is already current on the calling
// thread, bound to s. Use it for platforms whose context-creation call
// leaves the new context current.
func Wrap(d Driver, s Surface) *Context {
	w, h := s.Dimensions()
	return &Context{driver: d, state: current, surface: s, width: w, height: h}
}

// MakeCurrent binds the context to the calling thread with s as its
// drawable surface and records the surface dimensions.
//
// If the context is already current this is a rebinding: the old
// surface is released first. The old surface is retained until the new
// binding succeeds; if the new binding fails, the old binding is
// restored and the context stays current on its previous surface. If
// the restore also fails the context is left not-current with no
// surface and the returned error wraps ErrContextLost.
func (c *Context) MakeCurrent(s Surface) error {
	var prev Surface
	if c.state == current {
		prev = c.surface
		if err := c.driver.Unbind(); err != nil {
			return &BindError{Op: "unbind", Err: err}
		}
		c.state = notCurrent
		c.surface = nil
	}

	if err := c.driver.Bind(s); err != nil {
		if prev == nil {
			return &BindError{Op: "bind", Err: err}
		}
		if rerr := c.driver.Bind(prev); rerr != nil {
			c.width, c.height = 0, 0
			return &BindError{Op: "bind", Err: fmt.Errorf("%v (restoring previous surface: %v): %w", err, rerr, ErrContextLost)}
		}
		c.state = current
		c.surface = prev
		return &BindError{Op: "bind", Err: err}
	}

	c.state = current
	c.surface = s
	c.width, c.height = s.Dimensions()
	return nil
}

// MakeNotCurrent releases the thread binding. Calling it on a context
// that is already not current is a no-op. It fails if the context is
// current on a different thread than the caller.
func (c *Context) MakeNotCurrent() error {
	if c.state == notCurrent {
		return nil
	}
	if !c.driver.IsCurrent() {
		return &BindError{Op: "unbind", Err: errors.New("context is current on another thread")}
	}
	if err := c.driver.Unbind(); err != nil {
		return &BindError{Op: "unbind", Err: err}
	}
	c.state = notCurrent
	c.surface = nil
	c.width, c.height = 0, 0
	return nil
}

// IsCurrent reports whether the calling thread holds the binding. No
// side effects. Local state alone can go stale if another context
// takes over the thread binding, so the platform is consulted as well.
func (c *Context) IsCurrent() bool {
	return c.state == current && c.driver.IsCurrent()
}

// FramebufferDimensions returns the last dimensions recorded for the
// bound surface. Returns ErrNotCurrent while the context is not
// current; the dimensions are only meaningful alongside a binding.
func (c *Context) FramebufferDimensions() (width, height int, err error) {
	if c.state != current {
		return 0, 0, ErrNotCurrent
	}
	return c.width, c.height, nil
}

// SetFramebufferDimensions records new dimensions for the bound
// surface. Updates arriving while the context is not current are
// discarded, not queued; they belong to a surface the context is no
// longer associated with.
func (c *Context) SetFramebufferDimensions(width, height int) {
	if c.state != current {
		return
	}
	c.width, c.height = width, height
}

// ProcAddress resolves a graphics API entry point through the platform
// layer. Only valid while a context from the same device or display is
// current on some thread.
func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return c.driver.ProcAddress(name)
}
