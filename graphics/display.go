package graphics

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/glbind/binding"
	"github.com/richinsley/glbind/takeable"
)

// Default placeholder framebuffer dimensions, used until client code
// records the real surface size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Display combines a rendering core with the bound platform context it
// draws through. The platform context lives in a takeable cell shared
// with the backend handed to the core, so surface handoffs can move it
// out exclusively without the core ever observing a half-bound
// context.
type Display struct {
	context *Context
	cell    *takeable.Cell[*binding.Context]
}

type displayBackend struct {
	cell *takeable.Cell[*binding.Context]
}

func (b *displayBackend) ProcAddress(name string) unsafe.Pointer {
	return b.cell.Get().ProcAddress(name)
}

func (b *displayBackend) FramebufferDimensions() (int, int) {
	w, h, err := b.cell.Get().FramebufferDimensions()
	if err != nil {
		// The core always needs some dimensions to size viewports;
		// hand it the placeholder until a context is bound again.
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

func (b *displayBackend) SetFramebufferDimensions(width, height int) {
	b.cell.Get().SetFramebufferDimensions(width, height)
}

func (b *displayBackend) IsCurrent() bool {
	return b.cell.Get().IsCurrent()
}

// NewDisplay builds a Display from a context that is current on the
// calling thread. A compatibility check verifies that the
// implementation supports everything the rendering core needs.
func NewDisplay(bc *binding.Context) (*Display, error) {
	return newDisplay(bc, true)
}

// NewDisplayUnchecked is NewDisplay without the compatibility check.
// The resulting display assumes the implementation is adequate.
func NewDisplayUnchecked(bc *binding.Context) (*Display, error) {
	return newDisplay(bc, false)
}

func newDisplay(bc *binding.Context, checked bool) (*Display, error) {
	cell := takeable.New(bc)
	context, err := NewContext(&displayBackend{cell: cell}, checked)
	if err != nil {
		return nil, fmt.Errorf("graphics: display creation failed: %w", err)
	}
	return &Display{context: context, cell: cell}, nil
}

// Context returns the rendering core. Implements Facade.
func (d *Display) Context() *Context { return d.context }

// GLContext borrows the inner platform context.
func (d *Display) GLContext() *binding.Context { return d.cell.Get() }

// SetFramebufferDimensions records new surface dimensions. Client code
// calls this on resize events; the windowing layer does not push them
// automatically.
func (d *Display) SetFramebufferDimensions(width, height int) {
	d.cell.Borrow(func(bc *binding.Context) {
		bc.SetFramebufferDimensions(width, height)
	})
}

// RebindSurface hands the platform context off to a new drawable
// surface. The context is taken out of the shared cell for the
// two-step handoff and reinserted whether or not the handoff
// succeeded; the error reports what the platform rejected.
func (d *Display) RebindSurface(s binding.Surface) error {
	return d.cell.Swap(func(bc *binding.Context) (*binding.Context, error) {
		return bc, bc.MakeCurrent(s)
	})
}

// Draw starts drawing on the backbuffer and returns a Frame sized to
// the current framebuffer dimensions. Finishing the frame flushes it;
// swapping buffers stays with the surface owner.
func (d *Display) Draw() *Frame {
	w, h := d.context.FramebufferDimensions()
	return newFrame(d.context, w, h)
}
