// Package graphics links a rendering core to an OpenGL context
// provider. The Backend interface is the glue between the core and a
// context provider such as GLFW or EGL; the Context struct manages
// what the core needs to execute OpenGL commands; the Facade interface
// is what resource constructors accept.
package graphics

import "unsafe"

// Backend is implemented by context providers. The core uses it to
// resolve GL entry points and to size default framebuffers and
// viewports.
//
// ProcAddress assumes a compatible context has been made current
// before it is called.
type Backend interface {
	// ProcAddress returns the address of an OpenGL function.
	ProcAddress(name string) unsafe.Pointer

	// FramebufferDimensions returns the dimensions of the window,
	// screen, or offscreen target.
	FramebufferDimensions() (width, height int)

	// SetFramebufferDimensions updates the recorded dimensions. Client
	// code calls this when the underlying surface is resized.
	SetFramebufferDimensions(width, height int)

	// IsCurrent reports whether the OpenGL context is the current one
	// on the calling thread.
	IsCurrent() bool
}

// Facade is implemented by types that can hand out the graphics core.
type Facade interface {
	Context() *Context
}
