// Package binding tracks whether a GPU rendering context is bound to
// the calling thread and coordinates the handoff when a drawable
// surface becomes available or unavailable.
//
// A Context is current on at most one thread at a time. Making it
// current on another thread while it is still bound elsewhere is a
// platform-level hazard this package does not defend against; the
// caller serializes context ownership.
package binding

import "unsafe"

// Surface is a drawable target a context can be bound to: a window
// backbuffer, a pbuffer, etc.
type Surface interface {
	// Dimensions returns the pixel width and height of the surface.
	Dimensions() (width, height int)
}

// Driver is the platform layer performing the actual thread binding.
// Every operation is a blocking, synchronous call into the platform
// and returns or fails immediately.
type Driver interface {
	// Bind makes the context current on the calling thread, bound to s.
	Bind(s Surface) error

	// Unbind releases the calling thread's binding.
	Unbind() error

	// IsCurrent reports whether the context is current on the calling
	// thread. No side effects.
	IsCurrent() bool

	// ProcAddress looks up a graphics API entry point by name. Only
	// meaningful while a compatible context is current on some thread.
	ProcAddress(name string) unsafe.Pointer
}
