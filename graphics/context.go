package graphics

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Context manages the OpenGL state the rendering core depends on:
// loaded function pointers, the implementation's version and identity
// strings, and the backend used to size default framebuffers.
//
// Creating a Context loads every GL entry point through the backend's
// proc resolution, so the backend's context must be current on the
// calling thread.
type Context struct {
	backend  Backend
	version  Version
	renderer string
	vendor   string
}

// IncompatibleOpenGLError reports an OpenGL implementation too old for
// the rendering core. Fatal for the context instance; there is nothing
// to retry.
type IncompatibleOpenGLError struct {
	Version Version
}

func (e *IncompatibleOpenGLError) Error() string {
	return fmt.Sprintf("graphics: incompatible OpenGL implementation %s (need OpenGL %d.%d or OpenGL ES %d.%d)",
		e.Version, minGLMajor, minGLMinor, minGLESMajor, minGLESMinor)
}

// NewContext builds a graphics core on top of backend. When checked is
// true the implementation's version is verified against the minimum
// the core supports.
func NewContext(backend Backend, checked bool) (*Context, error) {
	if err := gl.InitWithProcAddrFunc(backend.ProcAddress); err != nil {
		return nil, fmt.Errorf("graphics: failed to load OpenGL functions: %w", err)
	}

	c := &Context{backend: backend}

	raw := gl.GoStr(gl.GetString(gl.VERSION))
	version, err := ParseVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("graphics: %w", err)
	}
	c.version = version
	c.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	c.vendor = gl.GoStr(gl.GetString(gl.VENDOR))

	if checked && !version.Supported() {
		return nil, &IncompatibleOpenGLError{Version: version}
	}
	return c, nil
}

// Version returns the OpenGL version reported by the implementation.
func (c *Context) Version() Version { return c.version }

// Renderer returns the GL_RENDERER string.
func (c *Context) Renderer() string { return c.renderer }

// Vendor returns the GL_VENDOR string.
func (c *Context) Vendor() string { return c.vendor }

// FramebufferDimensions returns the backend's recorded framebuffer
// dimensions.
func (c *Context) FramebufferDimensions() (int, int) {
	return c.backend.FramebufferDimensions()
}

// IsCurrent reports whether the backend's context is current on the
// calling thread.
func (c *Context) IsCurrent() bool {
	return c.backend.IsCurrent()
}
