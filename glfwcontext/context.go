// Package glfwcontext provides the GLFW windowing backend: a window
// whose GL context can be handed to the binding layer, plus the
// library init/terminate lifecycle.
package glfwcontext

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/glbind/binding"
	options "github.com/richinsley/glbind/options"
)

// Window owns a GLFW window and its associated GL context. It is the
// drawable surface the binding layer targets. In GLFW the context and
// the surface are the same object, so Window also carries the context
// identity used by Driver.
type Window struct {
	window *glfw.Window

	// Functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

// New creates a GLFW window with a 3.3 core forward-compatible
// context. The window is hidden when visible is false. share, if
// non-nil, makes the new context share objects with share's context.
// The new context is NOT current; bind it through binding.Context.
func New(opts *options.Options, visible bool, share *Window) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if *opts.BitDepth > 8 {
		glfw.WindowHint(glfw.RedBits, 16)
		glfw.WindowHint(glfw.GreenBits, 16)
		glfw.WindowHint(glfw.BlueBits, 16)
	}

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var sharewin *glfw.Window
	if share != nil {
		sharewin = share.window
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, sharewin)
	if err != nil {
		return nil, fmt.Errorf("glfwcontext: failed to create window: %w", err)
	}

	w := &Window{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(w.glfwKeyCallback)

	return w, nil
}

// Dimensions implements binding.Surface with the window's framebuffer
// size in pixels.
func (w *Window) Dimensions() (int, int) {
	return w.window.GetFramebufferSize()
}

// RegisterKeyCallback registers a function to be called when key is
// pressed.
func (w *Window) RegisterKeyCallback(key glfw.Key, f func()) {
	w.keyCallbacks[key] = f
}

func (w *Window) glfwKeyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Escape closes the window.
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := w.keyCallbacks[key]; ok {
			callback()
		}
	}
}

// SetResizeCallback registers f to receive the new framebuffer
// dimensions when the window is resized. The binding layer does not
// learn about resizes on its own; route this to
// Display.SetFramebufferDimensions or equivalent.
func (w *Window) SetResizeCallback(f func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		f(width, height)
	})
}

// SetIconifyCallback registers f to be called when the window is
// iconified (true) or restored (false). This is the closest desktop
// analog of an application suspend/resume cycle.
func (w *Window) SetIconifyCallback(f func(iconified bool)) {
	w.window.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		f(iconified)
	})
}

// ShouldClose reports whether the window received a close request.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// EndFrame swaps the backbuffer and polls pending events.
func (w *Window) EndFrame() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

// Shutdown destroys the window.
func (w *Window) Shutdown() {
	w.window.Destroy()
}

// Window returns the underlying *glfw.Window. Kept for the
// context-sharing case.
func (w *Window) Window() *glfw.Window {
	return w.window
}

// Driver implements binding.Driver over the GLFW library. GLFW reports
// failures through its error callback, which the Go bindings turn into
// panics; Driver converts those back into errors.
type Driver struct {
	bound *glfw.Window
}

// NewDriver returns a driver for binding window contexts on the
// calling thread.
func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Bind(s binding.Surface) error {
	w, ok := s.(*Window)
	if !ok {
		return fmt.Errorf("glfwcontext: surface %T is not a glfw window", s)
	}
	if err := catch("make context current", w.window.MakeContextCurrent); err != nil {
		return err
	}
	d.bound = w.window
	return nil
}

func (d *Driver) Unbind() error {
	if err := catch("detach context", glfw.DetachCurrentContext); err != nil {
		return err
	}
	d.bound = nil
	return nil
}

func (d *Driver) IsCurrent() bool {
	return d.bound != nil && glfw.GetCurrentContext() == d.bound
}

func (d *Driver) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func catch(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("glfwcontext: %s: %w", op, e)
				return
			}
			err = fmt.Errorf("glfwcontext: %s: %v", op, r)
		}
	}()
	fn()
	return nil
}

// Time returns the GLFW timer value in seconds.
func Time() float64 {
	return glfw.GetTime()
}

// PollEvents processes pending window events. Must be called from the
// main thread.
func PollEvents() {
	glfw.PollEvents()
}

// WaitEvents blocks until at least one window event arrives, then
// processes pending events. Must be called from the main thread.
func WaitEvents() {
	glfw.WaitEvents()
}

// Init initializes GLFW. Must be called from the main thread, which it
// locks the calling goroutine to.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfwcontext: init failed: %w", err)
	}
	log.Printf("GLFW initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW terminated")
}
