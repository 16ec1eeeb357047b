package graphics

import (
	"errors"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Frame is a single frame's draw target on the default framebuffer.
// Obtain one from Display.Draw, issue draws, then call Finish exactly
// once.
type Frame struct {
	context  *Context
	width    int
	height   int
	finished bool
}

func newFrame(context *Context, width, height int) *Frame {
	return &Frame{context: context, width: width, height: height}
}

// Dimensions returns the frame's pixel width and height.
func (f *Frame) Dimensions() (int, int) { return f.width, f.height }

// Clear fills the frame with the given color and sizes the viewport to
// the frame.
func (f *Frame) Clear(r, g, b, a float32) {
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Finish flushes the frame's commands. Finishing is immediate; it does
// not swap buffers.
func (f *Frame) Finish() error {
	if f.finished {
		return errors.New("graphics: frame already finished")
	}
	f.finished = true
	gl.Flush()
	return nil
}
