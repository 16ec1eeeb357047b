package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/glbind/graphics"
)

const triangleVertexShader = `#version 330 core

uniform mat4 matrix;

in vec2 position;
in vec3 color;

out vec3 vColor;

void main() {
    gl_Position = vec4(position, 0.0, 1.0) * matrix;
    vColor = color;
}`

const triangleFragmentShader = `#version 330 core

in vec3 vColor;
out vec4 fragColor;

void main() {
    fragColor = vec4(vColor, 1.0);
}`

// Interleaved position (x, y) and color (r, g, b).
var triangleVertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, 1.0, 0.0, 0.0,
}

var triangleIndices = []uint16{0, 1, 2}

var identityMatrix = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Triangle is a single colored triangle drawn with an identity matrix
// uniform. It exists to exercise the context lifecycle; destroy and
// rebuild it whenever the context is rebound.
type Triangle struct {
	program   uint32
	vao       uint32
	vbo       uint32
	ibo       uint32
	matrixLoc int32
}

// NewTriangle uploads the triangle's buffers and compiles its program.
// A context must be current.
func NewTriangle() (*Triangle, error) {
	t := &Triangle{}

	var err error
	t.program, err = newProgram(triangleVertexShader, triangleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("renderer: triangle program: %w", err)
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.GenBuffers(1, &t.ibo)

	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	posLoc := uint32(gl.GetAttribLocation(t.program, gl.Str("position\x00")))
	colorLoc := uint32(gl.GetAttribLocation(t.program, gl.Str("color\x00")))
	gl.EnableVertexAttribArray(posLoc)
	gl.VertexAttribPointer(posLoc, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(colorLoc)
	gl.VertexAttribPointer(colorLoc, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(2*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(triangleIndices)*2, gl.Ptr(triangleIndices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	t.matrixLoc = gl.GetUniformLocation(t.program, gl.Str("matrix\x00"))
	return t, nil
}

// Draw renders the triangle into frame.
func (t *Triangle) Draw(frame *graphics.Frame) {
	width, height := frame.Dimensions()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.UseProgram(t.program)
	if t.matrixLoc != -1 {
		gl.UniformMatrix4fv(t.matrixLoc, 1, false, &identityMatrix[0])
	}
	gl.BindVertexArray(t.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(triangleIndices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Destroy releases the triangle's GL resources. A context must be
// current.
func (t *Triangle) Destroy() {
	gl.DeleteProgram(t.program)
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteBuffers(1, &t.ibo)
	gl.DeleteVertexArrays(1, &t.vao)
}
