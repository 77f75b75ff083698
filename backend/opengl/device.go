// Package opengl provides the OpenGL 4.1 Device for the raster package and
// GLFW adapters for keyboard input and value display.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/raster"
)

// Device implements raster.Device on the current OpenGL context.
// gl.Init must have been called on the context's thread.
type Device struct{}

// NewDevice returns a Device for the current context.
func NewDevice() *Device {
	return &Device{}
}

var _ raster.Device = (*Device)(nil)

// CreateVertexBuffer uploads data into a new static ARRAY_BUFFER.
func (d *Device) CreateVertexBuffer(data []float32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return id
}

// CreateIndexBuffer uploads data into a new static ELEMENT_ARRAY_BUFFER.
// The current vertex array is unbound first so its index binding is not
// replaced.
func (d *Device) CreateIndexBuffer(data []uint16) uint32 {
	gl.BindVertexArray(0)

	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	if len(data) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return id
}

func (d *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (d *Device) CompileShader(stage raster.ShaderStage, source string) (uint32, string, bool) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == raster.StageFragment {
		kind = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return shader, trimLog(log), false
	}
	return shader, "", true
}

func (d *Device) DeleteShader(id uint32) {
	if id != 0 {
		gl.DeleteShader(id)
	}
}

func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, string, bool) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return program, trimLog(log), false
	}

	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)
	return program, "", true
}

func (d *Device) DeleteProgram(id uint32) {
	if id != 0 {
		gl.DeleteProgram(id)
	}
}

func (d *Device) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(terminate(name)))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(terminate(name)))
}

func (d *Device) CreateVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (d *Device) EnableVertexAttrib(location uint32) {
	gl.EnableVertexAttribArray(location)
}

// VertexAttribPointer points location at buffer with a tightly packed float
// layout. The ARRAY_BUFFER binding is captured by the bound vertex array.
func (d *Device) VertexAttribPointer(location uint32, components int32, buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// BindIndexBuffer records id as the index source of the bound vertex array.
func (d *Device) BindIndexBuffer(id uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
}

func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (d *Device) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *Device) Clear(mask raster.ClearMask) {
	var bits uint32
	if mask.Has(raster.ClearColor) {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask.Has(raster.ClearDepth) {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// UniformMatrix4 uploads m as-is; mgl32 matrices are already column-major.
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) DrawIndexedTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func trimLog(log []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(log), "\x00"))
}
