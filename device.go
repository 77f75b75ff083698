package raster

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ClearMask selects which framebuffer planes are cleared at the start of a frame.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// Has reports whether all bits of other are set in m.
func (m ClearMask) Has(other ClearMask) bool { return m&other == other }

// Device is the GPU command surface the pipeline is built on.
// The OpenGL implementation lives in backend/opengl.
//
// Device methods are called from a single thread only. Runtime GPU failures
// are not reported; only shader compilation and program linkage return a
// diagnostic log.
type Device interface {
	CreateVertexBuffer(data []float32) uint32
	CreateIndexBuffer(data []uint16) uint32
	DeleteBuffer(id uint32)

	// CompileShader compiles one stage. On failure ok is false and log holds
	// the compiler output.
	CompileShader(stage ShaderStage, source string) (id uint32, log string, ok bool)
	DeleteShader(id uint32)
	// LinkProgram links two compiled stages. On failure ok is false and log
	// holds the linker output.
	LinkProgram(vertex, fragment uint32) (id uint32, log string, ok bool)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	// AttribLocation and UniformLocation return -1 for unknown names.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttrib(location uint32)
	// VertexAttribPointer makes location read components tightly packed
	// floats per vertex from buffer.
	VertexAttribPointer(location uint32, components int32, buffer uint32)
	BindIndexBuffer(id uint32)

	EnableDepthTest()
	SetClearColor(r, g, b, a float32)
	Viewport(width, height int32)
	Clear(mask ClearMask)
	UniformMatrix4(location int32, m mgl32.Mat4)
	// DrawIndexedTriangles draws count uint16 indices from offset 0 of the
	// bound index buffer.
	DrawIndexedTriangles(count int32)
}
