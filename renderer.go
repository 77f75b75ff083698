package raster

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrixUniform is the uniform that receives the model matrix.
const ModelMatrixUniform = "modelMatrix"

// RendererConfig is fixed for the lifetime of a Renderer.
type RendererConfig struct {
	// DepthTest enables depth testing once at construction and adds the
	// depth plane to every clear. When false, depth state is never touched.
	DepthTest bool

	ClearColor [4]float32
}

// Renderer issues the per-frame clear, uniform upload and draw.
type Renderer struct {
	dev    Device
	mask   ClearMask
	frames int
}

// NewRenderer applies the session state of cfg to dev.
func NewRenderer(dev Device, cfg RendererConfig) *Renderer {
	r := &Renderer{dev: dev, mask: ClearColor}

	c := cfg.ClearColor
	dev.SetClearColor(c[0], c[1], c[2], c[3])
	if cfg.DepthTest {
		dev.EnableDepthTest()
		r.mask |= ClearDepth
	}
	return r
}

// ClearMask returns the planes cleared at the start of each frame.
func (r *Renderer) ClearMask() ClearMask { return r.mask }

// Frames returns the number of frames drawn so far.
func (r *Renderer) Frames() int { return r.frames }

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.dev.Viewport(int32(width), int32(height))
}

// Use makes program and binding current. Binding the same pair again has
// no further effect on the device.
func (r *Renderer) Use(program *ShaderProgram, binding *AttributeBinding) {
	r.dev.UseProgram(program.id)
	r.dev.BindVertexArray(binding.vao)
}

// Render draws one frame with program and binding current: clear, upload
// model to the program's ModelMatrixUniform, then one indexed triangle draw
// of indexCount uint16 indices from offset 0.
//
// A program without the model uniform is a setup error; Render logs it and
// draws nothing. NewScene resolves the uniform up front so this cannot
// happen there.
func (r *Renderer) Render(program *ShaderProgram, binding *AttributeBinding, model mgl32.Mat4, indexCount int) {
	loc, err := program.UniformLocation(ModelMatrixUniform)
	if err != nil {
		Logger().Error("render skipped", "err", err)
		return
	}
	if binding.Program() != program {
		Logger().Error("render skipped", "reason", "binding belongs to another program",
			"program", program.ID(), "bindingProgram", binding.Program().ID())
		return
	}

	r.Use(program, binding)

	r.dev.Clear(r.mask)
	r.dev.UniformMatrix4(loc, model)
	r.dev.DrawIndexedTriangles(int32(indexCount))
	r.frames++
}
