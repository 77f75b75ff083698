package raster

// PositionAttribute is the vertex attribute that receives positions.
const PositionAttribute = "vertexPosition"

// Scene is the fully initialised pipeline for one variant. Construction runs
// the setup steps in order; a Scene is only returned once every step has
// succeeded, so a failed setup never draws a frame.
type Scene struct {
	variant  Variant
	program  *ShaderProgram
	geometry *GeometryBuffer
	binding  *AttributeBinding
	renderer *Renderer
}

// NewScene compiles the program, resolves its inputs, uploads the variant
// geometry, binds it and makes everything current.
func NewScene(dev Device, v Variant, vertexSource, fragmentSource string, clearColor [4]float32) (*Scene, error) {
	program, err := CompileProgram(dev, vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	if _, err := program.UniformLocation(ModelMatrixUniform); err != nil {
		program.Delete()
		return nil, err
	}

	geometry, err := NewGeometryBuffer(dev, v.Geometry)
	if err != nil {
		program.Delete()
		return nil, err
	}

	binding, err := Bind(program, PositionAttribute, v.Geometry.Components, geometry)
	if err != nil {
		geometry.Delete()
		program.Delete()
		return nil, err
	}

	renderer := NewRenderer(dev, RendererConfig{
		DepthTest:  v.DepthTest,
		ClearColor: clearColor,
	})
	renderer.Use(program, binding)

	Logger().Info("scene ready",
		"variant", v.Name,
		"vertices", geometry.VertexCount(),
		"indices", geometry.IndexCount(),
		"depth", v.DepthTest)

	return &Scene{
		variant:  v,
		program:  program,
		geometry: geometry,
		binding:  binding,
		renderer: renderer,
	}, nil
}

// Variant returns the variant the scene was built for.
func (s *Scene) Variant() Variant { return s.variant }

// Renderer returns the scene's renderer.
func (s *Scene) Renderer() *Renderer { return s.renderer }

// Draw renders one frame of state.
func (s *Scene) Draw(state *TransformState) {
	s.renderer.Render(s.program, s.binding, state.ModelMatrix(), s.binding.IndexCount())
}

// Delete releases all device resources of the scene.
func (s *Scene) Delete() {
	s.binding.Delete()
	s.geometry.Delete()
	s.program.Delete()
}
