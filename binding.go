package raster

// AttributeBinding ties one program attribute to a GeometryBuffer's vertex
// data and makes the buffer's indices the active index source. It is the
// ready-to-draw handle the Renderer requires; it is created once and reused
// every frame.
type AttributeBinding struct {
	dev        Device
	vao        uint32
	program    *ShaderProgram
	buffer     *GeometryBuffer
	location   uint32
	components int
}

// Bind records the attribute and index state for buffer in a new vertex
// array. componentsPerVertex must match the buffer layout.
func Bind(program *ShaderProgram, attribute string, componentsPerVertex int, buffer *GeometryBuffer) (*AttributeBinding, error) {
	loc, err := program.AttributeLocation(attribute)
	if err != nil {
		return nil, err
	}
	if componentsPerVertex != buffer.Components() {
		return nil, geometryErrorf("attribute %q reads %d components but buffer holds %d per vertex",
			attribute, componentsPerVertex, buffer.Components())
	}

	dev := program.dev
	b := &AttributeBinding{
		dev:        dev,
		vao:        dev.CreateVertexArray(),
		program:    program,
		buffer:     buffer,
		location:   loc,
		components: componentsPerVertex,
	}

	dev.BindVertexArray(b.vao)
	dev.EnableVertexAttrib(loc)
	dev.VertexAttribPointer(loc, int32(componentsPerVertex), buffer.vbo)
	dev.BindIndexBuffer(buffer.ibo)
	dev.BindVertexArray(0)

	Logger().Debug("attribute bound",
		"attribute", attribute,
		"location", loc,
		"components", componentsPerVertex)

	return b, nil
}

// Program returns the program the binding was created for.
func (b *AttributeBinding) Program() *ShaderProgram { return b.program }

// Buffer returns the bound geometry.
func (b *AttributeBinding) Buffer() *GeometryBuffer { return b.buffer }

// IndexCount returns the number of indices available to draw.
func (b *AttributeBinding) IndexCount() int { return b.buffer.IndexCount() }

// Delete releases the vertex array. The program and buffer are not owned.
func (b *AttributeBinding) Delete() {
	if b.vao != 0 {
		b.dev.DeleteVertexArray(b.vao)
		b.vao = 0
	}
}
