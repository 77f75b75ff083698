package raster

import "github.com/go-gl/mathgl/mgl32"

// Geometry is CPU-side vertex and index data before upload.
//
// Positions holds Components floats per vertex, tightly packed. Indices are
// triangle triples into the vertex sequence. Winding order is not checked.
type Geometry struct {
	Positions  []float32
	Components int
	Indices    []uint16
}

// VertexCount returns the number of whole vertices in Positions.
func (g Geometry) VertexCount() int {
	if g.Components <= 0 {
		return 0
	}
	return len(g.Positions) / g.Components
}

// Validate checks the layout rules for uploadable geometry.
func (g Geometry) Validate() error {
	if g.Components != 2 && g.Components != 3 {
		return geometryErrorf("components per vertex must be 2 or 3, got %d", g.Components)
	}
	if len(g.Positions)%g.Components != 0 {
		return geometryErrorf("%d position floats is not a multiple of %d components", len(g.Positions), g.Components)
	}
	if len(g.Indices)%3 != 0 {
		return geometryErrorf("index count %d is not a multiple of 3", len(g.Indices))
	}
	n := g.VertexCount()
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return geometryErrorf("index %d at position %d is out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// Vertex returns vertex i as a homogeneous point. Missing components are 0.
func (g Geometry) Vertex(i int) mgl32.Vec4 {
	p := mgl32.Vec4{0, 0, 0, 1}
	copy(p[:g.Components], g.Positions[i*g.Components:])
	return p
}

// Transform applies m to every vertex and returns the resulting positions.
func (g Geometry) Transform(m mgl32.Mat4) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, g.VertexCount())
	for i := range out {
		out[i] = m.Mul4x1(g.Vertex(i)).Vec3()
	}
	return out
}

// QuadGeometry returns the unit quad centred at the origin as two triangles.
func QuadGeometry() Geometry {
	return Geometry{
		Positions: []float32{
			-0.5, -0.5, // 0
			0.5, -0.5, // 1
			0.5, 0.5, // 2
			-0.5, 0.5, // 3
		},
		Components: 2,
		Indices: []uint16{
			0, 1, 3,
			3, 1, 2,
		},
	}
}

// CubeGeometry returns the unit cube centred at the origin, 12 triangles.
func CubeGeometry() Geometry {
	return Geometry{
		Positions: []float32{
			-0.5, -0.5, -0.5, // 0
			0.5, -0.5, -0.5, // 1
			0.5, 0.5, -0.5, // 2
			-0.5, 0.5, -0.5, // 3
			-0.5, -0.5, 0.5, // 4
			0.5, -0.5, 0.5, // 5
			0.5, 0.5, 0.5, // 6
			-0.5, 0.5, 0.5, // 7
		},
		Components: 3,
		Indices: []uint16{
			4, 5, 6, 6, 7, 4, // front
			1, 0, 3, 3, 2, 1, // back
			0, 4, 7, 7, 3, 0, // left
			5, 1, 2, 2, 6, 5, // right
			7, 6, 2, 2, 3, 7, // top
			0, 1, 5, 5, 4, 0, // bottom
		},
	}
}

// GeometryBuffer owns uploaded vertex and index data. It is immutable once
// created.
type GeometryBuffer struct {
	dev         Device
	vbo, ibo    uint32
	components  int
	vertexCount int
	indexCount  int
}

// NewGeometryBuffer validates g and uploads it to the device.
// Nothing is allocated on the device when validation fails.
func NewGeometryBuffer(dev Device, g Geometry) (*GeometryBuffer, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	b := &GeometryBuffer{
		dev:         dev,
		vbo:         dev.CreateVertexBuffer(g.Positions),
		ibo:         dev.CreateIndexBuffer(g.Indices),
		components:  g.Components,
		vertexCount: g.VertexCount(),
		indexCount:  len(g.Indices),
	}

	Logger().Debug("geometry uploaded",
		"vertices", b.vertexCount,
		"indices", b.indexCount,
		"components", b.components)

	return b, nil
}

// Components returns the number of floats per vertex.
func (b *GeometryBuffer) Components() int { return b.components }

// VertexCount returns the number of uploaded vertices.
func (b *GeometryBuffer) VertexCount() int { return b.vertexCount }

// IndexCount returns the number of uploaded indices.
func (b *GeometryBuffer) IndexCount() int { return b.indexCount }

// Delete releases the device buffers.
func (b *GeometryBuffer) Delete() {
	if b.ibo != 0 {
		b.dev.DeleteBuffer(b.ibo)
		b.ibo = 0
	}
	if b.vbo != 0 {
		b.dev.DeleteBuffer(b.vbo)
		b.vbo = 0
	}
}
