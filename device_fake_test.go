package raster_test

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/raster"
)

// fakeDevice records every call as a short string and hands out sequential
// handles. Attribute and uniform names are resolved from the maps; missing
// names return -1.
type fakeDevice struct {
	calls    []string
	nextID   uint32
	attribs  map[string]int32
	uniforms map[string]int32

	failStage  map[raster.ShaderStage]string
	failLink   string
	lastMatrix mgl32.Mat4
	drawCounts []int32
	deleted    int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		attribs:   map[string]int32{raster.PositionAttribute: 0},
		uniforms:  map[string]int32{raster.ModelMatrixUniform: 3},
		failStage: make(map[raster.ShaderStage]string),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

// callsWithPrefix returns the recorded calls that start with prefix.
func (d *fakeDevice) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (d *fakeDevice) reset() { d.calls = nil }

func (d *fakeDevice) CreateVertexBuffer(data []float32) uint32 {
	id := d.id()
	d.record("CreateVertexBuffer(%d)=%d", len(data), id)
	return id
}

func (d *fakeDevice) CreateIndexBuffer(data []uint16) uint32 {
	id := d.id()
	d.record("CreateIndexBuffer(%d)=%d", len(data), id)
	return id
}

func (d *fakeDevice) DeleteBuffer(id uint32) {
	d.deleted++
	d.record("DeleteBuffer(%d)", id)
}

func (d *fakeDevice) CompileShader(stage raster.ShaderStage, source string) (uint32, string, bool) {
	id := d.id()
	d.record("CompileShader(%s)=%d", stage, id)
	if log, ok := d.failStage[stage]; ok {
		return id, log, false
	}
	return id, "", true
}

func (d *fakeDevice) DeleteShader(id uint32) {
	d.deleted++
	d.record("DeleteShader(%d)", id)
}

func (d *fakeDevice) LinkProgram(vertex, fragment uint32) (uint32, string, bool) {
	id := d.id()
	d.record("LinkProgram(%d,%d)=%d", vertex, fragment, id)
	if d.failLink != "" {
		return id, d.failLink, false
	}
	return id, "", true
}

func (d *fakeDevice) DeleteProgram(id uint32) {
	d.deleted++
	d.record("DeleteProgram(%d)", id)
}

func (d *fakeDevice) UseProgram(id uint32) { d.record("UseProgram(%d)", id) }

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	d.record("AttribLocation(%s)", name)
	if loc, ok := d.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation(%s)", name)
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	id := d.id()
	d.record("CreateVertexArray=%d", id)
	return id
}

func (d *fakeDevice) DeleteVertexArray(id uint32) {
	d.deleted++
	d.record("DeleteVertexArray(%d)", id)
}

func (d *fakeDevice) BindVertexArray(id uint32) { d.record("BindVertexArray(%d)", id) }

func (d *fakeDevice) EnableVertexAttrib(location uint32) {
	d.record("EnableVertexAttrib(%d)", location)
}

func (d *fakeDevice) VertexAttribPointer(location uint32, components int32, buffer uint32) {
	d.record("VertexAttribPointer(%d,%d,%d)", location, components, buffer)
}

func (d *fakeDevice) BindIndexBuffer(id uint32) { d.record("BindIndexBuffer(%d)", id) }

func (d *fakeDevice) EnableDepthTest() { d.record("EnableDepthTest") }

func (d *fakeDevice) SetClearColor(r, g, b, a float32) {
	d.record("SetClearColor(%g,%g,%g,%g)", r, g, b, a)
}

func (d *fakeDevice) Viewport(width, height int32) { d.record("Viewport(%d,%d)", width, height) }

func (d *fakeDevice) Clear(mask raster.ClearMask) {
	var planes []string
	if mask.Has(raster.ClearColor) {
		planes = append(planes, "color")
	}
	if mask.Has(raster.ClearDepth) {
		planes = append(planes, "depth")
	}
	d.record("Clear(%s)", strings.Join(planes, "|"))
}

func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.lastMatrix = m
	d.record("UniformMatrix4(%d)", location)
}

func (d *fakeDevice) DrawIndexedTriangles(count int32) {
	d.drawCounts = append(d.drawCounts, count)
	d.record("DrawIndexedTriangles(%d)", count)
}
