package opengl

import "github.com/go-theft-auto/raster"

// Vertex shader for 2D positions.
const vertexShader2D = `
#version 410 core
uniform mat4 modelMatrix;

in vec2 vertexPosition;

void main() {
    gl_Position = modelMatrix * vec4(vertexPosition, 0.0, 1.0);
}
`

// Vertex shader for 3D positions. The local position is passed on so each
// cube face gets its own shade.
const vertexShader3D = `
#version 410 core
uniform mat4 modelMatrix;

in vec3 vertexPosition;

out vec3 localPosition;

void main() {
    localPosition = vertexPosition;
    gl_Position = modelMatrix * vec4(vertexPosition, 1.0);
}
`

const fragmentShader2D = `
#version 410 core
out vec4 fragmentColor;

void main() {
    fragmentColor = vec4(0.0, 1.0, 0.0, 1.0);
}
`

const fragmentShader3D = `
#version 410 core
in vec3 localPosition;

out vec4 fragmentColor;

void main() {
    fragmentColor = vec4(localPosition + 0.5, 1.0);
}
`

// ShaderSources returns the vertex and fragment source for v. Both declare
// the raster.PositionAttribute input and the raster.ModelMatrixUniform.
func ShaderSources(v raster.Variant) (vertex, fragment string) {
	if v.Geometry.Components == 3 {
		return vertexShader3D, fragmentShader3D
	}
	return vertexShader2D, fragmentShader2D
}
