/*
Package raster draws a single piece of static geometry with a model transform
built from three independent controls: translation, scale and rotation about
the Z axis. A frame is drawn only when one of the controls changes.

# Pipeline

Setup runs once, in a fixed order, and any failure aborts it before a frame
is drawn:

	program, err := raster.CompileProgram(dev, vertexSource, fragmentSource)
	buffer, err := raster.NewGeometryBuffer(dev, raster.QuadGeometry())
	binding, err := raster.Bind(program, raster.PositionAttribute, 2, buffer)
	renderer := raster.NewRenderer(dev, raster.RendererConfig{})

NewScene performs the same steps for a built-in Variant. Each frame clears
the framebuffer, uploads the model matrix to the ModelMatrixUniform and
issues one indexed triangle draw:

	renderer.Render(program, binding, state.ModelMatrix(), binding.IndexCount())

# Transform

TransformState.ModelMatrix composes T × S × R: vertices are rotated about
+Z first, then scaled, then translated. The translation is therefore never
rotated or scaled.

# Parameter events

A Controller receives ParameterEvent values from a source (keyboard sliders
in backend/opengl, or Replay for scripted input). For every event it updates
one field of the transform, refreshes that parameter's label on the Display
and draws exactly once. Labels are formatted for the configured locale with
at most two fraction digits.

# Keyboard Controls

	Up / Down, Tab     Select parameter
	Left / Right       Change by one step
	PageUp / PageDown  Change by ten steps
	Home               Reset to default
	Escape             Quit

# Backends

Device abstracts the GPU calls. backend/opengl implements it on OpenGL 4.1
and provides GLFW adapters for keyboard input and a window-title display.
*/
package raster
