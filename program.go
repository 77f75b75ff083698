package raster

// ShaderProgram is a linked vertex+fragment program with cached input
// locations.
type ShaderProgram struct {
	dev      Device
	id       uint32
	attribs  map[string]uint32
	uniforms map[string]int32
}

// CompileProgram compiles both stages and links them. The intermediate
// shader objects are released whether or not linking succeeds.
func CompileProgram(dev Device, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vs, log, ok := dev.CompileShader(StageVertex, vertexSource)
	if !ok {
		dev.DeleteShader(vs)
		return nil, &CompileError{Stage: StageVertex, Log: log}
	}
	defer dev.DeleteShader(vs)

	fs, log, ok := dev.CompileShader(StageFragment, fragmentSource)
	if !ok {
		dev.DeleteShader(fs)
		return nil, &CompileError{Stage: StageFragment, Log: log}
	}
	defer dev.DeleteShader(fs)

	id, log, ok := dev.LinkProgram(vs, fs)
	if !ok {
		dev.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	Logger().Debug("program linked", "program", id)

	return &ShaderProgram{
		dev:      dev,
		id:       id,
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]int32),
	}, nil
}

// ID returns the device handle of the program.
func (p *ShaderProgram) ID() uint32 { return p.id }

// AttributeLocation returns the location of a vertex attribute.
func (p *ShaderProgram) AttributeLocation(name string) (uint32, error) {
	if loc, ok := p.attribs[name]; ok {
		return loc, nil
	}
	loc := p.dev.AttribLocation(p.id, name)
	if loc < 0 {
		return 0, &MissingInputError{Kind: "attribute", Name: name}
	}
	p.attribs[name] = uint32(loc)
	return uint32(loc), nil
}

// UniformLocation returns the location of a uniform.
func (p *ShaderProgram) UniformLocation(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.dev.UniformLocation(p.id, name)
	if loc < 0 {
		return 0, &MissingInputError{Kind: "uniform", Name: name}
	}
	p.uniforms[name] = loc
	return loc, nil
}

// Delete releases the program.
func (p *ShaderProgram) Delete() {
	if p.id != 0 {
		p.dev.DeleteProgram(p.id)
		p.id = 0
	}
}
