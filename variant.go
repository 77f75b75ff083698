package raster

import (
	"fmt"
	"slices"
)

// Variant describes one demo configuration: its geometry, which transform
// parameters it exposes, and whether depth testing is on.
type Variant struct {
	Name     string
	Geometry Geometry

	// TranslationAxes is 1 (X only) or 2 (X and Y).
	TranslationAxes int
	// NonUniformScale exposes scaleX and scaleY instead of scale.
	NonUniformScale bool
	DepthTest       bool
}

// Variants lists the built-in variants. The first one is the default.
var Variants = []Variant{
	{
		Name:            "quad",
		Geometry:        QuadGeometry(),
		TranslationAxes: 1,
	},
	{
		Name:            "quad-xy",
		Geometry:        QuadGeometry(),
		TranslationAxes: 2,
		NonUniformScale: true,
	},
	{
		Name:            "cube",
		Geometry:        CubeGeometry(),
		TranslationAxes: 2,
		DepthTest:       true,
	},
}

// LookupVariant returns the built-in variant called name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// VariantNames returns the names of the built-in variants.
func VariantNames() []string {
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = v.Name
	}
	return names
}

// Parameters returns the parameters v exposes, in display order.
func (v Variant) Parameters() []Parameter {
	params := []Parameter{ParamTranslation}
	if v.TranslationAxes > 1 {
		params = append(params, ParamTranslationY)
	}
	if v.NonUniformScale {
		params = append(params, ParamScaleX, ParamScaleY)
	} else {
		params = append(params, ParamScale)
	}
	return append(params, ParamRotation)
}

// Supports reports whether v exposes p.
func (v Variant) Supports(p Parameter) bool {
	return slices.Contains(v.Parameters(), p)
}

// apply writes value into the field of state that p controls.
// Z scale follows uniform scale only for 3D geometry; 2D variants keep it at 1.
func (v Variant) apply(state *TransformState, p Parameter, value float32) {
	switch p {
	case ParamTranslation:
		state.Translation[0] = value
	case ParamTranslationY:
		state.Translation[1] = value
	case ParamScale:
		state.Scale[0] = value
		state.Scale[1] = value
		if v.Geometry.Components == 3 {
			state.Scale[2] = value
		} else {
			state.Scale[2] = 1
		}
	case ParamScaleX:
		state.Scale[0] = value
		state.Scale[2] = 1
	case ParamScaleY:
		state.Scale[1] = value
		state.Scale[2] = 1
	case ParamRotation:
		state.RotationDegrees = value
	}
}

// value reads the field of state that p controls.
func (v Variant) value(state *TransformState, p Parameter) float32 {
	switch p {
	case ParamTranslation:
		return state.Translation[0]
	case ParamTranslationY:
		return state.Translation[1]
	case ParamScale, ParamScaleX:
		return state.Scale[0]
	case ParamScaleY:
		return state.Scale[1]
	case ParamRotation:
		return state.RotationDegrees
	}
	return 0
}
