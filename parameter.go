package raster

import "fmt"

// Parameter names one scalar input of the model transform.
type Parameter int

const (
	ParamTranslation Parameter = iota // translation along X
	ParamTranslationY
	ParamScale // uniform scale
	ParamScaleX
	ParamScaleY
	ParamRotation
	paramCount
)

var parameterNames = [paramCount]string{
	ParamTranslation:  "translation",
	ParamTranslationY: "translationY",
	ParamScale:        "scale",
	ParamScaleX:       "scaleX",
	ParamScaleY:       "scaleY",
	ParamRotation:     "rotationDegrees",
}

func (p Parameter) String() string {
	if p < 0 || p >= paramCount {
		return fmt.Sprintf("Parameter(%d)", int(p))
	}
	return parameterNames[p]
}

// ParseParameter returns the parameter with the given event name.
func ParseParameter(name string) (Parameter, error) {
	for p, n := range parameterNames {
		if n == name {
			return Parameter(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Default returns the value of p in the identity transform.
func (p Parameter) Default() float32 {
	switch p {
	case ParamScale, ParamScaleX, ParamScaleY:
		return 1
	default:
		return 0
	}
}

// ParameterEvent is a single scalar update from a parameter source.
type ParameterEvent struct {
	Param Parameter
	Value float32
}

func (e ParameterEvent) String() string {
	return fmt.Sprintf("%s=%g", e.Param, e.Value)
}
