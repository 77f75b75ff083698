package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry matches any *GeometryError.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrMissingInput matches any *MissingInputError.
	ErrMissingInput = errors.New("missing shader input")

	// ErrUnknownParameter reports a parameter name a variant does not accept.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrUnknownVariant reports a variant name that is not built in.
	ErrUnknownVariant = errors.New("unknown variant")
)

// GeometryError reports malformed vertex or index data.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "invalid geometry: " + e.Reason
}

func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}

// CompileError carries the compiler log of a failed shader stage.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the linker log of a failed program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program link failed: " + e.Log
}

// MissingInputError reports an attribute or uniform that the linked program
// does not expose.
type MissingInputError struct {
	Kind string // "attribute" or "uniform"
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("program has no active %s %q", e.Kind, e.Name)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
