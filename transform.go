package raster

import "github.com/go-gl/mathgl/mgl32"

// TransformState holds the model transform parameters.
//
// Unused components stay at their defaults: translation 0, scale 1.
// Rotation is in degrees about +Z, right-handed.
type TransformState struct {
	Translation     mgl32.Vec3
	Scale           mgl32.Vec3
	RotationDegrees float32
}

// NewTransformState returns the identity transform.
func NewTransformState() *TransformState {
	s := &TransformState{}
	s.Reset()
	return s
}

// Reset restores translation 0, scale 1 and rotation 0.
func (s *TransformState) Reset() {
	s.Translation = mgl32.Vec3{0, 0, 0}
	s.Scale = mgl32.Vec3{1, 1, 1}
	s.RotationDegrees = 0
}

// ModelMatrix composes T × S × R. Rotation is applied to vertices first and
// translation last, so the translation is never rotated or scaled.
// The matrix is rebuilt on every call.
func (s *TransformState) ModelMatrix() mgl32.Mat4 {
	t := TranslationMatrix(s.Translation)
	sc := ScalingMatrix(s.Scale)
	r := RotationMatrixZ(s.RotationDegrees)

	m := mgl32.Ident4()
	m = r.Mul4(m)
	m = sc.Mul4(m)
	m = t.Mul4(m)
	return m
}

// TranslationMatrix returns the homogeneous translation by v.
func TranslationMatrix(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v.X(), v.Y(), v.Z())
}

// ScalingMatrix returns the homogeneous per-axis scale by v.
func ScalingMatrix(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v.X(), v.Y(), v.Z())
}

// RotationMatrixZ returns the rotation about +Z by degrees.
func RotationMatrixZ(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(degrees))
}
