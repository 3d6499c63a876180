package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position / rotation / scale triple.
// For scene nodes Position and Rotation are world space and Scale is local.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix is the object-to-world matrix, scale applied first, then rotation,
// then translation.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// TransformPoint maps a point from object space to world space.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{p.X() * t.Scale.X(), p.Y() * t.Scale.Y(), p.Z() * t.Scale.Z()}
	return t.Position.Add(t.Rotation.Rotate(scaled))
}

// Right, Up and Forward are the object's local +X, +Y and +Z axes in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Mul composes a parent transform with a child's local transform.
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
func (t Transform) Mul(local Transform) Transform {
	return Transform{
		Position: t.TransformPoint(local.Position),
		Rotation: t.Rotation.Mul(local.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			t.Scale.X() * local.Scale.X(),
			t.Scale.Y() * local.Scale.Y(),
			t.Scale.Z() * local.Scale.Z(),
		},
	}
}

// InverseTransformPoint maps a world point into this transform's object space.
// Zero scale components map to zero.
func (t Transform) InverseTransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	local := t.Rotation.Conjugate().Rotate(p.Sub(t.Position))
	return mgl32.Vec3{
		safeDiv(local.X(), t.Scale.X()),
		safeDiv(local.Y(), t.Scale.Y()),
		safeDiv(local.Z(), t.Scale.Z()),
	}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
