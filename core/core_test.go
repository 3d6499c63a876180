package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	if got.Sub(want).Len() > 1e-4 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAABB_MinMaxRoundTrip(t *testing.T) {
	b := AABBFromMinMax(mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{3, 4, 6})
	assertVec(t, mgl32.Vec3{1, 2, 4}, b.Center)
	assertVec(t, mgl32.Vec3{2, 2, 2}, b.Extents)
	assertVec(t, mgl32.Vec3{-1, 0, 2}, b.Min())
	assertVec(t, mgl32.Vec3{4, 4, 4}, b.Size())
}

func TestAABB_EncapsulateAndUnion(t *testing.T) {
	var u Union
	_, ok := u.Result()
	assert.False(t, ok)

	u.Add(AABB{}) // empty boxes are ignored
	u.Add(NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}))
	u.Add(NewAABB(mgl32.Vec3{4, 0, 0}, mgl32.Vec3{2, 2, 2}))

	box, ok := u.Result()
	assert.True(t, ok)
	assertVec(t, mgl32.Vec3{-1, -1, -1}, box.Min())
	assertVec(t, mgl32.Vec3{5, 1, 1}, box.Max())
}

func TestAABB_Padded(t *testing.T) {
	b := NewAABB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}).Padded(mgl32.Vec3{0.2, 0, 0.4})
	assertVec(t, mgl32.Vec3{1.2, 1, 1.4}, b.Size())
}

func TestAABB_TransformedRotation(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{10, 0, 0}
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	tr.Scale = mgl32.Vec3{2, 1, 1}

	world := NewAABB(mgl32.Vec3{}, mgl32.Vec3{1, 2, 4}).Transformed(tr)
	// X size 1 scaled by 2 ends up along Z after rotating 90 deg about Y.
	assertVec(t, mgl32.Vec3{10, 0, 0}, world.Center)
	assertVec(t, mgl32.Vec3{4, 2, 2}, world.Size())
}

func TestRay_IntersectAABB(t *testing.T) {
	box := NewAABB(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{2, 2, 2})

	d, ok := Ray{Direction: mgl32.Vec3{0, 0, 1}}.IntersectAABB(box)
	assert.True(t, ok)
	assert.InDelta(t, 9.0, d, 1e-5)

	_, ok = Ray{Direction: mgl32.Vec3{0, 0, -1}}.IntersectAABB(box)
	assert.False(t, ok, "box behind the ray")

	_, ok = Ray{Origin: mgl32.Vec3{5, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectAABB(box)
	assert.False(t, ok, "parallel ray outside the slab")

	d, ok = Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectAABB(box)
	assert.True(t, ok)
	assert.Equal(t, float32(0), d, "origin inside the box")
}

func TestClosestPointOnLine(t *testing.T) {
	p := ClosestPointOnLine(mgl32.Vec3{}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{2, 0, 5})
	assertVec(t, mgl32.Vec3{1, 1, 0}, p)

	assertVec(t, mgl32.Vec3{3, 3, 3}, ClosestPointOnLine(mgl32.Vec3{3, 3, 3}, mgl32.Vec3{}, mgl32.Vec3{9, 9, 9}))
}

func TestFromToRotationAndAngleAxis(t *testing.T) {
	q := FromToRotation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	assertVec(t, mgl32.Vec3{0, 1, 0}, q.Rotate(mgl32.Vec3{1, 0, 0}))

	angle, axis := AngleAxis(q)
	assert.InDelta(t, math.Pi/2, angle, 1e-4)
	assertVec(t, mgl32.Vec3{0, 0, 1}, axis)

	opposite := FromToRotation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0})
	assertVec(t, mgl32.Vec3{-1, 0, 0}, opposite.Rotate(mgl32.Vec3{1, 0, 0}))

	angle, _ = AngleAxis(mgl32.QuatIdent())
	assert.Equal(t, float32(0), angle)
}

func TestTransform_AxesAndInverse(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	assertVec(t, mgl32.Vec3{1, 0, 0}, tr.Right())
	assertVec(t, mgl32.Vec3{0, 0, 1}, tr.Up())
	assertVec(t, mgl32.Vec3{0, -1, 0}, tr.Forward())

	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	p := mgl32.Vec3{0.5, -1, 4}
	assertVec(t, p, tr.InverseTransformPoint(tr.TransformPoint(p)))
	assertVec(t, tr.TransformPoint(p), tr.Matrix().Mul4x1(p.Vec4(1)).Vec3())
}

func TestAABB_PaddedNegativeStaysNonNegative(t *testing.T) {
	b := NewAABB(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}).Padded(mgl32.Vec3{-3, 0, 0})
	assertVec(t, mgl32.Vec3{1, 0, 0}, b.Center)
	assertVec(t, mgl32.Vec3{2, 1, 1}, b.Size())
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(mgl32.Vec3{1, 2, 3}))
	assert.False(t, IsFinite(mgl32.Vec3{float32(math.NaN()), 0, 0}))
	assert.False(t, IsFinite(mgl32.Vec3{0, float32(math.Inf(1)), 0}))
}
