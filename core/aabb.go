package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box stored as center and half-size.
type AABB struct {
	Center  mgl32.Vec3
	Extents mgl32.Vec3
}

// NewAABB builds a box from its center and full size.
func NewAABB(center, size mgl32.Vec3) AABB {
	return AABB{Center: center, Extents: absVec(size.Mul(0.5))}
}

func AABBFromMinMax(min, max mgl32.Vec3) AABB {
	return AABB{
		Center:  min.Add(max).Mul(0.5),
		Extents: absVec(max.Sub(min).Mul(0.5)),
	}
}

func (b AABB) Min() mgl32.Vec3  { return b.Center.Sub(b.Extents) }
func (b AABB) Max() mgl32.Vec3  { return b.Center.Add(b.Extents) }
func (b AABB) Size() mgl32.Vec3 { return b.Extents.Mul(2) }

// IsEmpty reports a zero-size box. A box flat on one or two axes is not empty.
func (b AABB) IsEmpty() bool {
	return b.Extents == mgl32.Vec3{}
}

// Encapsulate grows b to contain o.
func (b AABB) Encapsulate(o AABB) AABB {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	return AABBFromMinMax(
		mgl32.Vec3{min32(bmin.X(), omin.X()), min32(bmin.Y(), omin.Y()), min32(bmin.Z(), omin.Z())},
		mgl32.Vec3{max32(bmax.X(), omax.X()), max32(bmax.Y(), omax.Y()), max32(bmax.Z(), omax.Z())},
	)
}

// Padded adds pad to the full size of the box.
func (b AABB) Padded(pad mgl32.Vec3) AABB {
	return NewAABB(b.Center, b.Size().Add(pad))
}

func (b AABB) Contains(p mgl32.Vec3) bool {
	d := p.Sub(b.Center)
	return abs32(d.X()) <= b.Extents.X() &&
		abs32(d.Y()) <= b.Extents.Y() &&
		abs32(d.Z()) <= b.Extents.Z()
}

// Transformed returns the world-space box enclosing b after applying t.
func (b AABB) Transformed(t Transform) AABB {
	m := t.Matrix()
	var out AABB
	for i := 0; i < 8; i++ {
		local := b.Center.Add(mgl32.Vec3{
			signFor(i, 1) * b.Extents.X(),
			signFor(i, 2) * b.Extents.Y(),
			signFor(i, 4) * b.Extents.Z(),
		})
		p := AABB{Center: m.Mul4x1(local.Vec4(1)).Vec3()}
		if i == 0 {
			out = p
		} else {
			out = out.Encapsulate(p)
		}
	}
	return out
}

// Union accumulates boxes, ignoring empty ones.
type Union struct {
	box AABB
	ok  bool
}

func (u *Union) Add(b AABB) {
	if b.IsEmpty() {
		return
	}
	if !u.ok {
		u.box = b
		u.ok = true
		return
	}
	u.box = u.box.Encapsulate(b)
}

// Result returns the union and whether anything non-empty was added.
func (u *Union) Result() (AABB, bool) {
	return u.box, u.ok
}

func signFor(i, bit int) float32 {
	if i&bit != 0 {
		return 1
	}
	return -1
}

func absVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{abs32(v.X()), abs32(v.Y()), abs32(v.Z())}
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
