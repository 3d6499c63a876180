package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectAABB returns the entry distance of the ray into box.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectAABB(box AABB) (float32, bool) {
	bmin, bmax := box.Min(), box.Max()
	tMin := float32(0)
	tMax := float32(math.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if abs32(d) < 1e-8 {
			// Parallel to the slab: must already be inside it.
			if o < bmin[axis] || o > bmax[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (bmin[axis] - o) * inv
		t2 := (bmax[axis] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max32(tMin, t1)
		tMax = min32(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// ClosestPointOnLine projects p onto the infinite line through origin along dir.
// A zero dir returns origin.
func ClosestPointOnLine(origin, dir, p mgl32.Vec3) mgl32.Vec3 {
	lenSq := dir.Dot(dir)
	if lenSq < 1e-12 {
		return origin
	}
	t := p.Sub(origin).Dot(dir) / lenSq
	return origin.Add(dir.Mul(t))
}

// ProjectOnPlane removes the component of v along normal.
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	lenSq := normal.Dot(normal)
	if lenSq < 1e-12 {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / lenSq))
}

// FromToRotation is the shortest rotation taking direction from onto direction to.
func FromToRotation(from, to mgl32.Vec3) mgl32.Quat {
	f := from.Normalize()
	t := to.Normalize()
	cosTheta := mgl32.Clamp(f.Dot(t), -1, 1)
	if cosTheta > 1-1e-6 {
		return mgl32.QuatIdent()
	}
	if cosTheta < -1+1e-6 {
		// Opposite directions: any perpendicular axis works.
		axis := mgl32.Vec3{1, 0, 0}.Cross(f)
		if axis.Len() < 1e-6 {
			axis = mgl32.Vec3{0, 1, 0}.Cross(f)
		}
		return mgl32.QuatRotate(math.Pi, axis.Normalize())
	}
	axis := f.Cross(t).Normalize()
	angle := float32(math.Acos(float64(cosTheta)))
	return mgl32.QuatRotate(angle, axis)
}

// AngleAxis decomposes a rotation into angle (radians, in [0, 2pi)) and unit axis.
// The identity decomposes to angle 0 about +X.
func AngleAxis(q mgl32.Quat) (float32, mgl32.Vec3) {
	q = q.Normalize()
	w := mgl32.Clamp(q.W, -1, 1)
	angle := 2 * float32(math.Acos(float64(w)))
	s := float32(math.Sqrt(float64(1 - w*w)))
	if s < 1e-6 {
		return 0, mgl32.Vec3{1, 0, 0}
	}
	return angle, q.V.Mul(1 / s)
}

// IsFinite reports whether every component is a real number.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}
