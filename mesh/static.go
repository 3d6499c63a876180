// Package mesh provides mesh-data sources that report object-space bounds:
// plain vertex lists, glTF documents and SDF solids.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox/core"
)

var ErrNoVertices = errors.New("mesh has no vertices")

// Static is an in-memory vertex list.
type Static struct {
	Vertices []mgl32.Vec3
}

var _ core.MeshSource = (*Static)(nil)

// NewBox returns the eight corners of a box of the given size centered on the origin.
func NewBox(size mgl32.Vec3) *Static {
	h := size.Mul(0.5)
	s := &Static{}
	for i := 0; i < 8; i++ {
		v := h
		if i&1 == 0 {
			v[0] = -v[0]
		}
		if i&2 == 0 {
			v[1] = -v[1]
		}
		if i&4 == 0 {
			v[2] = -v[2]
		}
		s.Vertices = append(s.Vertices, v)
	}
	return s
}

func (s *Static) LocalBounds() (core.AABB, error) {
	if len(s.Vertices) == 0 {
		return core.AABB{}, ErrNoVertices
	}
	return boundsOf(s.Vertices), nil
}

func boundsOf(points []mgl32.Vec3) core.AABB {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return core.AABBFromMinMax(min, max)
}
