package mesh

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox/core"
)

// SDF wraps a signed-distance solid. Its bounds come from the solid's own
// bounding box, no tessellation is needed.
type SDF struct {
	Solid sdf.SDF3
}

var _ core.MeshSource = (*SDF)(nil)

func NewSDFBox(size mgl32.Vec3, round float32) (*SDF, error) {
	s, err := sdf.Box3D(v3.Vec{X: float64(size.X()), Y: float64(size.Y()), Z: float64(size.Z())}, float64(round))
	if err != nil {
		return nil, errors.Wrap(err, "sdf box")
	}
	return &SDF{Solid: s}, nil
}

func NewSDFSphere(radius float32) (*SDF, error) {
	s, err := sdf.Sphere3D(float64(radius))
	if err != nil {
		return nil, errors.Wrap(err, "sdf sphere")
	}
	return &SDF{Solid: s}, nil
}

// Translate moves the solid in object space.
func (s *SDF) Translate(offset mgl32.Vec3) *SDF {
	m := sdf.Translate3d(v3.Vec{X: float64(offset.X()), Y: float64(offset.Y()), Z: float64(offset.Z())})
	return &SDF{Solid: sdf.Transform3D(s.Solid, m)}
}

func (s *SDF) LocalBounds() (core.AABB, error) {
	if s.Solid == nil {
		return core.AABB{}, errors.New("sdf solid is nil")
	}
	bb := s.Solid.BoundingBox()
	return core.AABBFromMinMax(
		mgl32.Vec3{float32(bb.Min.X), float32(bb.Min.Y), float32(bb.Min.Z)},
		mgl32.Vec3{float32(bb.Max.X), float32(bb.Max.Y), float32(bb.Max.Z)},
	), nil
}
