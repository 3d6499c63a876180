// Package pick finds the handle under a ray or a 3D point.
package pick

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/boundsbox/cage"
	"github.com/gekko3d/boundsbox/core"
)

type Hit struct {
	Handle   cage.HandleID
	Distance float32
	Point    mgl32.Vec3
}

// Picker tests the enabled handles of a registry. Corner handles are boxes
// of ScaleHandleSize, edge handles boxes of RotateHandleDiameter.
type Picker struct {
	Handles              *cage.Registry
	ScaleHandleSize      float32
	RotateHandleDiameter float32
}

func New(handles *cage.Registry, opts cage.Options) *Picker {
	return &Picker{
		Handles:              handles,
		ScaleHandleSize:      opts.ScaleHandleSize,
		RotateHandleDiameter: opts.RotateHandleDiameter,
	}
}

// HandleBounds is the pick volume of h.
func (p *Picker) HandleBounds(h cage.Handle) core.AABB {
	size := p.ScaleHandleSize
	if h.ID.Kind == cage.KindEdge {
		size = p.RotateHandleDiameter
	}
	return core.NewAABB(h.Position, mgl32.Vec3{size, size, size})
}

// Ray returns the enabled handle the ray enters first. On equal distances
// the earlier handle in scan order wins.
func (p *Picker) Ray(ray core.Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, h := range p.Handles.Enabled() {
		dist, ok := ray.IntersectAABB(p.HandleBounds(h))
		if !ok {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Handle: h.ID, Distance: dist, Point: ray.At(dist)}
			found = true
		}
	}
	return best, found
}

// Point returns the enabled handle whose volume contains pt, nearest to its
// center first.
func (p *Picker) Point(pt mgl32.Vec3) (Hit, bool) {
	var best Hit
	found := false
	for _, h := range p.Handles.Enabled() {
		if !p.HandleBounds(h).Contains(pt) {
			continue
		}
		dist := pt.Sub(h.Position).Len()
		if !found || dist < best.Distance {
			best = Hit{Handle: h.ID, Distance: dist, Point: pt}
			found = true
		}
	}
	return best, found
}
