package cage

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/boundsbox/core"
)

type HandleKind int

const (
	KindNone HandleKind = iota
	KindCorner
	KindEdge
)

type HandleID struct {
	Kind  HandleKind
	Index int
}

var NoHandle = HandleID{}

func CornerHandle(i int) HandleID { return HandleID{Kind: KindCorner, Index: i} }
func EdgeHandle(i int) HandleID   { return HandleID{Kind: KindEdge, Index: i} }

func (id HandleID) String() string {
	switch id.Kind {
	case KindCorner:
		return fmt.Sprintf("corner:%d", id.Index)
	case KindEdge:
		return fmt.Sprintf("edge:%d", id.Index)
	}
	return "none"
}

func (id HandleID) valid() bool {
	switch id.Kind {
	case KindCorner:
		return id.Index >= 0 && id.Index < NumCorners
	case KindEdge:
		return id.Index >= 0 && id.Index < NumEdges
	}
	return false
}

type Role int

const (
	RoleNone Role = iota
	RoleScale
	RoleRotate
)

func (r Role) String() string {
	switch r {
	case RoleScale:
		return "scale"
	case RoleRotate:
		return "rotate"
	}
	return "none"
}

type Handle struct {
	ID       HandleID
	Position mgl32.Vec3
	Enabled  bool
	Material core.Material
}

// Registry owns the 8 corner (scale) and 12 edge (rotate) handles.
type Registry struct {
	Corners [NumCorners]Handle
	Edges   [NumEdges]Handle

	flattened [NumEdges]bool
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.Corners {
		r.Corners[i] = Handle{ID: CornerHandle(i), Material: core.MaterialHandle}
	}
	for i := range r.Edges {
		r.Edges[i] = Handle{ID: EdgeHandle(i), Material: core.MaterialHandle}
	}
	return r
}

func (r *Registry) SetPositions(corners [NumCorners]mgl32.Vec3, edges [NumEdges]mgl32.Vec3) {
	for i := range r.Corners {
		r.Corners[i].Position = corners[i]
	}
	for i := range r.Edges {
		r.Edges[i].Position = edges[i]
	}
}

// SetFlattened replaces the set of edges hidden by flattening and disables
// their handles.
func (r *Registry) SetFlattened(edges []int) {
	r.flattened = [NumEdges]bool{}
	for _, e := range edges {
		r.flattened[e] = true
		r.Edges[e].Enabled = false
	}
}

func (r *Registry) Flattened(edge int) bool {
	return r.flattened[edge]
}

// ResetVisibility restores the default enabled state and materials.
// Flattened edges stay hidden whatever the flags say.
func (r *Registry) ResetVisibility(showScale, showRotate, wireframeOnly bool) {
	scale := showScale && !wireframeOnly
	rotate := showRotate && !wireframeOnly
	for i := range r.Corners {
		r.Corners[i].Enabled = scale
		r.Corners[i].Material = core.MaterialHandle
	}
	for i := range r.Edges {
		r.Edges[i].Enabled = rotate && !r.flattened[i]
		r.Edges[i].Material = core.MaterialHandle
	}
}

// DisableAll makes every handle ineligible for picking.
func (r *Registry) DisableAll() {
	for i := range r.Corners {
		r.Corners[i].Enabled = false
	}
	for i := range r.Edges {
		r.Edges[i].Enabled = false
	}
}

// Focus hides every handle but id and marks id as grabbed.
func (r *Registry) Focus(id HandleID) {
	r.DisableAll()
	if h := r.Handle(id); h != nil {
		h.Enabled = true
		h.Material = core.MaterialHandleGrabbed
	}
}

// Handle returns the handle for id, or nil.
func (r *Registry) Handle(id HandleID) *Handle {
	if !id.valid() {
		return nil
	}
	if id.Kind == KindCorner {
		return &r.Corners[id.Index]
	}
	return &r.Edges[id.Index]
}

func (r *Registry) RoleOf(id HandleID) Role {
	if !id.valid() {
		return RoleNone
	}
	if id.Kind == KindCorner {
		return RoleScale
	}
	return RoleRotate
}

// RotationAxisOf maps an edge handle to the target's local right, up or
// forward axis for edges along X, Y or Z. It follows the target's current
// rotation, not the world axes.
func (r *Registry) RotationAxisOf(id HandleID, target core.Transform) (mgl32.Vec3, bool) {
	if r.RoleOf(id) != RoleRotate {
		return mgl32.Vec3{}, false
	}
	switch EdgeAxis(id.Index) {
	case AxisX:
		return target.Right(), true
	case AxisY:
		return target.Up(), true
	default:
		return target.Forward(), true
	}
}

// Enabled returns the enabled handles in scan order: corners, then edges.
func (r *Registry) Enabled() []Handle {
	out := make([]Handle, 0, NumCorners+NumEdges)
	for _, h := range r.Corners {
		if h.Enabled {
			out = append(out, h)
		}
	}
	for _, h := range r.Edges {
		if h.Enabled {
			out = append(out, h)
		}
	}
	return out
}
