// Package bounds derives a world-space bounding box for a target object
// from the best geometric source it has.
package bounds

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/boundsbox/core"
	"github.com/gekko3d/boundsbox/logging"
)

// Target is the geometry view of a scene object and its subtree.
type Target interface {
	WorldTransform() core.Transform
	ChildTargets() []Target

	// ProbeBounds measures the object's own geometry in world space the way a
	// temporary bounding primitive fitted to it would. Empty when it has none.
	ProbeBounds() core.AABB

	// ColliderBounds and RendererBounds are world-space boxes for every
	// collider / renderable in the subtree, the object included.
	ColliderBounds() []core.AABB
	RendererBounds() []core.AABB

	// MeshSources lists raw mesh data in the subtree.
	MeshSources() []core.MeshSource
}

type Method int

const (
	MethodNone Method = iota
	MethodOverride
	MethodProbe
	MethodChildProbes
	MethodColliders
	MethodRenderers
	MethodMeshes
	MethodFallbackProbe
)

var methodNames = [...]string{
	MethodNone:          "none",
	MethodOverride:      "override",
	MethodProbe:         "probe",
	MethodChildProbes:   "child-probes",
	MethodColliders:     "colliders",
	MethodRenderers:     "renderers",
	MethodMeshes:        "meshes",
	MethodFallbackProbe: "fallback-probe",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// Resolver walks the bounds sources in priority order.
type Resolver struct {
	// Override, when set, is an object-space box used as-is with Padding
	// added to its size.
	Override *core.AABB
	Padding  mgl32.Vec3

	log  logging.Logger
	last Method
}

func NewResolver(log logging.Logger) *Resolver {
	return &Resolver{log: logging.OrNop(log)}
}

// LastMethod is the method that produced the most recent result.
func (r *Resolver) LastMethod() Method {
	return r.last
}

// Resolve returns the world-space bounds of t. An empty box with MethodNone
// means t has no geometry anywhere in its subtree.
func (r *Resolver) Resolve(t Target) (core.AABB, Method) {
	box, method := r.resolve(t)
	if method != r.last {
		r.log.Debugf("bounds: method %s -> %s", r.last, method)
	}
	r.last = method
	return box, method
}

func (r *Resolver) resolve(t Target) (core.AABB, Method) {
	if r.Override != nil {
		box := r.Override.Padded(r.Padding).Transformed(t.WorldTransform())
		if !box.IsEmpty() {
			return box, MethodOverride
		}
	}

	children := t.ChildTargets()
	if len(children) == 0 {
		if box := t.ProbeBounds(); !box.IsEmpty() {
			return box, MethodProbe
		}
	} else {
		var u core.Union
		for _, child := range children {
			u.Add(child.ProbeBounds())
		}
		if box, ok := u.Result(); ok {
			return box, MethodChildProbes
		}
	}

	if box, ok := union(t.ColliderBounds()); ok {
		return box, MethodColliders
	}

	if box, ok := union(t.RendererBounds()); ok {
		return box, MethodRenderers
	}

	if box, ok := r.meshBounds(t); ok {
		return box, MethodMeshes
	}

	if box := t.ProbeBounds(); !box.IsEmpty() {
		return box, MethodFallbackProbe
	}
	return core.AABB{}, MethodNone
}

// meshBounds unions raw object-space mesh bounds and recenters them on the
// target's world position. Rotation and scale are not applied.
func (r *Resolver) meshBounds(t Target) (core.AABB, bool) {
	var u core.Union
	for _, src := range t.MeshSources() {
		box, err := src.LocalBounds()
		if err != nil {
			r.log.Warnf("bounds: skipping mesh source: %v", err)
			continue
		}
		u.Add(box)
	}
	box, ok := u.Result()
	if !ok {
		return core.AABB{}, false
	}
	box.Center = t.WorldTransform().Position
	return box, true
}

func union(boxes []core.AABB) (core.AABB, bool) {
	var u core.Union
	for _, b := range boxes {
		u.Add(b)
	}
	return u.Result()
}
