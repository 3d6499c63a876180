package cage

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox/config"
	"github.com/gekko3d/boundsbox/core"
)

type Options struct {
	Flatten    FlattenAxis
	Style      LinkStyle
	LinkRadius float32

	ScaleHandleSize      float32
	RotateHandleDiameter float32

	ShowScaleHandles  bool
	ShowRotateHandles bool
	WireframeOnly     bool
}

func DefaultOptions() Options {
	opts, _ := OptionsFromConfig(config.DefaultGizmo())
	return opts
}

func OptionsFromConfig(g config.Gizmo) (Options, error) {
	flatten, err := ParseFlattenAxis(g.FlattenAxis)
	if err != nil {
		return Options{}, err
	}
	style, err := ParseLinkStyle(g.WireframeShape)
	if err != nil {
		return Options{}, errors.Wrap(err, "wireframe shape")
	}
	return Options{
		Flatten:              flatten,
		Style:                style,
		LinkRadius:           g.LinkRadius,
		ScaleHandleSize:      g.ScaleHandleSize,
		RotateHandleDiameter: g.RotateHandleDiameter,
		ShowScaleHandles:     g.ShowScaleHandles,
		ShowRotateHandles:    g.ShowRotateHandles,
		WireframeOnly:        g.WireframeOnly,
	}, nil
}

type EdgeRecord struct {
	Index    int
	Axis     Axis
	Position mgl32.Vec3
	Visible  bool
}

// Link is the visual segment along one edge.
type Link struct {
	Edge     int
	Center   mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Visible  bool
}

// Rig is the live cage of one gizmo.
type Rig struct {
	Options Options

	Volume  core.AABB
	Corners [NumCorners]mgl32.Vec3
	Edges   [NumEdges]EdgeRecord
	Links   [NumEdges]Link
	Handles *Registry

	flatten  FlattenAxis
	resolved bool
	hidden   bool // handles were switched off for an empty volume
}

func NewRig(opts Options) *Rig {
	r := &Rig{
		Options: opts,
		Handles: NewRegistry(),
	}
	for i := range r.Edges {
		r.Edges[i] = EdgeRecord{Index: i, Axis: EdgeAxis(i), Visible: true}
		r.Links[i] = Link{Edge: i, Rotation: mgl32.QuatIdent(), Visible: true}
	}
	return r
}

// Visible reports whether there is a volume to draw.
func (r *Rig) Visible() bool {
	return !r.Volume.IsEmpty()
}

// FlattenAxis is the active flatten axis. Auto is reported as the concrete
// axis it resolved to once the rig has seen a volume.
func (r *Rig) FlattenAxis() FlattenAxis {
	if !r.resolved {
		return r.Options.Flatten
	}
	return r.flatten
}

// Update lays the cage out around vol. The first non-empty volume resolves
// the configured flatten axis and sets default handle visibility. An empty
// volume hides the rig and disables every handle until a non-empty one
// comes back.
func (r *Rig) Update(vol core.AABB) {
	r.Volume = vol
	if vol.IsEmpty() {
		r.Handles.DisableAll()
		r.hidden = true
		return
	}
	if !r.resolved {
		r.hidden = false
		r.Flatten(r.Options.Flatten)
		return
	}
	if r.hidden {
		r.hidden = false
		r.ResetVisibility()
	}
	r.layout()
}

// Flatten collapses axis and hides its edges, links and rotate handles.
// Auto picks the smallest axis of the current volume and stays on it.
func (r *Rig) Flatten(axis FlattenAxis) {
	if axis == FlattenAuto {
		axis = SmallestAxis(r.Volume.Extents)
	}
	r.flatten = axis
	r.resolved = true

	var hidden []int
	if a, ok := axis.Axis(); ok {
		hidden = FlattenedEdges(a)
	}
	r.Handles.SetFlattened(hidden)
	for i := range r.Edges {
		r.Edges[i].Visible = !r.Handles.Flattened(i)
		r.Links[i].Visible = r.Edges[i].Visible
	}
	r.ResetVisibility()
	r.layout()
}

// ResetVisibility restores the handles from the show flags.
func (r *Rig) ResetVisibility() {
	r.Handles.ResetVisibility(r.Options.ShowScaleHandles, r.Options.ShowRotateHandles, r.Options.WireframeOnly)
}

func (r *Rig) layout() {
	if a, ok := r.flatten.Axis(); ok {
		r.Volume.Extents[a] = 0
	}
	r.Corners = DeriveCorners(r.Volume)
	mids := DeriveEdgeMidpoints(r.Corners)
	for i := range r.Edges {
		r.Edges[i].Position = mids[i]
		axis := r.Edges[i].Axis
		rot, scale := linkShape(axis, r.Volume.Extents[axis], r.Options.Style, r.Options.LinkRadius)
		r.Links[i].Center = mids[i]
		r.Links[i].Rotation = rot
		r.Links[i].Scale = scale
	}
	r.Handles.SetPositions(r.Corners, mids)
}

// Gizmos is the draw list for the current frame: visible links, then
// enabled corner cubes and edge spheres. A zero link radius draws the links
// as bare lines between their corners.
func (r *Rig) Gizmos() []core.Gizmo {
	if !r.Visible() {
		return nil
	}
	out := make([]core.Gizmo, 0, NumEdges+NumCorners+NumEdges)
	for _, l := range r.Links {
		if !l.Visible {
			continue
		}
		if r.Options.LinkRadius == 0 {
			a, b := EdgeCorners(l.Edge)
			out = append(out, core.NewGizmoLine(r.Corners[a], r.Corners[b], core.MaterialWireframe))
		} else if r.Options.Style == LinkCylinders {
			out = append(out, core.NewGizmoCylinder(l.Center, l.Rotation, l.Scale, core.MaterialWireframe))
		} else {
			out = append(out, core.NewGizmoCube(l.Center, l.Scale, core.MaterialWireframe))
		}
	}
	size := r.Options.ScaleHandleSize
	for _, h := range r.Handles.Corners {
		if h.Enabled {
			out = append(out, core.NewGizmoCube(h.Position, mgl32.Vec3{size, size, size}, h.Material))
		}
	}
	for _, h := range r.Handles.Edges {
		if h.Enabled {
			out = append(out, core.NewGizmoSphere(h.Position, r.Options.RotateHandleDiameter/2, h.Material))
		}
	}
	return out
}
