// Package manip runs the grab / drag / release cycle that turns handle
// motion into scale and rotation of the target.
package manip

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/boundsbox/cage"
	"github.com/gekko3d/boundsbox/config"
	"github.com/gekko3d/boundsbox/core"
	"github.com/gekko3d/boundsbox/input"
	"github.com/gekko3d/boundsbox/logging"
	"github.com/gekko3d/boundsbox/pick"
)

const epsilon = 1e-6

type State int

const (
	StateIdle State = iota
	StateGrabbed
)

func (s State) String() string {
	if s == StateGrabbed {
		return "grabbed"
	}
	return "idle"
}

// TransformSink reads and writes the manipulated object's pose.
type TransformSink interface {
	WorldPosition() mgl32.Vec3
	SetWorldPosition(p mgl32.Vec3)
	WorldRotation() mgl32.Quat
	SetWorldRotation(q mgl32.Quat)
	LocalScale() mgl32.Vec3
	SetLocalScale(s mgl32.Vec3)
}

// PoseSource reports the last known position of an input source.
type PoseSource interface {
	Position(src input.SourceID) (mgl32.Vec3, bool)
}

type Options struct {
	ScaleMinimum float32
	ScaleMaximum float32

	// UseLockedCorners keeps the corner opposite the grabbed one in place
	// while scaling.
	UseLockedCorners bool
}

func OptionsFromConfig(g config.Gizmo) Options {
	return Options{
		ScaleMinimum:     g.ScaleMinimum,
		ScaleMaximum:     g.ScaleMaximum,
		UseLockedCorners: g.UseLockedCorners,
	}
}

// Session is the state captured when a handle is grabbed.
type Session struct {
	ID       uuid.UUID
	Source   input.SourceID
	Handle   cage.HandleID
	Role     cage.Role
	Modality input.Modality

	InitialScale          mgl32.Vec3
	InitialPosition       mgl32.Vec3
	InitialRotation       mgl32.Quat
	InitialCenter         mgl32.Vec3
	InitialHandlePosition mgl32.Vec3
	InitialOpposite       mgl32.Vec3 // corner across from a grabbed corner

	InitialAnchor       mgl32.Vec3
	InitialGrabDistance float32 // along the grab ray
	// HasAnchor is false for a point grab whose source had no known pose.
	HasAnchor bool

	RotationAxis mgl32.Vec3
}

// Result describes what a drag tick did.
type Result struct {
	Applied bool
	Clamped bool
}

type Engine struct {
	opts   Options
	rig    *cage.Rig
	picker *pick.Picker
	target TransformSink

	// relayout recomputes bounds and lays the rig out again from the
	// target's current transform.
	relayout func()

	log     logging.Logger
	poses   PoseSource
	base    mgl32.Vec3
	session *Session
}

func NewEngine(opts Options, rig *cage.Rig, picker *pick.Picker, target TransformSink, relayout func(), log logging.Logger) *Engine {
	if relayout == nil {
		relayout = func() {}
	}
	return &Engine{
		opts:     opts,
		rig:      rig,
		picker:   picker,
		target:   target,
		relayout: relayout,
		log:      logging.OrNop(log),
	}
}

// SetBaseScale sets the scale that the minimum and maximum multipliers
// apply to.
func (e *Engine) SetBaseScale(s mgl32.Vec3) {
	e.base = s
}

// SetPoseSource lets point grabs check that the grabbing source has a pose.
// Without one the point carried by the grab event is trusted.
func (e *Engine) SetPoseSource(p PoseSource) {
	e.poses = p
}

func (e *Engine) BaseScale() mgl32.Vec3 {
	return e.base
}

func (e *Engine) State() State {
	if e.session != nil {
		return StateGrabbed
	}
	return StateIdle
}

// Session returns the active session, or nil when idle.
func (e *Engine) Session() *Session {
	return e.session
}

// Grab starts a session if ev picks an enabled handle. Grabs while a session
// is active are ignored.
func (e *Engine) Grab(ev input.Event) bool {
	if e.session != nil {
		e.log.Debugf("manip: grab from source %d ignored, session %s active", ev.Source, e.session.ID)
		return false
	}

	var (
		hit pick.Hit
		ok  bool
	)
	if ev.Modality == input.ModalityPoint {
		hit, ok = e.picker.Point(ev.Point)
	} else {
		hit, ok = e.picker.Ray(ev.Ray)
	}
	if !ok {
		return false
	}
	handle := e.rig.Handles.Handle(hit.Handle)
	if handle == nil {
		return false
	}

	s := &Session{
		ID:                    uuid.New(),
		Source:                ev.Source,
		Handle:                hit.Handle,
		Role:                  e.rig.Handles.RoleOf(hit.Handle),
		Modality:              ev.Modality,
		InitialScale:          e.target.LocalScale(),
		InitialPosition:       e.target.WorldPosition(),
		InitialRotation:       e.target.WorldRotation(),
		InitialCenter:         e.rig.Volume.Center,
		InitialHandlePosition: handle.Position,
	}
	if ev.Modality == input.ModalityPoint {
		s.InitialAnchor = ev.Point
		s.HasAnchor = true
		if e.poses != nil {
			_, s.HasAnchor = e.poses.Position(ev.Source)
		}
	} else {
		s.InitialGrabDistance = hit.Distance
		s.InitialAnchor = ev.Ray.At(hit.Distance)
		s.HasAnchor = true
	}

	switch s.Role {
	case cage.RoleRotate:
		tr := core.Transform{Position: s.InitialPosition, Rotation: s.InitialRotation, Scale: s.InitialScale}
		s.RotationAxis, _ = e.rig.Handles.RotationAxisOf(hit.Handle, tr)
	case cage.RoleScale:
		s.InitialOpposite = e.rig.Corners[cage.OppositeCorner(hit.Handle.Index)]
	}

	if e.base == (mgl32.Vec3{}) {
		e.base = s.InitialScale
	}
	e.session = s
	e.rig.Handles.Focus(hit.Handle)
	e.log.Debugf("manip: session %s grabbed %s (%s) from source %d", s.ID, s.Handle, s.Role, s.Source)
	return true
}

// Drag applies one tick of motion from the live state of the grabbing
// source. Events from other sources are ignored.
func (e *Engine) Drag(live input.Event) Result {
	s := e.session
	if s == nil || live.Source != s.Source {
		return Result{}
	}
	if s.Modality == input.ModalityPoint && !s.HasAnchor {
		return Result{}
	}

	var anchor mgl32.Vec3
	if s.Modality == input.ModalityPoint {
		anchor = s.InitialHandlePosition.Add(live.Point.Sub(s.InitialAnchor))
	} else {
		anchor = live.Ray.At(s.InitialGrabDistance)
	}
	if !core.IsFinite(anchor) {
		return Result{}
	}

	switch s.Role {
	case cage.RoleRotate:
		return Result{Applied: e.rotate(s, anchor)}
	case cage.RoleScale:
		return e.scale(s, anchor)
	}
	return Result{}
}

// rotate turns the target about the cage center so the grabbed handle
// follows the anchor around the session's rotation axis.
func (e *Engine) rotate(s *Session, anchor mgl32.Vec3) bool {
	from := core.ProjectOnPlane(s.InitialHandlePosition.Sub(s.InitialCenter), s.RotationAxis)
	to := core.ProjectOnPlane(anchor.Sub(s.InitialCenter), s.RotationAxis)
	if from.Len() < epsilon || to.Len() < epsilon {
		return false
	}

	angle, axis := core.AngleAxis(core.FromToRotation(from, to))
	q := mgl32.QuatRotate(angle, axis)

	e.target.SetWorldRotation(q.Mul(s.InitialRotation).Normalize())
	e.target.SetWorldPosition(s.InitialCenter.Add(q.Rotate(s.InitialPosition.Sub(s.InitialCenter))))
	return true
}

func (e *Engine) scale(s *Session, anchor mgl32.Vec3) Result {
	dir := s.InitialHandlePosition.Sub(s.InitialCenter)
	initial := dir.Len()

	ratio := float32(1)
	if initial > epsilon {
		projected := core.ClosestPointOnLine(s.InitialCenter, dir, anchor)
		dist := projected.Sub(s.InitialCenter).Len()
		if e.opts.UseLockedCorners {
			dist = (dist + initial) / 2
		}
		ratio = dist / initial
	}

	base := e.base
	if base == (mgl32.Vec3{}) {
		base = s.InitialScale
	}
	scale, clamped := ClampScale(s.InitialScale.Mul(ratio), base, e.opts.ScaleMinimum, e.opts.ScaleMaximum)
	if clamped {
		e.log.Debugf("manip: scale clamped to %v", scale)
	}
	e.target.SetLocalScale(scale)

	if e.opts.UseLockedCorners && !clamped {
		e.holdOppositeCorner(s, ratio)
	}
	return Result{Applied: true, Clamped: clamped}
}

// holdOppositeCorner lays the rig out at the new scale, measures where the
// grabbed corner landed, then shifts the target so the opposite corner is
// back where it was at grab time. ratio is the unclamped scale factor
// applied to the grab-time scale.
func (e *Engine) holdOppositeCorner(s *Session, ratio float32) {
	e.relayout()
	landed := e.rig.Handles.Corners[s.Handle.Index].Position

	want := s.InitialOpposite.Add(s.InitialHandlePosition.Sub(s.InitialOpposite).Mul(ratio))
	delta := want.Sub(landed)
	if !core.IsFinite(delta) {
		return
	}
	e.target.SetWorldPosition(e.target.WorldPosition().Add(delta))
	e.relayout()
}

// Release ends the session if src owns it and restores handle visibility.
func (e *Engine) Release(src input.SourceID) bool {
	if e.session == nil || e.session.Source != src {
		return false
	}
	e.log.Debugf("manip: session %s released", e.session.ID)
	e.session = nil
	e.rig.ResetVisibility()
	return true
}

// SourceLost cancels the session owned by src.
func (e *Engine) SourceLost(src input.SourceID) bool {
	if e.session == nil || e.session.Source != src {
		return false
	}
	e.log.Debugf("manip: source %d lost, cancelling session %s", src, e.session.ID)
	e.session = nil
	e.rig.ResetVisibility()
	return true
}

// ClampScale bounds candidate to [base*min, base*max]. Any component past
// the ceiling snaps the whole vector to the ceiling; any component under the
// floor then snaps it to the floor, so the floor wins when min > max.
func ClampScale(candidate, base mgl32.Vec3, min, max float32) (mgl32.Vec3, bool) {
	ceiling := base.Mul(max)
	floor := base.Mul(min)
	clamped := false

	if candidate.X() > ceiling.X() || candidate.Y() > ceiling.Y() || candidate.Z() > ceiling.Z() {
		candidate = ceiling
		clamped = true
	}
	if candidate.X() < floor.X() || candidate.Y() < floor.Y() || candidate.Z() < floor.Z() {
		candidate = floor
		clamped = true
	}
	return candidate, clamped
}
