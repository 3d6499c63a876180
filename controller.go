// Package boundsbox is a bounding-box manipulation gizmo: a wireframe cage
// around a target with corner handles that scale it and edge handles that
// rotate it.
//
// A Controller is driven from outside: call Tick once per frame and feed it
// input events through Dispatch or the EventSink methods. All calls must
// come from one goroutine.
package boundsbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox/bounds"
	"github.com/gekko3d/boundsbox/cage"
	"github.com/gekko3d/boundsbox/config"
	"github.com/gekko3d/boundsbox/core"
	"github.com/gekko3d/boundsbox/input"
	"github.com/gekko3d/boundsbox/logging"
	"github.com/gekko3d/boundsbox/manip"
	"github.com/gekko3d/boundsbox/pick"
)

// Target is an object the gizmo can measure and move.
type Target interface {
	bounds.Target
	manip.TransformSink
}

type Controller struct {
	ID uuid.UUID

	cfg      config.Gizmo
	rigOpts  cage.Options
	log      logging.Logger
	target   Target
	resolver *bounds.Resolver
	inputs   *input.Tracker

	// Live only while active.
	rig    *cage.Rig
	picker *pick.Picker
	engine *manip.Engine
	active bool
}

func New(target Target, cfg config.Gizmo, log logging.Logger) (*Controller, error) {
	if target == nil {
		return nil, errors.New("gizmo target is nil")
	}
	rigOpts, err := cage.OptionsFromConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid gizmo config")
	}

	c := &Controller{
		ID:       uuid.New(),
		cfg:      cfg,
		rigOpts:  rigOpts,
		log:      logging.OrNop(log),
		target:   target,
		resolver: bounds.NewResolver(log),
		inputs:   input.NewTracker(),
	}
	if cfg.BoundsOverride != nil {
		box := core.NewAABB(cfg.BoundsOverride.Center, cfg.BoundsOverride.Size)
		c.resolver.Override = &box
		c.resolver.Padding = cfg.WireframePadding
	}

	if cfg.ActivateOnStart {
		c.SetActive(true)
	}
	return c, nil
}

// SetActive builds the rig from the target's current geometry, or tears it
// down. Activation also records the scale that the clamp limits are
// relative to.
func (c *Controller) SetActive(on bool) {
	if on == c.active {
		return
	}
	if !on {
		c.rig, c.picker, c.engine = nil, nil, nil
		c.active = false
		c.log.Infof("gizmo %s deactivated", c.ID)
		return
	}

	c.rig = cage.NewRig(c.rigOpts)
	c.picker = pick.New(c.rig.Handles, c.rigOpts)
	c.engine = manip.NewEngine(manip.OptionsFromConfig(c.cfg), c.rig, c.picker, c.target, c.rebuild, c.log)
	c.engine.SetPoseSource(c.inputs)
	c.engine.SetBaseScale(c.target.LocalScale())
	c.active = true
	c.rebuild()
	c.log.Infof("gizmo %s activated, bounds from %s", c.ID, c.resolver.LastMethod())
}

func (c *Controller) Active() bool {
	return c.active
}

func (c *Controller) rebuild() {
	box, _ := c.resolver.Resolve(c.target)
	c.rig.Update(box)
}

// Tick runs one frame: refresh the cage from the target, apply the drag of
// the grabbing source, then refresh the cage again so the next pick sees
// the moved handles.
func (c *Controller) Tick() manip.Result {
	if !c.active {
		return manip.Result{}
	}
	c.rebuild()

	s := c.engine.Session()
	if s == nil {
		return manip.Result{}
	}
	live, ok := c.liveEvent(s)
	if !ok {
		return manip.Result{}
	}
	res := c.engine.Drag(live)
	if res.Applied {
		c.rebuild()
	}
	return res
}

func (c *Controller) liveEvent(s *manip.Session) (input.Event, bool) {
	ev := input.Event{Kind: input.EventDrag, Source: s.Source, Modality: s.Modality}
	if s.Modality == input.ModalityPoint {
		p, ok := c.inputs.Position(s.Source)
		ev.Point = p
		return ev, ok
	}
	r, ok := c.inputs.Ray(s.Source)
	ev.Ray = r
	return ev, ok
}

// Rig is the live cage, nil while inactive.
func (c *Controller) Rig() *cage.Rig {
	return c.rig
}

// Gizmos is the draw list for this frame.
func (c *Controller) Gizmos() []core.Gizmo {
	if !c.active {
		return nil
	}
	return c.rig.Gizmos()
}

func (c *Controller) State() manip.State {
	if !c.active {
		return manip.StateIdle
	}
	return c.engine.State()
}

func (c *Controller) Session() *manip.Session {
	if !c.active {
		return nil
	}
	return c.engine.Session()
}

func (c *Controller) LastMethod() bounds.Method {
	return c.resolver.LastMethod()
}

// BaseScale is the scale captured at activation.
func (c *Controller) BaseScale() mgl32.Vec3 {
	if !c.active {
		return mgl32.Vec3{}
	}
	return c.engine.BaseScale()
}
