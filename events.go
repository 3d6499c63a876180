package boundsbox

import "github.com/gekko3d/boundsbox/input"

// EventSink receives input events, one method per kind.
type EventSink interface {
	OnGrab(ev input.Event)
	OnDrag(ev input.Event)
	OnRelease(ev input.Event)
	OnSourceLost(ev input.Event)
	OnPoseUpdate(ev input.Event)
}

// NopSink ignores everything. Embed it to handle only some events.
type NopSink struct{}

func (NopSink) OnGrab(input.Event)       {}
func (NopSink) OnDrag(input.Event)       {}
func (NopSink) OnRelease(input.Event)    {}
func (NopSink) OnSourceLost(input.Event) {}
func (NopSink) OnPoseUpdate(input.Event) {}

// Dispatch routes ev to the sink method for its kind.
func Dispatch(sink EventSink, ev input.Event) {
	switch ev.Kind {
	case input.EventGrab:
		sink.OnGrab(ev)
	case input.EventDrag:
		sink.OnDrag(ev)
	case input.EventRelease:
		sink.OnRelease(ev)
	case input.EventSourceLost:
		sink.OnSourceLost(ev)
	case input.EventPoseUpdate:
		sink.OnPoseUpdate(ev)
	}
}

var _ EventSink = (*Controller)(nil)

func (c *Controller) OnGrab(ev input.Event) {
	c.inputs.Update(ev)
	if !c.active {
		return
	}
	if c.engine.Grab(ev) {
		c.log.Debugf("gizmo %s: %s grabbed", c.ID, c.engine.Session().Handle)
	}
}

// OnDrag only records the live pointer. The motion is applied on Tick.
func (c *Controller) OnDrag(ev input.Event) {
	c.inputs.Update(ev)
}

func (c *Controller) OnRelease(ev input.Event) {
	c.inputs.Update(ev)
	if c.active {
		c.engine.Release(ev.Source)
	}
}

func (c *Controller) OnSourceLost(ev input.Event) {
	c.inputs.Lose(ev.Source)
	if c.active {
		c.engine.SourceLost(ev.Source)
	}
}

func (c *Controller) OnPoseUpdate(ev input.Event) {
	c.inputs.UpdatePose(ev.Source, ev.Point)
}
