// Package input models pointer and pose sources feeding the gizmo and keeps
// the latest ray or position seen from each one.
package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/boundsbox/core"
)

type SourceID uint32

// Modality says how a source points: with a ray (mouse, far pointer) or
// with a position in space (hand, tracked controller tip).
type Modality int

const (
	ModalityRay Modality = iota
	ModalityPoint
)

func (m Modality) String() string {
	if m == ModalityPoint {
		return "point"
	}
	return "ray"
}

type EventKind int

const (
	EventGrab EventKind = iota
	EventDrag
	EventRelease
	EventSourceLost
	EventPoseUpdate
)

func (k EventKind) String() string {
	switch k {
	case EventGrab:
		return "grab"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	case EventSourceLost:
		return "source-lost"
	case EventPoseUpdate:
		return "pose-update"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

type Event struct {
	Kind     EventKind
	Source   SourceID
	Modality Modality
	Ray      core.Ray
	Point    mgl32.Vec3
}

type state struct {
	modality Modality
	ray      core.Ray
	point    mgl32.Vec3
	hasPose  bool
}

// Tracker remembers the live state of every source that has reported.
type Tracker struct {
	sources map[SourceID]*state
}

func NewTracker() *Tracker {
	return &Tracker{sources: make(map[SourceID]*state)}
}

// Update records the ray or point carried by ev. Source-lost events forget
// the source.
func (t *Tracker) Update(ev Event) {
	if ev.Kind == EventSourceLost {
		t.Lose(ev.Source)
		return
	}
	s, ok := t.sources[ev.Source]
	if !ok {
		s = &state{}
		t.sources[ev.Source] = s
	}
	s.modality = ev.Modality
	if ev.Modality == ModalityPoint {
		s.point = ev.Point
		s.hasPose = true
	} else {
		s.ray = ev.Ray
	}
}

// UpdatePose records a position for src without any interaction.
func (t *Tracker) UpdatePose(src SourceID, p mgl32.Vec3) {
	t.Update(Event{Kind: EventPoseUpdate, Source: src, Modality: ModalityPoint, Point: p})
}

func (t *Tracker) Lose(src SourceID) {
	delete(t.sources, src)
}

func (t *Tracker) Known(src SourceID) bool {
	_, ok := t.sources[src]
	return ok
}

func (t *Tracker) Ray(src SourceID) (core.Ray, bool) {
	s, ok := t.sources[src]
	if !ok || s.modality != ModalityRay {
		return core.Ray{}, false
	}
	return s.ray, true
}

// Position is the last pose of src. False until a pose has been seen.
func (t *Tracker) Position(src SourceID) (mgl32.Vec3, bool) {
	s, ok := t.sources[src]
	if !ok || !s.hasPose {
		return mgl32.Vec3{}, false
	}
	return s.point, true
}
