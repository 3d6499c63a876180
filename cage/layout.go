// Package cage lays out the wireframe box around a bounding volume: its 8
// corners, 12 edge midpoints and the links joining them, plus the handles
// placed on them.
//
// Corner i sits at center + extents with the sign of each axis taken from
// the bits of i: bit0 for X, bit1 for Y, bit2 for Z. Corner 0 is (-,-,-) and
// corner 7 is (+,+,+). Edge and handle indices depend on this order.
package cage

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox/core"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

type FlattenAxis int

const (
	FlattenNone FlattenAxis = iota
	FlattenX
	FlattenY
	FlattenZ
	FlattenAuto
)

func (f FlattenAxis) String() string {
	switch f {
	case FlattenNone:
		return "none"
	case FlattenX:
		return "x"
	case FlattenY:
		return "y"
	case FlattenZ:
		return "z"
	case FlattenAuto:
		return "auto"
	}
	return "unknown"
}

// Axis returns the concrete axis. False for None and Auto.
func (f FlattenAxis) Axis() (Axis, bool) {
	switch f {
	case FlattenX:
		return AxisX, true
	case FlattenY:
		return AxisY, true
	case FlattenZ:
		return AxisZ, true
	}
	return 0, false
}

func ParseFlattenAxis(s string) (FlattenAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlattenNone, nil
	case "x":
		return FlattenX, nil
	case "y":
		return FlattenY, nil
	case "z":
		return FlattenZ, nil
	case "auto":
		return FlattenAuto, nil
	}
	return FlattenNone, errors.Errorf("unknown flatten axis %q", s)
}

// SmallestAxis picks the axis with the least extent. Ties go to the lower axis.
func SmallestAxis(extents mgl32.Vec3) FlattenAxis {
	best := AxisX
	for a := AxisY; a <= AxisZ; a++ {
		if extents[a] < extents[best] {
			best = a
		}
	}
	return FlattenX + FlattenAxis(best)
}

type LinkStyle int

const (
	LinkCubes LinkStyle = iota
	LinkCylinders
)

func ParseLinkStyle(s string) (LinkStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cubes", "cube":
		return LinkCubes, nil
	case "cylinders", "cylinder":
		return LinkCylinders, nil
	}
	return LinkCubes, errors.Errorf("unknown wireframe shape %q", s)
}

type edgeDef struct {
	a, b int
	axis Axis
}

// Near face loop 0-1-3-2, far face loop 4-5-7-6, then the four near-far
// connectors.
var edgeTable = [12]edgeDef{
	{0, 1, AxisX},
	{0, 2, AxisY},
	{3, 2, AxisX},
	{3, 1, AxisY},
	{4, 5, AxisX},
	{4, 6, AxisY},
	{7, 6, AxisX},
	{7, 5, AxisY},
	{0, 4, AxisZ},
	{1, 5, AxisZ},
	{2, 6, AxisZ},
	{3, 7, AxisZ},
}

const (
	NumCorners = 8
	NumEdges   = 12
)

func EdgeAxis(edge int) Axis {
	return edgeTable[edge].axis
}

// EdgeCorners returns the two corner indices joined by edge.
func EdgeCorners(edge int) (int, int) {
	return edgeTable[edge].a, edgeTable[edge].b
}

// FlattenedEdges lists the edges running along axis in index order.
func FlattenedEdges(axis Axis) []int {
	out := make([]int, 0, 4)
	for i, e := range edgeTable {
		if e.axis == axis {
			out = append(out, i)
		}
	}
	return out
}

func cornerSign(i int, a Axis) float32 {
	if i&(1<<uint(a)) != 0 {
		return 1
	}
	return -1
}

func DeriveCorners(vol core.AABB) [NumCorners]mgl32.Vec3 {
	var out [NumCorners]mgl32.Vec3
	for i := range out {
		out[i] = vol.Center.Add(mgl32.Vec3{
			cornerSign(i, AxisX) * vol.Extents.X(),
			cornerSign(i, AxisY) * vol.Extents.Y(),
			cornerSign(i, AxisZ) * vol.Extents.Z(),
		})
	}
	return out
}

func DeriveEdgeMidpoints(corners [NumCorners]mgl32.Vec3) [NumEdges]mgl32.Vec3 {
	var out [NumEdges]mgl32.Vec3
	for i, e := range edgeTable {
		out[i] = corners[e.a].Add(corners[e.b]).Mul(0.5)
	}
	return out
}

// OppositeCorner is the corner diagonally across the box.
func OppositeCorner(i int) int {
	return i ^ 7
}

// LinkLength is the length of a link running along an axis with the given
// extent. Cylinders are shortened so they do not overlap the corner caps.
func LinkLength(extent float32, style LinkStyle, radius float32) float32 {
	factor := float32(2)
	if style == LinkCylinders {
		factor = 1 - 6*radius
	}
	return extent*factor + radius
}

var (
	// A unit cylinder stands along Y.
	cylinderToX = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	cylinderToZ = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})
)

// linkShape returns the rotation and scale of the link primitive along axis.
func linkShape(axis Axis, extent float32, style LinkStyle, radius float32) (mgl32.Quat, mgl32.Vec3) {
	length := LinkLength(extent, style, radius)
	if style == LinkCylinders {
		rot := mgl32.QuatIdent()
		switch axis {
		case AxisX:
			rot = cylinderToX
		case AxisZ:
			rot = cylinderToZ
		}
		return rot, mgl32.Vec3{radius, length, radius}
	}
	scale := mgl32.Vec3{radius, radius, radius}
	scale[axis] = length
	return mgl32.QuatIdent(), scale
}
