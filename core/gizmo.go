package core

import "github.com/go-gl/mathgl/mgl32"

type GizmoType int

const (
	GizmoLine GizmoType = iota
	GizmoCube
	GizmoSphere
	GizmoCylinder // Unit cylinder is 2 tall along local Y
)

// Material selects how a primitive is shaded.
type Material int

const (
	MaterialWireframe Material = iota
	MaterialHandle
	MaterialHandleGrabbed
)

var materialColors = map[Material][4]float32{
	MaterialWireframe:     {0.8, 0.8, 0.8, 1},
	MaterialHandle:        {0.2, 0.6, 1, 1},
	MaterialHandleGrabbed: {1, 0.75, 0.1, 1},
}

func (m Material) Color() [4]float32 {
	return materialColors[m]
}

// Gizmo is a wireframe primitive placed in world space.
// For Cube, Sphere, Cylinder: Position is center, Scale dimensions.
// For Line: Position is Start, LineEnd is End.
type Gizmo struct {
	Type     GizmoType
	Material Material
	Color    [4]float32

	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	LineEnd mgl32.Vec3
	Radius  float32 // For Sphere
}

func NewGizmoLine(start, end mgl32.Vec3, mat Material) Gizmo {
	return Gizmo{
		Type:     GizmoLine,
		Material: mat,
		Color:    mat.Color(),
		Position: start,
		LineEnd:  end,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCube(center mgl32.Vec3, size mgl32.Vec3, mat Material) Gizmo {
	return Gizmo{
		Type:     GizmoCube,
		Material: mat,
		Color:    mat.Color(),
		Position: center,
		Scale:    size,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoSphere(center mgl32.Vec3, radius float32, mat Material) Gizmo {
	return Gizmo{
		Type:     GizmoSphere,
		Material: mat,
		Color:    mat.Color(),
		Position: center,
		Radius:   radius,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCylinder(center mgl32.Vec3, rot mgl32.Quat, scale mgl32.Vec3, mat Material) Gizmo {
	return Gizmo{
		Type:     GizmoCylinder,
		Material: mat,
		Color:    mat.Color(),
		Position: center,
		Rotation: rot,
		Scale:    scale,
	}
}
