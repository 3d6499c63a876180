// Package scene is a minimal transform hierarchy that the gizmo can measure
// and move. Nodes carry optional collider, mesh and renderer data.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/boundsbox/bounds"
	"github.com/gekko3d/boundsbox/core"
	"github.com/gekko3d/boundsbox/mesh"
)

// BoxCollider is a box in the owning node's object space.
type BoxCollider struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

func (c BoxCollider) Bounds() core.AABB {
	return core.NewAABB(c.Center, c.Size)
}

type Node struct {
	Name  string
	Local core.Transform

	Collider *BoxCollider
	Mesh     core.MeshSource
	Renderer bool // Mesh is drawn

	parent   *Node
	children []*Node
}

var _ bounds.Target = (*Node)(nil)

func NewNode(name string) *Node {
	return &Node{Name: name, Local: core.NewTransform()}
}

// NewCube is a rendered box mesh of the given size centered on the node.
func NewCube(name string, size mgl32.Vec3) *Node {
	n := NewNode(name)
	n.Mesh = mesh.NewBox(size)
	n.Renderer = true
	return n
}

// AddChild reparents child under n, keeping child's local transform.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// World composes the local transforms from the root down.
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
func (n *Node) World() core.Transform {
	if n.parent == nil {
		return n.Local
	}
	return n.parent.World().Mul(n.Local)
}

func (n *Node) parentWorld() core.Transform {
	if n.parent == nil {
		return core.NewTransform()
	}
	return n.parent.World()
}

// Walk visits n and its descendants depth first. Returning false stops
// descent below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in the subtree with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.World().Position
}

func (n *Node) SetWorldPosition(p mgl32.Vec3) {
	n.Local.Position = n.parentWorld().InverseTransformPoint(p)
}

func (n *Node) WorldRotation() mgl32.Quat {
	return n.World().Rotation
}

func (n *Node) SetWorldRotation(q mgl32.Quat) {
	n.Local.Rotation = n.parentWorld().Rotation.Conjugate().Mul(q).Normalize()
}

func (n *Node) LocalScale() mgl32.Vec3 {
	return n.Local.Scale
}

func (n *Node) SetLocalScale(s mgl32.Vec3) {
	n.Local.Scale = s
}
