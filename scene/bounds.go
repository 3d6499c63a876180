package scene

import (
	"github.com/gekko3d/boundsbox/bounds"
	"github.com/gekko3d/boundsbox/core"
)

func (n *Node) WorldTransform() core.Transform {
	return n.World()
}

func (n *Node) ChildTargets() []bounds.Target {
	out := make([]bounds.Target, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ProbeBounds fits a box to the node's own geometry: its collider if it has
// one, else its mesh. Children are not included.
func (n *Node) ProbeBounds() core.AABB {
	w := n.World()
	if n.Collider != nil {
		return n.Collider.Bounds().Transformed(w)
	}
	if n.Mesh != nil {
		local, err := n.Mesh.LocalBounds()
		if err != nil {
			return core.AABB{}
		}
		return local.Transformed(w)
	}
	return core.AABB{}
}

func (n *Node) ColliderBounds() []core.AABB {
	var out []core.AABB
	n.Walk(func(c *Node) bool {
		if c.Collider != nil {
			out = append(out, c.Collider.Bounds().Transformed(c.World()))
		}
		return true
	})
	return out
}

func (n *Node) RendererBounds() []core.AABB {
	var out []core.AABB
	n.Walk(func(c *Node) bool {
		if !c.Renderer || c.Mesh == nil {
			return true
		}
		local, err := c.Mesh.LocalBounds()
		if err == nil {
			out = append(out, local.Transformed(c.World()))
		}
		return true
	})
	return out
}

func (n *Node) MeshSources() []core.MeshSource {
	var out []core.MeshSource
	n.Walk(func(c *Node) bool {
		if c.Mesh != nil {
			out = append(out, c.Mesh)
		}
		return true
	})
	return out
}
