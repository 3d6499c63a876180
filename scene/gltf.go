package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/gekko3d/boundsbox/core"
	"github.com/gekko3d/boundsbox/mesh"
)

// ImportGLTF builds a node tree from the document's default scene. Nodes that
// reference a mesh become rendered mesh nodes.
func ImportGLTF(name string, doc *gltf.Document) (*Node, error) {
	if doc == nil {
		return nil, errors.New("gltf document is nil")
	}
	root := NewNode(name)

	roots, err := sceneRoots(doc)
	if err != nil {
		return nil, err
	}

	visiting := make(map[uint32]bool)
	var build func(idx uint32) (*Node, error)
	build = func(idx uint32) (*Node, error) {
		if int(idx) >= len(doc.Nodes) {
			return nil, errors.Errorf("gltf node %d out of range", idx)
		}
		if visiting[idx] {
			return nil, errors.Errorf("gltf node %d is its own ancestor", idx)
		}
		visiting[idx] = true
		defer delete(visiting, idx)

		src := doc.Nodes[idx]
		n := NewNode(src.Name)
		n.Local = nodeTransform(src)
		if src.Mesh != nil {
			if int(*src.Mesh) >= len(doc.Meshes) {
				return nil, errors.Errorf("gltf node %q: mesh %d out of range", src.Name, *src.Mesh)
			}
			n.Mesh = &mesh.GLTF{Doc: doc, Mesh: *src.Mesh}
			n.Renderer = true
		}
		for _, ci := range src.Children {
			child, err := build(ci)
			if err != nil {
				return nil, err
			}
			n.AddChild(child)
		}
		return n, nil
	}

	for _, idx := range roots {
		n, err := build(idx)
		if err != nil {
			return nil, errors.Wrapf(err, "importing %q", name)
		}
		root.AddChild(n)
	}
	return root, nil
}

func sceneRoots(doc *gltf.Document) ([]uint32, error) {
	if len(doc.Scenes) > 0 {
		si := uint32(0)
		if doc.Scene != nil {
			si = *doc.Scene
		}
		if int(si) >= len(doc.Scenes) {
			return nil, errors.Errorf("gltf scene %d out of range", si)
		}
		return doc.Scenes[si].Nodes, nil
	}

	// No scenes: every node that is nobody's child is a root.
	isChild := make(map[uint32]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []uint32
	for i := range doc.Nodes {
		if !isChild[uint32(i)] {
			roots = append(roots, uint32(i))
		}
	}
	return roots, nil
}

func nodeTransform(n *gltf.Node) core.Transform {
	t := core.NewTransform()

	var m mgl32.Mat4
	for i := range m {
		m[i] = float32(n.Matrix[i])
	}
	if m != (mgl32.Mat4{}) && m != mgl32.Ident4() {
		return matrixTransform(m)
	}

	t.Position = mgl32.Vec3{float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2])}

	q := mgl32.Quat{
		W: float32(n.Rotation[3]),
		V: mgl32.Vec3{float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2])},
	}
	if q.Len() > 1e-6 {
		t.Rotation = q.Normalize()
	}

	s := mgl32.Vec3{float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2])}
	if s != (mgl32.Vec3{}) {
		t.Scale = s
	}
	return t
}

// matrixTransform decomposes a column-major TRS matrix. Shear is dropped.
func matrixTransform(m mgl32.Mat4) core.Transform {
	t := core.NewTransform()
	t.Position = m.Col(3).Vec3()

	cx, cy, cz := m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()
	t.Scale = mgl32.Vec3{cx.Len(), cy.Len(), cz.Len()}
	if t.Scale.X() < 1e-8 || t.Scale.Y() < 1e-8 || t.Scale.Z() < 1e-8 {
		return t
	}
	rot := mgl32.Mat3FromCols(cx.Mul(1/t.Scale.X()), cy.Mul(1/t.Scale.Y()), cz.Mul(1/t.Scale.Z()))
	t.Rotation = mgl32.Mat4ToQuat(rot.Mat4()).Normalize()
	return t
}
