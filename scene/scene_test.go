package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/boundsbox/bounds"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	if got.Sub(want).Len() > 1e-4 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWorldPropagation(t *testing.T) {
	parent := NewNode("parent")
	parent.Local.Position = mgl32.Vec3{10, 0, 0}
	parent.Local.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	parent.Local.Scale = mgl32.Vec3{2, 2, 2}

	child := NewNode("child")
	child.Local.Position = mgl32.Vec3{1, 0, 0}
	parent.AddChild(child)

	w := child.World()
	// +X rotated 90 about Y is -Z, doubled by parent scale.
	assertVec(t, mgl32.Vec3{10, 0, -2}, w.Position)
	assertVec(t, mgl32.Vec3{2, 2, 2}, w.Scale)
	assert.Same(t, parent, child.Parent())
	assert.Same(t, child, parent.Find("child"))
}

func TestSetWorldPoseUnderParent(t *testing.T) {
	parent := NewNode("parent")
	parent.Local.Position = mgl32.Vec3{0, 5, 0}
	parent.Local.Rotation = mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 0, 1})
	child := NewNode("child")
	parent.AddChild(child)

	child.SetWorldPosition(mgl32.Vec3{1, 2, 3})
	assertVec(t, mgl32.Vec3{1, 2, 3}, child.WorldPosition())

	want := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{1, 0, 0})
	child.SetWorldRotation(want)
	got := child.WorldRotation()
	assert.True(t, got.ApproxEqualThreshold(want, 1e-4) || got.ApproxEqualThreshold(want.Scale(-1), 1e-4))
}

func TestReparentMovesChild(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.AddChild(c)
	b.AddChild(c)
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)
}

func TestTargetViews(t *testing.T) {
	root := NewNode("root")
	cube := NewCube("cube", mgl32.Vec3{2, 2, 2})
	cube.Local.Position = mgl32.Vec3{3, 0, 0}
	root.AddChild(cube)

	wall := NewNode("wall")
	wall.Collider = &BoxCollider{Size: mgl32.Vec3{1, 4, 1}}
	root.AddChild(wall)

	assert.True(t, root.ProbeBounds().IsEmpty())
	assertVec(t, mgl32.Vec3{3, 0, 0}, cube.ProbeBounds().Center)

	colliders := root.ColliderBounds()
	require.Len(t, colliders, 1)
	assertVec(t, mgl32.Vec3{0.5, 2, 0.5}, colliders[0].Extents)

	renderers := root.RendererBounds()
	require.Len(t, renderers, 1)
	assertVec(t, mgl32.Vec3{3, 0, 0}, renderers[0].Center)

	assert.Len(t, root.MeshSources(), 1)
	assert.Len(t, root.ChildTargets(), 2)
}

func TestResolverOnSceneGroup(t *testing.T) {
	root := NewNode("group")
	left := NewCube("left", mgl32.Vec3{1, 1, 1})
	left.Local.Position = mgl32.Vec3{-1, 0, 0}
	right := NewCube("right", mgl32.Vec3{1, 1, 1})
	right.Local.Position = mgl32.Vec3{1, 0, 0}
	root.AddChild(left)
	root.AddChild(right)

	box, method := bounds.NewResolver(nil).Resolve(root)
	assert.Equal(t, bounds.MethodChildProbes, method)
	assertVec(t, mgl32.Vec3{1.5, 0.5, 0.5}, box.Extents)
}

func TestImportGLTF(t *testing.T) {
	doc := gltf.NewDocument()
	acc := modeler.WritePosition(doc, [][3]float32{{-1, -1, -1}, {1, 1, 1}})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       "box",
		Primitives: []*gltf.Primitive{{Attributes: map[string]uint32{"POSITION": acc}}},
	})
	doc.Nodes = append(doc.Nodes,
		&gltf.Node{Name: "pivot", Translation: [3]float32{0, 2, 0}, Children: []uint32{1}},
		&gltf.Node{Name: "body", Mesh: gltf.Index(0), Scale: [3]float32{2, 1, 1}, Rotation: [4]float32{0, 0, 0, 1}},
	)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	root, err := ImportGLTF("model", doc)
	require.NoError(t, err)

	body := root.Find("body")
	require.NotNil(t, body)
	assert.True(t, body.Renderer)
	assertVec(t, mgl32.Vec3{0, 2, 0}, body.WorldPosition())

	box := body.ProbeBounds()
	assertVec(t, mgl32.Vec3{2, 1, 1}, box.Extents)
}

func TestImportGLTFRejectsBadIndices(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "broken", Mesh: gltf.Index(4)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	_, err := ImportGLTF("bad", doc)
	assert.Error(t, err)

	_, err = ImportGLTF("nil", nil)
	assert.Error(t, err)
}
