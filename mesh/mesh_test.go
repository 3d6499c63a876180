package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	if got.Sub(want).Len() > 1e-4 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStaticBox(t *testing.T) {
	box, err := NewBox(mgl32.Vec3{2, 4, 6}).LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{}, box.Center)
	assertVec(t, mgl32.Vec3{1, 2, 3}, box.Extents)

	_, err = (&Static{}).LocalBounds()
	assert.ErrorIs(t, err, ErrNoVertices)
}

func newTestDoc(positions [][3]float32) *gltf.Document {
	doc := gltf.NewDocument()
	acc := modeler.WritePosition(doc, positions)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{
			{Attributes: map[string]uint32{"POSITION": acc}},
		},
	})
	return doc
}

func TestGLTFBoundsFromAccessorMinMax(t *testing.T) {
	doc := newTestDoc([][3]float32{{-1, 0, 0}, {1, 2, 0}, {0, 0, 3}})

	box, err := (&GLTF{Doc: doc, Mesh: 0}).LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{-1, 0, 0}, box.Min())
	assertVec(t, mgl32.Vec3{1, 2, 3}, box.Max())
}

func TestGLTFBoundsReadsPositionsWithoutMinMax(t *testing.T) {
	doc := newTestDoc([][3]float32{{-2, -2, -2}, {4, 1, 0}})
	acc := doc.Accessors[doc.Meshes[0].Primitives[0].Attributes["POSITION"]]
	acc.Min = nil
	acc.Max = nil

	box, err := (&GLTF{Doc: doc, Mesh: 0}).LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{-2, -2, -2}, box.Min())
	assertVec(t, mgl32.Vec3{4, 1, 0}, box.Max())
}

func TestGLTFMissingMesh(t *testing.T) {
	_, err := (&GLTF{Doc: gltf.NewDocument(), Mesh: 3}).LocalBounds()
	require.Error(t, err)

	doc := gltf.NewDocument()
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{{Attributes: map[string]uint32{}}}})
	_, err = Meshes(doc)[0].LocalBounds()
	assert.ErrorIs(t, err, ErrNoVertices)
}

func TestSDFBounds(t *testing.T) {
	box, err := NewSDFBox(mgl32.Vec3{2, 2, 4}, 0)
	require.NoError(t, err)

	b, err := box.LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{1, 1, 2}, b.Extents)

	moved, err := box.Translate(mgl32.Vec3{5, 0, 0}).LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{5, 0, 0}, moved.Center)

	sphere, err := NewSDFSphere(1.5)
	require.NoError(t, err)
	sb, err := sphere.LocalBounds()
	require.NoError(t, err)
	assertVec(t, mgl32.Vec3{1.5, 1.5, 1.5}, sb.Extents)
}
