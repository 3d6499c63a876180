package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gekko3d/boundsbox/core"
)

// GLTF is one mesh of a glTF document.
type GLTF struct {
	Doc  *gltf.Document
	Mesh uint32
}

var _ core.MeshSource = (*GLTF)(nil)

// OpenGLTF loads a .gltf or .glb file.
func OpenGLTF(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open gltf %q", path)
	}
	return doc, nil
}

// LocalBounds unions the POSITION accessors of every primitive. Accessor
// min/max are used when present, otherwise the positions are read back.
func (g *GLTF) LocalBounds() (core.AABB, error) {
	if g.Doc == nil || int(g.Mesh) >= len(g.Doc.Meshes) {
		return core.AABB{}, errors.Errorf("gltf mesh %d not found", g.Mesh)
	}
	m := g.Doc.Meshes[g.Mesh]

	var u core.Union
	found := false
	for iPrim, prim := range m.Primitives {
		idx, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		if int(idx) >= len(g.Doc.Accessors) {
			return core.AABB{}, errors.Errorf("mesh %q primitive %d: accessor %d out of range", m.Name, iPrim, idx)
		}
		box, err := g.accessorBounds(g.Doc.Accessors[idx])
		if err != nil {
			return core.AABB{}, errors.Wrapf(err, "mesh %q primitive %d", m.Name, iPrim)
		}
		found = true
		u.Add(box)
	}
	if !found {
		return core.AABB{}, ErrNoVertices
	}
	box, _ := u.Result()
	return box, nil
}

func (g *GLTF) accessorBounds(acc *gltf.Accessor) (core.AABB, error) {
	if len(acc.Min) >= 3 && len(acc.Max) >= 3 {
		return core.AABBFromMinMax(
			mgl32.Vec3{float32(acc.Min[0]), float32(acc.Min[1]), float32(acc.Min[2])},
			mgl32.Vec3{float32(acc.Max[0]), float32(acc.Max[1]), float32(acc.Max[2])},
		), nil
	}

	positions, err := modeler.ReadPosition(g.Doc, acc, nil)
	if err != nil {
		return core.AABB{}, errors.Wrap(err, "reading positions")
	}
	if len(positions) == 0 {
		return core.AABB{}, ErrNoVertices
	}
	points := make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		points[i] = mgl32.Vec3(p)
	}
	return boundsOf(points), nil
}

// Meshes returns a source for every mesh in the document.
func Meshes(doc *gltf.Document) []*GLTF {
	out := make([]*GLTF, len(doc.Meshes))
	for i := range doc.Meshes {
		out[i] = &GLTF{Doc: doc, Mesh: uint32(i)}
	}
	return out
}
