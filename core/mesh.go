package core

// MeshSource is anything that can report the object-space bounds of its geometry.
type MeshSource interface {
	LocalBounds() (AABB, error)
}
