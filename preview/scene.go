package preview

import (
	"math"
)

// Vector3 is a point or size in model space
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Box3 is an axis-aligned bounding box
type Box3 struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// Center returns the box's center point
func (b Box3) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box's extent per axis
func (b Box3) Size() Vector3 {
	return Vector3{
		X: b.Max.X - b.Min.X,
		Y: b.Max.Y - b.Min.Y,
		Z: b.Max.Z - b.Min.Z,
	}
}

// MaxDimension returns the largest extent of the box
func (b Box3) MaxDimension() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}

// Union grows the box to include other
func (b Box3) Union(other Box3) Box3 {
	return Box3{
		Min: Vector3{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Vector3{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// Geometry holds a mesh's vertex bounds. Vertex buffers themselves stay on
// the GPU side of the fence this model stands in for; the scene only needs
// the bounding box and a disposal flag.
type Geometry struct {
	Bounds   Box3
	disposed bool
}

// Dispose releases the geometry. Safe to call more than once.
func (g *Geometry) Dispose() {
	g.disposed = true
}

// Disposed reports whether the geometry has been released
func (g *Geometry) Disposed() bool {
	return g.disposed
}

// Material describes a surface. Standard materials are the paintable ones:
// garment tinting only touches those.
type Material struct {
	Name     string
	Color    string // hex string
	Standard bool
	disposed bool
}

// Dispose releases the material. Safe to call more than once.
func (m *Material) Dispose() {
	m.disposed = true
}

// Disposed reports whether the material has been released
func (m *Material) Disposed() bool {
	return m.disposed
}

// Mesh pairs a geometry with a material at a position
type Mesh struct {
	Name     string
	Geometry *Geometry
	Material *Material
	Position Vector3
}

// Scene is the flat collection of meshes under render
type Scene struct {
	meshes []*Mesh
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a mesh to the scene
func (s *Scene) Add(mesh *Mesh) {
	s.meshes = append(s.meshes, mesh)
}

// Meshes returns the scene's meshes
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// BoundingBox returns the union of all mesh bounds, or false when the
// scene is empty.
func (s *Scene) BoundingBox() (Box3, bool) {
	if len(s.meshes) == 0 {
		return Box3{}, false
	}
	box := s.meshes[0].Geometry.Bounds
	for _, mesh := range s.meshes[1:] {
		box = box.Union(mesh.Geometry.Bounds)
	}
	return box, true
}

// DisposeAll releases every geometry and material held by scene objects,
// then empties the scene. This must run on every teardown path.
func (s *Scene) DisposeAll() {
	for _, mesh := range s.meshes {
		if mesh.Geometry != nil {
			mesh.Geometry.Dispose()
		}
		if mesh.Material != nil {
			mesh.Material.Dispose()
		}
	}
	s.meshes = nil
}
