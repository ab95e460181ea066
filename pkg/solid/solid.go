// Package solid defines the interface for lifting 2D kernel shapes into
// renderable 3D geometry. Implementations (sdfx) extrude shape profiles
// into solids and tessellate them behind this interface, so the rest of
// the system never depends on a particular geometry backend.
package solid

import "github.com/chazu/planar/pkg/shape"

// Solid is an opaque handle to a backend solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Solidifier turns 2D shapes into solids and solids into meshes.
type Solidifier interface {
	// Extrude lifts the shape's 2D profile into a solid of the given height.
	Extrude(s *shape.Shape, height float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
