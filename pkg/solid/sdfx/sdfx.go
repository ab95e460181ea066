// Package sdfx implements the solid.Solidifier interface using the
// github.com/deadsy/sdfx SDF-based CAD library. Shape profiles become
// SDF2 cross-sections, extruded to SDF3 and tessellated with marching
// cubes.
package sdfx

import (
	"fmt"

	"github.com/chazu/planar/pkg/shape"
	"github.com/chazu/planar/pkg/solid"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ solid.Solidifier = (*Solidifier)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement solid.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Solidifier implements solid.Solidifier using sdfx.
type Solidifier struct{}

// New returns a new sdfx Solidifier.
func New() *Solidifier {
	return &Solidifier{}
}

// unwrap extracts the underlying sdf.SDF3 from a solid.Solid.
func unwrap(s solid.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a solid.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) solid.Solid {
	return &sdfxSolid{s: s}
}

// Extrude lifts the shape's 2D profile into a solid of the given height.
// The profile keeps its kernel-space position: the extruded solid sits at
// the shape's coordinates in the XY plane, centered on z=0.
func (k *Solidifier) Extrude(s *shape.Shape, height float64) (solid.Solid, error) {
	profile, err := k.profile(s)
	if err != nil {
		return nil, err
	}
	return wrap(sdf.Extrude3D(profile, height)), nil
}

// profile builds the 2D cross-section for a shape.
func (k *Solidifier) profile(s *shape.Shape) (sdf.SDF2, error) {
	switch s.Kind {
	case shape.KindAABB:
		size := s.Box.Max.Sub(s.Box.Min)
		box := sdf.Box2D(v2.Vec{X: size.X, Y: size.Y}, 0)
		// Box2D centers at the origin; move to the shape's center.
		center := s.Box.Min.Add(size.Scale(0.5))
		m := sdf.Translate2d(v2.Vec{X: center.X, Y: center.Y})
		return sdf.Transform2D(box, m), nil

	case shape.KindCircle:
		circle, err := sdf.Circle2D(s.Circle.Radius)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
		}
		m := sdf.Translate2d(v2.Vec{X: s.Circle.Center.X, Y: s.Circle.Center.Y})
		return sdf.Transform2D(circle, m), nil

	case shape.KindPolygon:
		verts := s.Polygon.Vertices
		// Kernel polygons are clockwise; sdfx wants counter-clockwise.
		points := make([]v2.Vec, 0, len(verts))
		for i := len(verts) - 1; i >= 0; i-- {
			points = append(points, v2.Vec{X: verts[i].X, Y: verts[i].Y})
		}
		poly, err := sdf.Polygon2D(points)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
		}
		return poly, nil

	default:
		return nil, fmt.Errorf("%w: %d", shape.ErrUnknownKind, s.Kind)
	}
}

// Union returns the union of two solids.
func (k *Solidifier) Union(a, b solid.Solid) solid.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Solidifier) Difference(a, b solid.Solid) solid.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Solidifier) Intersection(a, b solid.Solid) solid.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Solidifier) Translate(s solid.Solid, x, y, z float64) solid.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *Solidifier) ToMesh(s solid.Solid) (*solid.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &solid.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
