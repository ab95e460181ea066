// Package shape provides the Shape entity: a tagged union over AABB,
// circle and convex polygon with translate, rotate and pairwise
// intersection, dispatching to the predicates in pkg/geom.
package shape

import (
	"errors"
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// ErrUnknownKind reports an intersection dispatch over a shape kind outside
// the closed set. It is a programming error, distinct from geometric
// degeneracy, and should be unreachable.
var ErrUnknownKind = errors.New("shape: unrecognized shape kind")

// Kind enumerates the shape variants.
type Kind int

const (
	KindAABB Kind = iota
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindAABB:
		return "aabb"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Polygon is the polygon payload: clockwise convex vertices plus a stored
// center. The center starts as the vertex mean but is reassigned after
// each rotation, so it can drift from the true centroid of a non-regular
// polygon over repeated rotations. That drift is part of the contract;
// see Rotate.
type Polygon struct {
	Vertices []geom.Vector2 `json:"vertices"`
	Center   geom.Vector2   `json:"center"`
}

// Shape is a tagged union over the three variants. Only the payload named
// by Kind is meaningful. Shapes are plain values mutated in place by
// Translate and Rotate; the zero Shape is a zero AABB.
type Shape struct {
	Kind    Kind        `json:"kind"`
	Box     geom.AABB   `json:"box,omitempty"`
	Circle  geom.Circle `json:"circle,omitempty"`
	Polygon Polygon     `json:"polygon,omitempty"`
}

// NewAABB returns an AABB shape. The min/max invariant is the caller's.
func NewAABB(min, max geom.Vector2) *Shape {
	return &Shape{Kind: KindAABB, Box: geom.AABB{Min: min, Max: max}}
}

// NewCircle returns a circle shape.
func NewCircle(center geom.Vector2, radius float64) *Shape {
	return &Shape{Kind: KindCircle, Circle: geom.Circle{Center: center, Radius: radius}}
}

// NewPolygon returns a polygon shape with its center set to the vertex
// mean. The vertices must be convex and clockwise-wound; that contract is
// not validated (see pkg/scene for advisory validation).
func NewPolygon(vertices []geom.Vector2) *Shape {
	return &Shape{Kind: KindPolygon, Polygon: Polygon{
		Vertices: vertices,
		Center:   geom.Centroid(vertices),
	}}
}

// Translate shifts every positional field of the shape by delta.
func (s *Shape) Translate(delta geom.Vector2) {
	switch s.Kind {
	case KindAABB:
		s.Box.Min = s.Box.Min.Add(delta)
		s.Box.Max = s.Box.Max.Add(delta)
	case KindCircle:
		s.Circle.Center = s.Circle.Center.Add(delta)
	case KindPolygon:
		for i := range s.Polygon.Vertices {
			s.Polygon.Vertices[i] = s.Polygon.Vertices[i].Add(delta)
		}
		s.Polygon.Center = s.Polygon.Center.Add(delta)
	}
}

// Rotate rotates the shape by radians. It is a no-op for AABBs (rotation
// is undefined for an axis-aligned box) and circles (no visible effect).
// A polygon rotates every vertex about its currently stored center, then
// reassigns the center to the mean of the rotated vertices. Pivot and new
// center therefore differ for non-regular polygons: a full 2*pi rotation
// is not guaranteed to restore the original center value.
func (s *Shape) Rotate(radians float64) {
	if s.Kind != KindPolygon {
		return
	}
	pivot := s.Polygon.Center
	for i := range s.Polygon.Vertices {
		s.Polygon.Vertices[i] = s.Polygon.Vertices[i].RotatedAround(pivot, radians)
	}
	s.Polygon.Center = geom.Centroid(s.Polygon.Vertices)
}

// Intersects reports whether s and other overlap, dispatching over the
// 3x3 kind pairs to the matching predicate. A kind outside the closed set
// yields ErrUnknownKind.
func (s *Shape) Intersects(other *Shape) (bool, error) {
	switch s.Kind {
	case KindAABB:
		switch other.Kind {
		case KindAABB:
			return s.Box.Intersects(other.Box), nil
		case KindCircle:
			return other.Circle.IntersectsAABB(s.Box), nil
		case KindPolygon:
			return geom.PolygonIntersectsAABB(other.Polygon.Vertices, s.Box), nil
		}
	case KindCircle:
		switch other.Kind {
		case KindAABB:
			return s.Circle.IntersectsAABB(other.Box), nil
		case KindCircle:
			return s.Circle.Intersects(other.Circle), nil
		case KindPolygon:
			return geom.PolygonIntersectsCircle(other.Polygon.Vertices, s.Circle), nil
		}
	case KindPolygon:
		switch other.Kind {
		case KindAABB:
			return geom.PolygonIntersectsAABB(s.Polygon.Vertices, other.Box), nil
		case KindCircle:
			return geom.PolygonIntersectsCircle(s.Polygon.Vertices, other.Circle), nil
		case KindPolygon:
			return geom.PolygonsIntersect(s.Polygon.Vertices, other.Polygon.Vertices), nil
		}
	}
	return false, fmt.Errorf("%w: %d vs %d", ErrUnknownKind, s.Kind, other.Kind)
}

// ContainsPoint reports whether p lies inside the shape.
func (s *Shape) ContainsPoint(p geom.Vector2) (bool, error) {
	switch s.Kind {
	case KindAABB:
		return s.Box.ContainsPoint(p), nil
	case KindCircle:
		return s.Circle.ContainsPoint(p), nil
	case KindPolygon:
		return geom.PolygonContainsPoint(s.Polygon.Vertices, p), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownKind, s.Kind)
	}
}

// VertexCount returns the number of vertices Vertices will write.
func (s *Shape) VertexCount() int {
	switch s.Kind {
	case KindAABB:
		return geom.CornerCount
	case KindCircle:
		return 1
	case KindPolygon:
		return len(s.Polygon.Vertices)
	default:
		return 0
	}
}

// Vertices fills dst with the shape's render vertices and returns the
// count written: the four AABB corners in their fixed winding, the polygon
// vertices in order, or the circle's center alone. Returns
// geom.ErrBufferTooSmall when dst cannot hold VertexCount entries.
func (s *Shape) Vertices(dst []geom.Vector2) (int, error) {
	switch s.Kind {
	case KindAABB:
		return s.Box.Corners(dst)
	case KindCircle:
		if len(dst) < 1 {
			return 0, geom.ErrBufferTooSmall
		}
		dst[0] = s.Circle.Center
		return 1, nil
	case KindPolygon:
		if len(dst) < len(s.Polygon.Vertices) {
			return 0, geom.ErrBufferTooSmall
		}
		return copy(dst, s.Polygon.Vertices), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, s.Kind)
	}
}

// Bounds returns the axis-aligned bounding box of the shape.
func (s *Shape) Bounds() geom.AABB {
	switch s.Kind {
	case KindCircle:
		r := geom.Vector2{X: s.Circle.Radius, Y: s.Circle.Radius}
		return geom.AABB{Min: s.Circle.Center.Sub(r), Max: s.Circle.Center.Add(r)}
	case KindPolygon:
		return geom.BoundingAABB(s.Polygon.Vertices)
	default:
		return s.Box
	}
}
