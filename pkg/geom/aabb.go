package geom

import "math"

// AABB is an axis-aligned bounding box. The caller maintains the invariant
// Min.X <= Max.X and Min.Y <= Max.Y; it is not validated here.
type AABB struct {
	Min Vector2 `json:"min"`
	Max Vector2 `json:"max"`
}

// Intersects reports whether a and b overlap. The test is strict interval
// overlap on both axes: the combined extents must exceed the span of the
// union, so boxes that merely touch along an edge do not intersect.
func (a AABB) Intersects(b AABB) bool {
	spanX := math.Max(a.Max.X, b.Max.X) - math.Min(a.Min.X, b.Min.X)
	spanY := math.Max(a.Max.Y, b.Max.Y) - math.Min(a.Min.Y, b.Min.Y)
	return (a.Max.X-a.Min.X)+(b.Max.X-b.Min.X) > spanX &&
		(a.Max.Y-a.Min.Y)+(b.Max.Y-b.Min.Y) > spanY
}

// ContainsPoint reports whether p lies inside a, bounds inclusive.
func (a AABB) ContainsPoint(p Vector2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// CornerCount is the number of vertices Corners writes.
const CornerCount = 4

// Corners writes the box's four corners into dst and returns the count
// written. The order is fixed and load-bearing for edge iteration:
// {Max, (Max.X,Min.Y), Min, (Min.X,Max.Y)} — a clockwise winding matching
// the polygon convention. Returns ErrBufferTooSmall if dst holds fewer
// than CornerCount entries.
func (a AABB) Corners(dst []Vector2) (int, error) {
	if len(dst) < CornerCount {
		return 0, ErrBufferTooSmall
	}
	dst[0] = a.Max
	dst[1] = Vector2{X: a.Max.X, Y: a.Min.Y}
	dst[2] = a.Min
	dst[3] = Vector2{X: a.Min.X, Y: a.Max.Y}
	return CornerCount, nil
}

// BoundingAABB returns the smallest AABB containing all points.
// An empty point set yields the zero box.
func BoundingAABB(points []Vector2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}
