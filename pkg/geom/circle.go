package geom

// Circle is a circle with center and radius. Radius >= 0 is a caller
// invariant; a zero radius denotes a point.
type Circle struct {
	Center Vector2 `json:"center"`
	Radius float64 `json:"radius"`
}

// ContainsPoint reports whether p lies inside the circle, boundary inclusive.
func (c Circle) ContainsPoint(p Vector2) bool {
	return c.Center.DistanceSqTo(p) <= c.Radius*c.Radius
}

// Intersects reports whether two circles overlap or touch. Computed on
// squared distances; boundary contact counts as intersection.
func (c Circle) Intersects(other Circle) bool {
	r := c.Radius + other.Radius
	return c.Center.DistanceSqTo(other.Center) <= r*r
}

// IntersectsAABB reports whether the circle overlaps the box. True when the
// circle's center is inside the box, or when the closest point on any of
// the box's four edges lies within the radius.
func (c Circle) IntersectsAABB(box AABB) bool {
	if box.ContainsPoint(c.Center) {
		return true
	}
	var corners [CornerCount]Vector2
	n, err := box.Corners(corners[:])
	if err != nil {
		return false
	}
	rsq := c.Radius * c.Radius
	for i := 0; i < n; i++ {
		a := corners[i]
		b := corners[(i+1)%n]
		closest := ClosestPointOnSegment(a, b, c.Center)
		if closest.DistanceSqTo(c.Center) <= rsq {
			return true
		}
	}
	return false
}
