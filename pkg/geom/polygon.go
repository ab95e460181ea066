package geom

// Convex polygon utilities. Polygons are ordered vertex slices with at
// least 3 entries, convex and clockwise-wound. That contract is the
// caller's; results are undefined when it is violated.

// PolygonContainsPoint reports whether p lies inside the convex polygon.
// p is contained iff it falls on the same side of every edge as it does of
// the first edge. Points exactly on an edge are implementation-defined.
func PolygonContainsPoint(verts []Vector2, p Vector2) bool {
	if len(verts) < 3 {
		return false
	}
	side := LeftOf(verts[0], verts[1], p)
	for i := 1; i < len(verts); i++ {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		if LeftOf(a, b, p) != side {
			return false
		}
	}
	return true
}

// Centroid returns the arithmetic mean of the vertices. This is the simple
// vertex mean, not an area-weighted centroid. An empty slice yields the
// zero vector.
func Centroid(verts []Vector2) Vector2 {
	if len(verts) == 0 {
		return Vector2{}
	}
	var sum Vector2
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(verts)))
}

// LongestEdge returns the endpoints of the longest edge of the polygon,
// scanning edges cyclically. Ties keep the earliest edge. Fewer than two
// vertices yield zero vectors.
func LongestEdge(verts []Vector2) (a, b Vector2) {
	if len(verts) < 2 {
		return Vector2{}, Vector2{}
	}
	best := -1.0
	for i := range verts {
		p := verts[i]
		q := verts[(i+1)%len(verts)]
		if d := p.DistanceSqTo(q); d > best {
			best = d
			a, b = p, q
		}
	}
	return a, b
}

// CircumscribedCircle returns the circle through the three vertices of a
// triangle. The center is the intersection of the perpendicular bisectors
// of the two edges adjacent to the longest edge; bisecting the two shorter
// edges is numerically stronger than bisecting the longest. A degenerate
// (collinear) triangle yields the zero circle.
func CircumscribedCircle(a, b, c Vector2) Circle {
	// Order the edges so that (e1, e2) are the two shorter ones.
	ab := a.DistanceSqTo(b)
	bc := b.DistanceSqTo(c)
	ca := c.DistanceSqTo(a)

	var e1a, e1b, e2a, e2b Vector2
	switch {
	case ab >= bc && ab >= ca:
		e1a, e1b = b, c
		e2a, e2b = c, a
	case bc >= ab && bc >= ca:
		e1a, e1b = c, a
		e2a, e2b = a, b
	default:
		e1a, e1b = a, b
		e2a, e2b = b, c
	}

	p1, q1 := perpendicularBisector(e1a, e1b)
	p2, q2 := perpendicularBisector(e2a, e2b)

	center, ok := LineIntersection(p1, q1, p2, q2, DefaultTolerance)
	if !ok {
		return Circle{}
	}
	return Circle{Center: center, Radius: center.DistanceTo(a)}
}

// perpendicularBisector returns two points spanning the perpendicular
// bisector of the segment a-b.
func perpendicularBisector(a, b Vector2) (Vector2, Vector2) {
	mid := a.Add(b).Scale(0.5)
	d := b.Sub(a)
	perp := Vector2{X: -d.Y, Y: d.X}
	return mid, mid.Add(perp)
}

// PolygonIntersectsAABB reports whether the convex polygon overlaps the
// box. Three phases: polygon vertices inside the box, box corners inside
// the polygon (corners are not otherwise tested), then an edge-by-edge
// segment scan. Each phase alone is insufficient; one shape fully inside
// the other produces no edge crossings.
func PolygonIntersectsAABB(verts []Vector2, box AABB) bool {
	for _, v := range verts {
		if box.ContainsPoint(v) {
			return true
		}
	}
	var corners [CornerCount]Vector2
	n, err := box.Corners(corners[:])
	if err != nil {
		return false
	}
	for i := 0; i < n; i++ {
		if PolygonContainsPoint(verts, corners[i]) {
			return true
		}
	}
	return edgesIntersect(verts, corners[:n])
}

// PolygonIntersectsCircle reports whether the convex polygon overlaps the
// circle. A vertex inside the circle, the circle's center inside the
// polygon, or any edge passing within the radius counts.
func PolygonIntersectsCircle(verts []Vector2, c Circle) bool {
	for _, v := range verts {
		if c.ContainsPoint(v) {
			return true
		}
	}
	if PolygonContainsPoint(verts, c.Center) {
		return true
	}
	rsq := c.Radius * c.Radius
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		closest := ClosestPointOnSegment(a, b, c.Center)
		if closest.DistanceSqTo(c.Center) <= rsq {
			return true
		}
	}
	return false
}

// PolygonsIntersect reports whether two convex polygons overlap: vertex
// containment in both directions, then the O(n*m) edge scan.
func PolygonsIntersect(a, b []Vector2) bool {
	for _, v := range a {
		if PolygonContainsPoint(b, v) {
			return true
		}
	}
	for _, v := range b {
		if PolygonContainsPoint(a, v) {
			return true
		}
	}
	return edgesIntersect(a, b)
}

// edgesIntersect scans every edge of a against every edge of b.
func edgesIntersect(a, b []Vector2) bool {
	for i := range a {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := range b {
			b1 := b[j]
			b2 := b[(j+1)%len(b)]
			if _, ok := SegmentIntersection(a1, a2, b1, b2, DefaultTolerance); ok {
				return true
			}
		}
	}
	return false
}
