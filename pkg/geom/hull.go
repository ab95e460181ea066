package geom

// ConvexHull computes the convex hull of points by gift wrapping (Jarvis
// march) and writes the hull vertices into dst in clockwise order, matching
// the polygon winding convention used by the containment tests. It returns
// the number of vertices written, between 1 and len(points) for non-empty
// input. O(n*h) where h is the hull size.
//
// dst must be sized by the caller for the worst case (len(points));
// ErrBufferTooSmall is returned if the walk outgrows it.
func ConvexHull(points []Vector2, dst []Vector2) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	// Start from the leftmost point, lowest on ties. It is always on the hull.
	start := 0
	for i, p := range points {
		if p.X < points[start].X || (p.X == points[start].X && p.Y < points[start].Y) {
			start = i
		}
	}

	count := 0
	current := start
	for {
		if count >= len(dst) {
			return count, ErrBufferTooSmall
		}
		dst[count] = points[current]
		count++

		// Pick the next hull vertex: the point such that no other point
		// lies to the left of the edge current->next. Collinear ties go to
		// the farther point so interior collinear points are skipped.
		next := (current + 1) % len(points)
		for i, p := range points {
			if i == current {
				continue
			}
			edge := points[next].Sub(points[current])
			cross := edge.Cross(p.Sub(points[current]))
			if cross > 0 {
				next = i
			} else if cross == 0 &&
				points[current].DistanceSqTo(p) > points[current].DistanceSqTo(points[next]) {
				next = i
			}
		}

		if next == start {
			return count, nil
		}
		current = next
	}
}
