package geom

// EnclosingCircleMaxSteps bounds the recursion of EnclosingCircle. The cap
// is a safety valve against pathological inputs, not a correctness
// guarantee; on overrun the zero circle is returned.
const EnclosingCircleMaxSteps = 1000

// EnclosingCircle computes the minimum circle enclosing all points using
// Welzl's recursive algorithm, expected linear time. The input is read-only.
// An empty input yields the zero circle.
func EnclosingCircle(points []Vector2) Circle {
	steps := 0
	return welzl(points, len(points), nil, &steps)
}

// welzl recurses over the unchecked prefix of points (processed from the
// end backward) carrying up to three support points known to lie on the
// boundary. Support and count are plain parameters rather than captured
// state so each frame is self-contained.
func welzl(points []Vector2, unchecked int, support []Vector2, steps *int) Circle {
	*steps++
	if *steps > EnclosingCircleMaxSteps {
		return Circle{}
	}

	if unchecked == 0 || len(support) == 3 {
		return circleFromSupport(support)
	}

	p := points[unchecked-1]
	c := welzl(points, unchecked-1, support, steps)
	if c.ContainsPoint(p) {
		return c
	}

	// p is outside the circle of the remaining points, so it must lie on
	// the boundary of the true minimum circle. Copy the support set so
	// sibling recursion branches never share a backing array.
	grown := make([]Vector2, len(support), len(support)+1)
	copy(grown, support)
	grown = append(grown, p)
	return welzl(points, unchecked-1, grown, steps)
}

// circleFromSupport builds the circle determined by up to three boundary
// points: none yields the zero circle, one a zero-radius circle at the
// point, two the circle on their diameter, three the circumscribed circle.
func circleFromSupport(support []Vector2) Circle {
	switch len(support) {
	case 1:
		return Circle{Center: support[0]}
	case 2:
		mid := support[0].Add(support[1]).Scale(0.5)
		return Circle{Center: mid, Radius: support[0].DistanceTo(support[1]) / 2}
	case 3:
		return CircumscribedCircle(support[0], support[1], support[2])
	default:
		return Circle{}
	}
}
