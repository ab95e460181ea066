package geom

import (
	"errors"
	"math"
)

// ErrBufferTooSmall is returned by buffer-filling functions when the
// caller-supplied slice cannot hold the result.
var ErrBufferTooSmall = errors.New("geom: output buffer too small")

// LeftOf reports whether point lies strictly to the left of the directed
// line through a and b. Points exactly on the line are not "left"; boundary
// classification for polygon containment is therefore implementation-defined.
func LeftOf(a, b, point Vector2) bool {
	return b.Sub(a).Cross(point.Sub(a)) > 0
}

// ClosestPointOnLine returns the projection of point onto the infinite line
// through a and b. If a == b the line is degenerate and a is returned.
func ClosestPointOnLine(a, b, point Vector2) Vector2 {
	dir := b.Sub(a)
	lenSq := dir.LengthSq()
	if lenSq == 0 {
		return a
	}
	t := point.Sub(a).Dot(dir) / lenSq
	return a.Add(dir.Scale(t))
}

// ClosestPointOnSegment returns the point on the segment a-b closest to
// point. The projection parameter is clamped to [0,1], so the result is an
// endpoint when the projection falls outside the segment. If a == b the
// segment is degenerate and a is returned.
func ClosestPointOnSegment(a, b, point Vector2) Vector2 {
	dir := b.Sub(a)
	lenSq := dir.LengthSq()
	if lenSq == 0 {
		return a
	}
	t := point.Sub(a).Dot(dir) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(dir.Scale(t))
}

// LineIntersection computes the intersection of the infinite line through
// a1,b1 with the infinite line through a2,b2. It solves by case analysis on
// near-vertical degeneracy under tol rather than a single determinant test,
// and re-validates the candidate point against both line equations before
// accepting it, which guards ill-conditioned near-parallel systems.
//
// Returns false for (near-)parallel or coincident lines. tol <= 0 selects
// DefaultTolerance.
func LineIntersection(a1, b1, a2, b2 Vector2, tol float64) (Vector2, bool) {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	d1 := b1.Sub(a1)
	d2 := b2.Sub(a2)

	vertical1 := math.Abs(d1.X) < tol
	vertical2 := math.Abs(d2.X) < tol

	var p Vector2
	switch {
	case vertical1 && vertical2:
		// Both (near-)vertical: parallel or coincident.
		return Vector2{}, false

	case vertical1:
		slope2 := d2.Y / d2.X
		p.X = a1.X
		p.Y = a2.Y + (p.X-a2.X)*slope2

	case vertical2:
		slope1 := d1.Y / d1.X
		p.X = a2.X
		p.Y = a1.Y + (p.X-a1.X)*slope1

	default:
		slope1 := d1.Y / d1.X
		slope2 := d2.Y / d2.X
		if math.Abs(slope1-slope2) < tol {
			return Vector2{}, false
		}
		p.X = (slope1*a1.X - a1.Y - slope2*a2.X + a2.Y) / (slope1 - slope2)
		p.Y = a1.Y + (p.X-a1.X)*slope1
	}

	if !pointOnLine(a1, b1, p, tol) || !pointOnLine(a2, b2, p, tol) {
		return Vector2{}, false
	}
	return p, true
}

// pointOnLine reports whether p satisfies the equation of the line through
// a and b within tol.
func pointOnLine(a, b, p Vector2, tol float64) bool {
	d := b.Sub(a)
	if math.Abs(d.X) < tol {
		return math.Abs(p.X-a.X) <= tol
	}
	slope := d.Y / d.X
	return math.Abs(a.Y+(p.X-a.X)*slope-p.Y) <= tol
}

// LineSegmentIntersection computes the intersection of the infinite line
// through la,lb with the segment sa-sb. The segment restriction is an
// axis-aligned bounding-box containment check of the intersection point
// against the segment's own bounds; this is an approximation of parametric
// clipping and can misclassify nearly collinear, very short segments.
func LineSegmentIntersection(la, lb, sa, sb Vector2, tol float64) (Vector2, bool) {
	p, ok := LineIntersection(la, lb, sa, sb, tol)
	if !ok {
		return Vector2{}, false
	}
	if !segmentBounds(sa, sb).ContainsPoint(p) {
		return Vector2{}, false
	}
	return p, true
}

// SegmentIntersection computes the intersection of the segments a1-b1 and
// a2-b2. Same bounding-box approximation caveat as LineSegmentIntersection.
func SegmentIntersection(a1, b1, a2, b2 Vector2, tol float64) (Vector2, bool) {
	p, ok := LineIntersection(a1, b1, a2, b2, tol)
	if !ok {
		return Vector2{}, false
	}
	if !segmentBounds(a1, b1).ContainsPoint(p) || !segmentBounds(a2, b2).ContainsPoint(p) {
		return Vector2{}, false
	}
	return p, true
}

// segmentBounds returns the AABB spanned by the two segment endpoints.
func segmentBounds(a, b Vector2) AABB {
	return AABB{
		Min: Vector2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vector2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}
