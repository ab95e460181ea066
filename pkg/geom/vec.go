// Package geom is a pure 2D computational-geometry kernel: intersection
// predicates over axis-aligned boxes, circles and convex polygons, plus
// minimum enclosing circle and convex hull over point sets.
//
// All functions are stateless and safe for concurrent use as long as
// caller-supplied output buffers are not shared between invocations.
// Convex polygons are ordered vertex slices, clockwise-wound; the kernel
// trusts that contract and does not validate it.
package geom

import "math"

// DefaultTolerance is the epsilon used by the line-intersection solver and
// the comparison helpers when the caller has no better value.
const DefaultTolerance = 1e-4

// Vector2 is a 2D point or direction. Value type; compared by value.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product of v and other.
// Positive when other is counter-clockwise from v.
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of v.
func (v Vector2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance between v and other.
func (v Vector2) DistanceTo(other Vector2) float64 {
	return other.Sub(v).Length()
}

// DistanceSqTo returns the squared distance between v and other.
func (v Vector2) DistanceSqTo(other Vector2) float64 {
	return other.Sub(v).LengthSq()
}

// EqualsWithin reports whether v and other differ by at most tol on each axis.
func (v Vector2) EqualsWithin(other Vector2, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol && math.Abs(v.Y-other.Y) <= tol
}

// EqualWithin reports whether two scalars differ by at most tol.
func EqualWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Rotated returns v rotated about the origin by radians.
// Positive angles rotate counter-clockwise.
func (v Vector2) Rotated(radians float64) Vector2 {
	sin, cos := math.Sincos(radians)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotatedAround returns v rotated about center by radians.
func (v Vector2) RotatedAround(center Vector2, radians float64) Vector2 {
	return v.Sub(center).Rotated(radians).Add(center)
}

// AngleTo returns the unsigned angle between v and other in radians,
// in [0, pi]. Zero-length inputs are not guarded: the caller must not
// request an angle involving a zero vector, or the result is NaN.
func (v Vector2) AngleTo(other Vector2) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())
	// Clamp against rounding drift outside acos's domain.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// SignedAngleTo returns the angle between v and other in radians, in
// [-pi, pi]. The sign is positive when other lies to the left of v
// (counter-clockwise). Same zero-vector caveat as AngleTo.
func (v Vector2) SignedAngleTo(other Vector2) float64 {
	angle := v.AngleTo(other)
	if !LeftOf(Vector2{}, v, other) {
		return -angle
	}
	return angle
}
