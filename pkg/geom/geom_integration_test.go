package geom_test

import (
	"testing"

	"github.com/chazu/planar/pkg/geom"
)

// The hull of a point cloud, fed back through the polygon predicates:
// hull vertices form a clockwise convex polygon that contains the cloud's
// centroid and intersects the cloud's bounding box.
func TestHullFeedsPolygonPredicates(t *testing.T) {
	cloud := []geom.Vector2{
		{X: 0, Y: 0}, {X: 6, Y: 1}, {X: 7, Y: 5}, {X: 3, Y: 8},
		{X: -1, Y: 4}, {X: 2, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 2},
	}

	hull := make([]geom.Vector2, len(cloud))
	n, err := geom.ConvexHull(cloud, hull)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if n < 3 {
		t.Fatalf("hull size = %d, want >= 3", n)
	}
	hull = hull[:n]

	center := geom.Centroid(cloud)
	if !geom.PolygonContainsPoint(hull, center) {
		t.Errorf("cloud centroid %v should lie inside the hull %v", center, hull)
	}

	box := geom.BoundingAABB(cloud)
	if !geom.PolygonIntersectsAABB(hull, box) {
		t.Error("hull should intersect the cloud's bounding box")
	}
}

// The minimum enclosing circle of the hull equals that of the full cloud:
// interior points never influence the result.
func TestEnclosingCircleIgnoresInteriorPoints(t *testing.T) {
	cloud := []geom.Vector2{
		{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 6}, {X: 0, Y: 6},
		{X: 4, Y: 3}, {X: 2, Y: 2}, {X: 6, Y: 4},
	}
	corners := cloud[:4]

	full := geom.EnclosingCircle(cloud)
	hullOnly := geom.EnclosingCircle(corners)

	if !full.Center.EqualsWithin(hullOnly.Center, 1e-6) {
		t.Errorf("centers differ: %v vs %v", full.Center, hullOnly.Center)
	}
	if !geom.EqualWithin(full.Radius, hullOnly.Radius, 1e-6) {
		t.Errorf("radii differ: %g vs %g", full.Radius, hullOnly.Radius)
	}

	// And the circle still covers everything.
	for _, p := range cloud {
		if d := full.Center.DistanceTo(p); d > full.Radius+1e-9 {
			t.Errorf("point %v outside circle (d=%g, r=%g)", p, d, full.Radius)
		}
	}
}

// A circle built from the enclosing-circle of a polygon's vertices
// intersects that polygon through the shape-level predicate chain.
func TestEnclosingCircleIntersectsItsPolygon(t *testing.T) {
	// Clockwise triangle.
	tri := []geom.Vector2{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 6, Y: 0}}

	c := geom.EnclosingCircle(tri)
	if c.Radius <= 0 {
		t.Fatalf("degenerate enclosing circle: %+v", c)
	}
	if !geom.PolygonIntersectsCircle(tri, c) {
		t.Error("a polygon must intersect its own enclosing circle")
	}
}
