package geom

import (
	"errors"
	"testing"
)

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			name: "overlapping boxes",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 4, Y: 4}},
			b:    AABB{Min: Vector2{X: 2, Y: 2}, Max: Vector2{X: 6, Y: 6}},
			want: true,
		},
		{
			name: "disjoint boxes",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 1, Y: 1}},
			b:    AABB{Min: Vector2{X: 5, Y: 5}, Max: Vector2{X: 6, Y: 6}},
			want: false,
		},
		{
			name: "one inside the other",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 10, Y: 10}},
			b:    AABB{Min: Vector2{X: 3, Y: 3}, Max: Vector2{X: 4, Y: 4}},
			want: true,
		},
		{
			name: "touching along an edge",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 2, Y: 2}},
			b:    AABB{Min: Vector2{X: 2, Y: 0}, Max: Vector2{X: 4, Y: 2}},
			want: false,
		},
		{
			name: "touching at a corner",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 2, Y: 2}},
			b:    AABB{Min: Vector2{X: 2, Y: 2}, Max: Vector2{X: 4, Y: 4}},
			want: false,
		},
		{
			name: "overlap on x only",
			a:    AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 4, Y: 1}},
			b:    AABB{Min: Vector2{X: 2, Y: 5}, Max: Vector2{X: 6, Y: 6}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBSelfIntersects(t *testing.T) {
	a := AABB{Min: Vector2{X: 1, Y: 2}, Max: Vector2{X: 5, Y: 7}}
	if !a.Intersects(a) {
		t.Error("a non-degenerate box must intersect itself")
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 4, Y: 4}}

	tests := []struct {
		name  string
		point Vector2
		want  bool
	}{
		{"interior", Vector2{X: 2, Y: 2}, true},
		{"on min corner", Vector2{X: 0, Y: 0}, true},
		{"on max corner", Vector2{X: 4, Y: 4}, true},
		{"on an edge", Vector2{X: 4, Y: 2}, true},
		{"outside right", Vector2{X: 5, Y: 2}, false},
		{"outside below", Vector2{X: 2, Y: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestAABBCorners(t *testing.T) {
	box := AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 2, Y: 2}}

	var buf [CornerCount]Vector2
	n, err := box.Corners(buf[:])
	if err != nil {
		t.Fatalf("Corners: %v", err)
	}
	if n != CornerCount {
		t.Fatalf("Corners wrote %d vertices, want %d", n, CornerCount)
	}

	want := [CornerCount]Vector2{
		{X: 2, Y: 2},
		{X: 2, Y: 0},
		{X: 0, Y: 0},
		{X: 0, Y: 2},
	}
	if buf != want {
		t.Errorf("Corners = %v, want %v", buf, want)
	}
}

func TestAABBCornersBufferTooSmall(t *testing.T) {
	box := AABB{Min: Vector2{X: 0, Y: 0}, Max: Vector2{X: 2, Y: 2}}
	buf := make([]Vector2, 3)
	if _, err := box.Corners(buf); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Corners with short buffer = %v, want ErrBufferTooSmall", err)
	}
}

func TestBoundingAABB(t *testing.T) {
	tests := []struct {
		name   string
		points []Vector2
		want   AABB
	}{
		{
			name: "empty set",
			want: AABB{},
		},
		{
			name:   "single point",
			points: []Vector2{{X: 3, Y: -2}},
			want:   AABB{Min: Vector2{X: 3, Y: -2}, Max: Vector2{X: 3, Y: -2}},
		},
		{
			name: "scattered points",
			points: []Vector2{
				{X: 1, Y: 5}, {X: -2, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: -1},
			},
			want: AABB{Min: Vector2{X: -2, Y: -1}, Max: Vector2{X: 4, Y: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundingAABB(tt.points); got != tt.want {
				t.Errorf("BoundingAABB = %v, want %v", got, tt.want)
			}
		})
	}
}
