package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/planar/pkg/geom"
)

func testAABB() *Shape {
	return NewAABB(geom.Vector2{X: 0, Y: 0}, geom.Vector2{X: 4, Y: 4})
}

func testCircle() *Shape {
	return NewCircle(geom.Vector2{X: 2, Y: 2}, 1)
}

func testPolygon() *Shape {
	// Clockwise square.
	return NewPolygon([]geom.Vector2{
		{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0},
	})
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAABB, "aabb"},
		{KindCircle, "circle"},
		{KindPolygon, "polygon"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewPolygonCenter(t *testing.T) {
	s := testPolygon()
	want := geom.Vector2{X: 2, Y: 2}
	if !s.Polygon.Center.EqualsWithin(want, 1e-9) {
		t.Errorf("center = %v, want %v", s.Polygon.Center, want)
	}
}

func TestTranslate(t *testing.T) {
	delta := geom.Vector2{X: 1, Y: -2}

	t.Run("aabb", func(t *testing.T) {
		s := testAABB()
		s.Translate(delta)
		if s.Box.Min != (geom.Vector2{X: 1, Y: -2}) || s.Box.Max != (geom.Vector2{X: 5, Y: 2}) {
			t.Errorf("translated box = %+v", s.Box)
		}
	})

	t.Run("circle", func(t *testing.T) {
		s := testCircle()
		s.Translate(delta)
		if s.Circle.Center != (geom.Vector2{X: 3, Y: 0}) {
			t.Errorf("translated center = %v, want (3,0)", s.Circle.Center)
		}
		if s.Circle.Radius != 1 {
			t.Errorf("radius changed to %g", s.Circle.Radius)
		}
	})

	t.Run("polygon moves vertices and center", func(t *testing.T) {
		s := testPolygon()
		s.Translate(delta)
		if s.Polygon.Vertices[0] != (geom.Vector2{X: 1, Y: -2}) {
			t.Errorf("translated vertex = %v, want (1,-2)", s.Polygon.Vertices[0])
		}
		if !s.Polygon.Center.EqualsWithin(geom.Vector2{X: 3, Y: 0}, 1e-9) {
			t.Errorf("translated center = %v, want (3,0)", s.Polygon.Center)
		}
	})

	t.Run("translate then inverse restores", func(t *testing.T) {
		s := testPolygon()
		s.Translate(delta)
		s.Translate(delta.Scale(-1))
		want := testPolygon()
		for i, v := range s.Polygon.Vertices {
			if !v.EqualsWithin(want.Polygon.Vertices[i], 1e-12) {
				t.Errorf("vertex %d = %v, want %v", i, v, want.Polygon.Vertices[i])
			}
		}
	})
}

func TestRotate(t *testing.T) {
	t.Run("aabb is a no-op", func(t *testing.T) {
		s := testAABB()
		before := s.Box
		s.Rotate(math.Pi / 3)
		if s.Box != before {
			t.Errorf("box changed: %+v -> %+v", before, s.Box)
		}
	})

	t.Run("circle is a no-op", func(t *testing.T) {
		s := testCircle()
		before := s.Circle
		s.Rotate(math.Pi / 3)
		if s.Circle != before {
			t.Errorf("circle changed: %+v -> %+v", before, s.Circle)
		}
	})

	t.Run("polygon quarter turn", func(t *testing.T) {
		s := testPolygon()
		s.Rotate(math.Pi / 2)
		// A square rotated a quarter turn about its center maps onto
		// itself: every rotated vertex is one of the original corners.
		original := testPolygon().Polygon.Vertices
		for _, v := range s.Polygon.Vertices {
			found := false
			for _, o := range original {
				if v.EqualsWithin(o, 1e-9) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("rotated vertex %v is not a corner of the original square", v)
			}
		}
	})

	t.Run("offset center drifts to the vertex mean", func(t *testing.T) {
		// A stored center away from the true centroid is the rotation
		// pivot, but afterwards the center snaps to the mean of the
		// rotated vertices. A full turn therefore does not restore the
		// original center value.
		s := &Shape{Kind: KindPolygon, Polygon: Polygon{
			Vertices: []geom.Vector2{
				{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 5, Y: 0},
			},
			Center: geom.Vector2{X: 10, Y: 10},
		}}
		s.Rotate(2 * math.Pi)
		// Vertices come back to where they started (within rounding).
		if !s.Polygon.Vertices[0].EqualsWithin(geom.Vector2{X: 0, Y: 0}, 1e-9) {
			t.Errorf("vertex 0 after full turn = %v, want (0,0)", s.Polygon.Vertices[0])
		}
		// The center does not: it has been reassigned to the vertex mean.
		if s.Polygon.Center.EqualsWithin(geom.Vector2{X: 10, Y: 10}, 1e-6) {
			t.Error("center kept its offset value; expected it to drift to the vertex mean")
		}
		wantCenter := geom.Centroid(s.Polygon.Vertices)
		if !s.Polygon.Center.EqualsWithin(wantCenter, 1e-9) {
			t.Errorf("center = %v, want vertex mean %v", s.Polygon.Center, wantCenter)
		}
	})

	t.Run("center is reassigned to the vertex mean", func(t *testing.T) {
		// Non-regular polygon: the stored center must equal the mean of the
		// rotated vertices afterwards, whatever the pivot was.
		s := NewPolygon([]geom.Vector2{
			{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 5, Y: 0},
		})
		s.Rotate(0.7)
		want := geom.Centroid(s.Polygon.Vertices)
		if !s.Polygon.Center.EqualsWithin(want, 1e-9) {
			t.Errorf("center = %v, want vertex mean %v", s.Polygon.Center, want)
		}
	})
}

func TestIntersectsDispatch(t *testing.T) {
	// Every ordered kind pair hits its predicate; each shape here overlaps
	// the other two.
	box := testAABB()
	circ := testCircle()
	poly := testPolygon()
	shapes := map[string]*Shape{"aabb": box, "circle": circ, "polygon": poly}

	for nameA, a := range shapes {
		for nameB, b := range shapes {
			t.Run(nameA+" vs "+nameB, func(t *testing.T) {
				hit, err := a.Intersects(b)
				if err != nil {
					t.Fatalf("Intersects: %v", err)
				}
				if !hit {
					t.Errorf("%s should intersect %s", nameA, nameB)
				}
			})
		}
	}

	t.Run("disjoint shapes", func(t *testing.T) {
		far := NewCircle(geom.Vector2{X: 100, Y: 100}, 1)
		for name, s := range shapes {
			hit, err := s.Intersects(far)
			if err != nil {
				t.Fatalf("Intersects: %v", err)
			}
			if hit {
				t.Errorf("%s should not intersect a far-away circle", name)
			}
		}
	})
}

func TestIntersectsUnknownKind(t *testing.T) {
	bad := &Shape{Kind: Kind(42)}
	good := testAABB()

	if _, err := bad.Intersects(good); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown lhs kind error = %v, want ErrUnknownKind", err)
	}
	if _, err := good.Intersects(bad); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown rhs kind error = %v, want ErrUnknownKind", err)
	}
}

func TestContainsPoint(t *testing.T) {
	tests := []struct {
		name  string
		s     *Shape
		point geom.Vector2
		want  bool
	}{
		{"aabb interior", testAABB(), geom.Vector2{X: 1, Y: 1}, true},
		{"aabb outside", testAABB(), geom.Vector2{X: 9, Y: 1}, false},
		{"circle interior", testCircle(), geom.Vector2{X: 2, Y: 2.5}, true},
		{"circle outside", testCircle(), geom.Vector2{X: 5, Y: 2}, false},
		{"polygon interior", testPolygon(), geom.Vector2{X: 3, Y: 1}, true},
		{"polygon outside", testPolygon(), geom.Vector2{X: -1, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.ContainsPoint(tt.point)
			if err != nil {
				t.Fatalf("ContainsPoint: %v", err)
			}
			if got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		bad := &Shape{Kind: Kind(42)}
		if _, err := bad.ContainsPoint(geom.Vector2{}); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("error = %v, want ErrUnknownKind", err)
		}
	})
}

func TestVertices(t *testing.T) {
	t.Run("aabb corners", func(t *testing.T) {
		s := testAABB()
		if s.VertexCount() != geom.CornerCount {
			t.Fatalf("VertexCount = %d, want %d", s.VertexCount(), geom.CornerCount)
		}
		buf := make([]geom.Vector2, s.VertexCount())
		n, err := s.Vertices(buf)
		if err != nil {
			t.Fatalf("Vertices: %v", err)
		}
		want := []geom.Vector2{
			{X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 4},
		}
		for i := 0; i < n; i++ {
			if buf[i] != want[i] {
				t.Errorf("vertex %d = %v, want %v", i, buf[i], want[i])
			}
		}
	})

	t.Run("circle center", func(t *testing.T) {
		s := testCircle()
		if s.VertexCount() != 1 {
			t.Fatalf("VertexCount = %d, want 1", s.VertexCount())
		}
		buf := make([]geom.Vector2, 1)
		n, err := s.Vertices(buf)
		if err != nil {
			t.Fatalf("Vertices: %v", err)
		}
		if n != 1 || buf[0] != (geom.Vector2{X: 2, Y: 2}) {
			t.Errorf("vertices = %v (n=%d), want [(2,2)]", buf[:n], n)
		}
	})

	t.Run("polygon copy", func(t *testing.T) {
		s := testPolygon()
		buf := make([]geom.Vector2, s.VertexCount())
		n, err := s.Vertices(buf)
		if err != nil {
			t.Fatalf("Vertices: %v", err)
		}
		if n != 4 {
			t.Fatalf("wrote %d vertices, want 4", n)
		}
		// The buffer is a copy; mutating it must not touch the shape.
		buf[0] = geom.Vector2{X: 99, Y: 99}
		if s.Polygon.Vertices[0] == buf[0] {
			t.Error("Vertices returned a shared slice, want a copy")
		}
	})

	t.Run("buffer too small", func(t *testing.T) {
		s := testPolygon()
		if _, err := s.Vertices(make([]geom.Vector2, 2)); !errors.Is(err, geom.ErrBufferTooSmall) {
			t.Errorf("error = %v, want ErrBufferTooSmall", err)
		}
	})
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		s    *Shape
		want geom.AABB
	}{
		{
			"aabb is its own bounds",
			testAABB(),
			geom.AABB{Min: geom.Vector2{X: 0, Y: 0}, Max: geom.Vector2{X: 4, Y: 4}},
		},
		{
			"circle bounds",
			testCircle(),
			geom.AABB{Min: geom.Vector2{X: 1, Y: 1}, Max: geom.Vector2{X: 3, Y: 3}},
		},
		{
			"polygon bounds",
			testPolygon(),
			geom.AABB{Min: geom.Vector2{X: 0, Y: 0}, Max: geom.Vector2{X: 4, Y: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Bounds(); got != tt.want {
				t.Errorf("Bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}
