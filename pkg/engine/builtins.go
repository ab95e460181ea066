package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
	"github.com/chazu/planar/pkg/shape"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Planar Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: convex-hull -> convex_hull
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator).
//
// Both transformations respect string literal boundaries, and traditional
// Lisp ; line comments are converted to zygomys // comments.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals verbatim.
		if b[i] == '"' {
			out.WriteByte(b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					out.WriteByte(b[i])
					out.WriteByte(b[i+1])
					i += 2
					continue
				}
				out.WriteByte(b[i])
				i++
			}
			if i < len(b) {
				out.WriteByte(b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			out.WriteString("//")
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out.WriteByte(b[i])
				i++
			}
			continue
		}
		// Convert :keyword to a marked string literal.
		if b[i] == ':' && i+1 < len(b) && isIdentByte(b[i+1]) {
			i++
			out.WriteString(`"` + kwPrefix)
			for i < len(b) && isIdentByte(b[i]) {
				out.WriteByte(b[i])
				i++
			}
			out.WriteByte('"')
			continue
		}
		// Convert kebab-case identifiers: a hyphen with identifier
		// characters on both sides becomes an underscore.
		if b[i] == '-' && i > 0 && isIdentStart(b[i-1]) && i+1 < len(b) && isIdentStart(b[i+1]) {
			out.WriteByte('_')
			i++
			continue
		}
		out.WriteByte(b[i])
		i++
	}
	return out.String()
}

// isIdentByte reports bytes valid inside a keyword or identifier,
// hyphens included so :bounding-aabb parses as one keyword.
func isIdentByte(c byte) bool {
	return isIdentStart(c) || c == '-' || (c >= '0' && c <= '9')
}

// isIdentStart reports bytes that begin an identifier word. Digits are
// excluded so that (- 3 2) and negative literals stay arithmetic.
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// ---------------------------------------------------------------------------
// Sexp wrapper types
// ---------------------------------------------------------------------------

// sexpVec2 wraps a geom.Vector2 so it can be passed between builtins.
type sexpVec2 struct {
	v geom.Vector2
}

func (s *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", s.v.X, s.v.Y)
}
func (s *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpShapeRef wraps a scene object so builtins can operate on it.
type sexpShapeRef struct {
	obj *scene.Object
}

func (s *sexpShapeRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shaperef %q %s)", s.obj.Name, s.obj.Shape.Kind)
}
func (s *sexpShapeRef) Type() *zygo.RegisteredType { return nil }

// sexpCircle wraps a geom.Circle query result.
type sexpCircle struct {
	c geom.Circle
}

func (s *sexpCircle) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(circle (vec2 %g %g) %g)", s.c.Center.X, s.c.Center.Y, s.c.Radius)
}
func (s *sexpCircle) Type() *zygo.RegisteredType { return nil }

// sexpBox wraps a geom.AABB query result.
type sexpBox struct {
	b geom.AABB
}

func (s *sexpBox) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(aabb (vec2 %g %g) (vec2 %g %g))",
		s.b.Min.X, s.b.Min.Y, s.b.Max.X, s.b.Max.Y)
}
func (s *sexpBox) Type() *zygo.RegisteredType { return nil }

// sexpPointList wraps an ordered vertex list query result.
type sexpPointList struct {
	pts []geom.Vector2
}

func (s *sexpPointList) SexpString(ps *zygo.PrintState) string {
	var sb strings.Builder
	sb.WriteString("(points")
	for _, p := range s.pts {
		fmt.Fprintf(&sb, " (vec2 %g %g)", p.X, p.Y)
	}
	sb.WriteString(")")
	return sb.String()
}
func (s *sexpPointList) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value — treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec2 extracts a Vector2 from a sexpVec2.
func toVec2(s zygo.Sexp) (geom.Vector2, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.v, nil
	}
	return geom.Vector2{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

// toVec2List extracts an ordered point list from positional vec2 arguments.
func toVec2List(args []zygo.Sexp) ([]geom.Vector2, error) {
	points := make([]geom.Vector2, 0, len(args))
	for i, a := range args {
		v, err := toVec2(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		points = append(points, v)
	}
	return points, nil
}

// toObject resolves a shape argument: either a shaperef or an object name.
func toObject(sc *scene.Scene, s zygo.Sexp) (*scene.Object, error) {
	switch v := s.(type) {
	case *sexpShapeRef:
		return v.obj, nil
	case *zygo.SexpStr:
		obj := sc.Lookup(v.S)
		if obj == nil {
			return nil, fmt.Errorf("no shape named %q", v.S)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("expected shape reference or name, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Planar DSL builtins into a zygomys
// environment. Shape constructors populate the result's scene; query
// builtins append to the result's query list.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, result *Result) {
	sc := result.Scene

	// -----------------------------------------------------------------------
	// (vec2 3 4.5)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{v: geom.Vector2{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (aabb "box1" :min (vec2 0 0) :max (vec2 4 4))
	// -----------------------------------------------------------------------
	env.AddFunction("aabb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("aabb requires a name argument")
		}
		objName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("aabb: name: %w", err)
		}

		var min, max geom.Vector2
		if v, ok := pa.kw["min"]; ok {
			if min, err = toVec2(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("aabb: min: %w", err)
			}
		}
		if v, ok := pa.kw["max"]; ok {
			if max, err = toVec2(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("aabb: max: %w", err)
			}
		}

		obj, err := sc.Add(objName, shape.NewAABB(min, max))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("aabb: %w", err)
		}
		return &sexpShapeRef{obj: obj}, nil
	})

	// -----------------------------------------------------------------------
	// (circle "c1" :center (vec2 1 1) :radius 2)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("circle requires a name argument")
		}
		objName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: name: %w", err)
		}

		var center geom.Vector2
		var radius float64
		if v, ok := pa.kw["center"]; ok {
			if center, err = toVec2(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: center: %w", err)
			}
		}
		if v, ok := pa.kw["radius"]; ok {
			if radius, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: radius: %w", err)
			}
		}

		obj, err := sc.Add(objName, shape.NewCircle(center, radius))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return &sexpShapeRef{obj: obj}, nil
	})

	// -----------------------------------------------------------------------
	// (polygon "p1" (vec2 0 0) (vec2 0 4) (vec2 4 4) (vec2 4 0))
	// Vertices must be convex and clockwise-wound.
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("polygon requires a name argument")
		}
		objName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: name: %w", err)
		}
		verts, err := toVec2List(args[1:])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		if len(verts) < 3 {
			return zygo.SexpNull, fmt.Errorf("polygon requires at least 3 vertices, got %d", len(verts))
		}

		obj, err := sc.Add(objName, shape.NewPolygon(verts))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return &sexpShapeRef{obj: obj}, nil
	})

	// -----------------------------------------------------------------------
	// (translate "box1" (vec2 1 -2))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires a shape and a delta, got %d arguments", len(args))
		}
		obj, err := toObject(sc, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		delta, err := toVec2(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: delta: %w", err)
		}
		obj.Shape.Translate(delta)
		return &sexpShapeRef{obj: obj}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate "p1" 1.5708)  ; radians
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a shape and an angle, got %d arguments", len(args))
		}
		obj, err := toObject(sc, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		radians, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
		}
		obj.Shape.Rotate(radians)
		return &sexpShapeRef{obj: obj}, nil
	})

	// -----------------------------------------------------------------------
	// (select "p1")
	// -----------------------------------------------------------------------
	env.AddFunction("select", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("select requires a shape argument")
		}
		switch v := args[0].(type) {
		case *zygo.SexpInt:
			if err := sc.Select(int(v.Val)); err != nil {
				return zygo.SexpNull, fmt.Errorf("select: %w", err)
			}
		default:
			obj, err := toObject(sc, args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("select: %w", err)
			}
			for i := 0; i < sc.Len(); i++ {
				if sc.At(i) == obj {
					if err := sc.Select(i); err != nil {
						return zygo.SexpNull, fmt.Errorf("select: %w", err)
					}
					break
				}
			}
		}
		return &sexpShapeRef{obj: sc.Selected()}, nil
	})

	// -----------------------------------------------------------------------
	// (intersects "box1" "c1")
	// -----------------------------------------------------------------------
	env.AddFunction("intersects", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("intersects requires two shape arguments")
		}
		a, err := toObject(sc, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersects: %w", err)
		}
		b, err := toObject(sc, args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersects: %w", err)
		}
		hit, err := a.Shape.Intersects(b.Shape)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersects: %w", err)
		}
		result.Queries = append(result.Queries, QueryResult{
			Op:   "intersects",
			Args: []string{a.Name, b.Name},
			Bool: &hit,
		})
		return &zygo.SexpBool{Val: hit}, nil
	})

	// -----------------------------------------------------------------------
	// (contains "p1" (vec2 2 2))
	// -----------------------------------------------------------------------
	env.AddFunction("contains", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("contains requires a shape and a point")
		}
		obj, err := toObject(sc, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		p, err := toVec2(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: point: %w", err)
		}
		inside, err := obj.Shape.ContainsPoint(p)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		result.Queries = append(result.Queries, QueryResult{
			Op:   "contains",
			Args: []string{obj.Name},
			Bool: &inside,
		})
		return &zygo.SexpBool{Val: inside}, nil
	})

	// -----------------------------------------------------------------------
	// (convex-hull (vec2 0 0) (vec2 4 0) (vec2 4 4) (vec2 0 4) (vec2 2 2))
	// -----------------------------------------------------------------------
	env.AddFunction("convex_hull", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		points, err := toVec2List(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("convex-hull: %w", err)
		}
		hull := make([]geom.Vector2, len(points))
		n, err := geom.ConvexHull(points, hull)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("convex-hull: %w", err)
		}
		hull = hull[:n]
		result.Queries = append(result.Queries, QueryResult{
			Op:     "convex-hull",
			Points: hull,
		})
		return &sexpPointList{pts: hull}, nil
	})

	// -----------------------------------------------------------------------
	// (enclosing-circle (vec2 0 0) (vec2 4 0) (vec2 0 3))
	// -----------------------------------------------------------------------
	env.AddFunction("enclosing_circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		points, err := toVec2List(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("enclosing-circle: %w", err)
		}
		c := geom.EnclosingCircle(points)
		result.Queries = append(result.Queries, QueryResult{
			Op:     "enclosing-circle",
			Circle: &c,
		})
		return &sexpCircle{c: c}, nil
	})

	// -----------------------------------------------------------------------
	// (centroid (vec2 0 0) (vec2 4 0) (vec2 2 3))
	// -----------------------------------------------------------------------
	env.AddFunction("centroid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		points, err := toVec2List(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("centroid: %w", err)
		}
		c := geom.Centroid(points)
		result.Queries = append(result.Queries, QueryResult{
			Op:    "centroid",
			Point: &c,
		})
		return &sexpVec2{v: c}, nil
	})

	// -----------------------------------------------------------------------
	// (bounding-aabb (vec2 0 0) (vec2 4 0) (vec2 2 3))
	// -----------------------------------------------------------------------
	env.AddFunction("bounding_aabb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		points, err := toVec2List(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bounding-aabb: %w", err)
		}
		box := geom.BoundingAABB(points)
		result.Queries = append(result.Queries, QueryResult{
			Op:  "bounding-aabb",
			Box: &box,
		})
		return &sexpBox{b: box}, nil
	})

	// -----------------------------------------------------------------------
	// (vertices "box1")  ; render vertices of a shape
	// -----------------------------------------------------------------------
	env.AddFunction("vertices", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("vertices requires a shape argument")
		}
		obj, err := toObject(sc, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertices: %w", err)
		}
		buf := make([]geom.Vector2, obj.Shape.VertexCount())
		n, err := obj.Shape.Vertices(buf)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertices: %w", err)
		}
		return &sexpPointList{pts: buf[:n]}, nil
	})
}
