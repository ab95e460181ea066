package scene

import (
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/shape"
)

// ValidationSeverity indicates whether a finding blocks use of the scene
// or is merely advisory.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks use
	SeverityWarning                           // advisory
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Name     string // object with the problem, empty if scene-level
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] object %q: %s", e.Severity, e.Name, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Name    string
	Message string
}

// ValidationResult bundles errors and warnings from all tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs the Tier 1 structural checks: payload data that the kernel
// would silently misbehave on. Read-only; never mutates the scene.
func Validate(sc *Scene) []ValidationError {
	var errs []ValidationError
	for _, obj := range sc.Objects() {
		errs = append(errs, validateObject(obj)...)
	}
	return errs
}

// ValidateAll runs the structural tier plus the advisory geometric tier
// and returns the findings separated by severity.
func ValidateAll(sc *Scene) ValidationResult {
	var result ValidationResult
	result.Errors = Validate(sc)
	for _, obj := range sc.Objects() {
		result.Warnings = append(result.Warnings, validateGeometry(obj)...)
	}
	return result
}

// validateObject checks one object's payload against the kernel's
// documented invariants.
func validateObject(obj *Object) []ValidationError {
	var errs []ValidationError
	s := obj.Shape
	if s == nil {
		return []ValidationError{{
			Name:     obj.Name,
			Message:  "object has no shape payload",
			Severity: SeverityError,
		}}
	}

	switch s.Kind {
	case shape.KindAABB:
		if s.Box.Min.X > s.Box.Max.X || s.Box.Min.Y > s.Box.Max.Y {
			errs = append(errs, ValidationError{
				Name:     obj.Name,
				Message:  fmt.Sprintf("inverted AABB: min (%g,%g) exceeds max (%g,%g)", s.Box.Min.X, s.Box.Min.Y, s.Box.Max.X, s.Box.Max.Y),
				Severity: SeverityError,
			})
		}
	case shape.KindCircle:
		if s.Circle.Radius < 0 {
			errs = append(errs, ValidationError{
				Name:     obj.Name,
				Message:  fmt.Sprintf("circle radius is %g, must be >= 0", s.Circle.Radius),
				Severity: SeverityError,
			})
		}
	case shape.KindPolygon:
		if len(s.Polygon.Vertices) < 3 {
			errs = append(errs, ValidationError{
				Name:     obj.Name,
				Message:  fmt.Sprintf("polygon has %d vertices, need at least 3", len(s.Polygon.Vertices)),
				Severity: SeverityError,
			})
		}
	default:
		errs = append(errs, ValidationError{
			Name:     obj.Name,
			Message:  fmt.Sprintf("unknown shape kind %d", s.Kind),
			Severity: SeverityError,
		})
	}
	return errs
}

// validateGeometry emits advisory warnings for polygon data that the
// kernel accepts but whose intersection results would be undefined:
// counter-clockwise winding, concavity, zero area, and zero-radius
// circles.
func validateGeometry(obj *Object) []ValidationWarning {
	var warnings []ValidationWarning
	s := obj.Shape
	if s == nil {
		return nil
	}

	switch s.Kind {
	case shape.KindCircle:
		if s.Circle.Radius == 0 {
			warnings = append(warnings, ValidationWarning{
				Name:    obj.Name,
				Message: "circle has zero radius; it behaves as a point in all predicates",
			})
		}

	case shape.KindPolygon:
		verts := s.Polygon.Vertices
		if len(verts) < 3 {
			return warnings // already a Tier 1 error
		}
		area := signedArea(verts)
		if math.Abs(area) == 0 {
			warnings = append(warnings, ValidationWarning{
				Name:    obj.Name,
				Message: "polygon has zero area; containment and intersection results are undefined",
			})
		} else if area > 0 {
			// Shoelace sum is positive for counter-clockwise winding.
			warnings = append(warnings, ValidationWarning{
				Name:    obj.Name,
				Message: "polygon is wound counter-clockwise; the kernel requires clockwise winding",
			})
		}
		if !isConvex(verts) {
			warnings = append(warnings, ValidationWarning{
				Name:    obj.Name,
				Message: "polygon is not convex; intersection results are undefined",
			})
		}
	}
	return warnings
}

// signedArea returns twice the shoelace area of the polygon, positive for
// counter-clockwise winding.
func signedArea(verts []geom.Vector2) float64 {
	var sum float64
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		sum += a.Cross(b)
	}
	return sum
}

// isConvex reports whether every turn between consecutive edges has a
// consistent sign. Collinear runs are tolerated.
func isConvex(verts []geom.Vector2) bool {
	if len(verts) < 4 {
		return true
	}
	sign := 0
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		c := verts[(i+2)%len(verts)]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		turn := 1
		if cross < 0 {
			turn = -1
		}
		if sign == 0 {
			sign = turn
		} else if sign != turn {
			return false
		}
	}
	return true
}
