// Package scene manages named shape objects around the geometry kernel:
// an ordered registry with name lookup, a selection cursor for interactive
// use, and tiered validation of caller-supplied shape data. The kernel in
// pkg/geom trusts its input contracts; this layer is where violations are
// surfaced ahead of time.
package scene

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/shape"
)

// Object is a named shape in a scene.
type Object struct {
	Name  string       `json:"name"`
	Shape *shape.Shape `json:"shape"`
}

// Scene is an ordered collection of named shapes with a selection cursor.
// Scenes are not safe for concurrent mutation; callers serialize access.
type Scene struct {
	objects  []*Object
	names    map[string]int // name -> index in objects
	selected int            // index of the selected object, -1 when none
}

// New creates an empty scene with nothing selected.
func New() *Scene {
	return &Scene{
		names:    make(map[string]int),
		selected: -1,
	}
}

// Add appends a named shape. Names must be unique within the scene.
func (sc *Scene) Add(name string, s *shape.Shape) (*Object, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: object name must not be empty")
	}
	if _, exists := sc.names[name]; exists {
		return nil, fmt.Errorf("scene: object name %q already in use", name)
	}
	obj := &Object{Name: name, Shape: s}
	sc.names[name] = len(sc.objects)
	sc.objects = append(sc.objects, obj)
	return obj, nil
}

// Lookup returns the object with the given name, or nil.
func (sc *Scene) Lookup(name string) *Object {
	i, ok := sc.names[name]
	if !ok {
		return nil
	}
	return sc.objects[i]
}

// At returns the object at the given insertion index, or nil when out of
// range.
func (sc *Scene) At(index int) *Object {
	if index < 0 || index >= len(sc.objects) {
		return nil
	}
	return sc.objects[index]
}

// Len returns the number of objects in the scene.
func (sc *Scene) Len() int {
	return len(sc.objects)
}

// Objects returns the objects in insertion order. The slice is shared;
// callers must not reorder it.
func (sc *Scene) Objects() []*Object {
	return sc.objects
}

// Select moves the selection cursor. An out-of-range index is an error and
// leaves the selection unchanged.
func (sc *Scene) Select(index int) error {
	if index < 0 || index >= len(sc.objects) {
		return fmt.Errorf("scene: selection index %d out of range [0,%d)", index, len(sc.objects))
	}
	sc.selected = index
	return nil
}

// Deselect clears the selection cursor.
func (sc *Scene) Deselect() {
	sc.selected = -1
}

// Selected returns the currently selected object, or nil.
func (sc *Scene) Selected() *Object {
	return sc.At(sc.selected)
}

// TranslateSelected applies a per-frame translate delta to the selection.
// A no-op when nothing is selected.
func (sc *Scene) TranslateSelected(delta geom.Vector2) {
	if obj := sc.Selected(); obj != nil {
		obj.Shape.Translate(delta)
	}
}

// RotateSelected applies a per-frame rotate delta to the selection.
// A no-op when nothing is selected.
func (sc *Scene) RotateSelected(radians float64) {
	if obj := sc.Selected(); obj != nil {
		obj.Shape.Rotate(radians)
	}
}
