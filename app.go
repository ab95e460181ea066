package main

import (
	"log"

	"github.com/chazu/planar/pkg/engine"
	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
	"github.com/chazu/planar/pkg/solid"
	"github.com/chazu/planar/pkg/solid/sdfx"
)

// App is the binding layer between a frontend (CLI, editor) and the
// geometry engine. It exposes evaluation and extrusion as JSON-shaped
// results.
type App struct {
	engine     *engine.Engine
	solidifier solid.Solidifier

	lastScene *scene.Scene
}

// ShapeData is the JSON-serializable form of one scene object, with the
// render vertices already expanded.
type ShapeData struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Vertices []geom.Vector2 `json:"vertices"`
	Radius   float64        `json:"radius,omitempty"` // circles only
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating a source program.
type EvalResult struct {
	Shapes   []ShapeData          `json:"shapes"`
	Queries  []engine.QueryResult `json:"queries"`
	Errors   []EvalErrorData      `json:"errors"`
	Warnings []EvalErrorData      `json:"warnings"`
}

// NewApp creates a new App with an engine and the sdfx solidifier.
func NewApp() *App {
	return &App{
		engine:     engine.NewEngine(),
		solidifier: sdfx.New(),
	}
}

// Evaluate takes Lisp source and returns shape data, query results and
// any errors or validation warnings.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Shapes:   []ShapeData{},
		Queries:  []engine.QueryResult{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: evaluate the Lisp source into a scene + queries.
	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	a.lastScene = res.Scene
	result.Queries = append(result.Queries, res.Queries...)

	// Step 2: validate the scene; findings are reported, not fatal.
	vr := scene.ValidateAll(res.Scene)
	for _, e := range vr.Errors {
		result.Errors = append(result.Errors, EvalErrorData{Message: e.Error()})
	}
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Message})
	}

	// Step 3: expand each object into render vertices.
	for _, obj := range res.Scene.Objects() {
		buf := make([]geom.Vector2, obj.Shape.VertexCount())
		n, err := obj.Shape.Vertices(buf)
		if err != nil {
			result.Errors = append(result.Errors, EvalErrorData{
				Message: obj.Name + ": " + err.Error(),
			})
			continue
		}
		sd := ShapeData{
			Name:     obj.Name,
			Kind:     obj.Shape.Kind.String(),
			Vertices: buf[:n],
		}
		if obj.Shape.Kind.String() == "circle" {
			sd.Radius = obj.Shape.Circle.Radius
		}
		result.Shapes = append(result.Shapes, sd)
	}

	return result
}

// Extrude lifts a named shape from the last evaluated scene into a solid
// of the given height and tessellates it.
func (a *App) Extrude(name string, height float64) (*solid.Mesh, error) {
	if a.lastScene == nil {
		return nil, errNoScene
	}
	obj := a.lastScene.Lookup(name)
	if obj == nil {
		return nil, errNoShape(name)
	}
	s, err := a.solidifier.Extrude(obj.Shape, height)
	if err != nil {
		return nil, err
	}
	mesh, err := a.solidifier.ToMesh(s)
	if err != nil {
		return nil, err
	}
	mesh.Name = obj.Name
	return mesh, nil
}
