// Planar is a 2D geometry playground: shapes are built and queried from
// a small Lisp DSL, and the results are emitted as JSON.
//
// Usage:
//
//	planar design.plan
//	planar -extrude box1 -height 10 design.plan
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

var (
	extrudeName = flag.String("extrude", "", "extrude the named shape after evaluation")
	height      = flag.Float64("height", 10, "extrusion height")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: planar [-extrude name [-height h]] <source-file>")
		os.Exit(2)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read source: %v", err)
	}

	app := NewApp()
	result := app.Evaluate(string(source))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}

	if *extrudeName != "" {
		mesh, err := app.Extrude(*extrudeName, *height)
		if err != nil {
			log.Fatalf("extrude %q: %v", *extrudeName, err)
		}
		fmt.Fprintf(os.Stderr, "extruded %q: %d vertices, %d triangles\n",
			mesh.Name, mesh.VertexCount(), mesh.TriangleCount())
	}
}

// errNoScene is returned by App.Extrude before any successful evaluation.
var errNoScene = fmt.Errorf("no scene has been evaluated yet")

// errNoShape reports an unknown shape name passed to App.Extrude.
func errNoShape(name string) error {
	return fmt.Errorf("no shape named %q in the last scene", name)
}
