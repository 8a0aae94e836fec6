// makebmf writes a small valid BMF file (a tetrahedron) for exercising the
// converter end to end without hunting down real sample files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tech2077/bmf2obj/internal/bmf"
)

func main() {
	out := flag.String("out", "sample.bmf", "Output BMF path")
	flag.Parse()

	verts := []bmf.Vertex{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	faces := []bmf.Face{
		{A: 0, B: 1, C: 2},
		{A: 0, B: 3, C: 1},
		{A: 0, B: 2, C: 3},
		{A: 1, B: 3, C: 2},
	}

	doc := &bmf.File{
		Vertices: bmf.VertexBlock{
			Count:    uint32(len(verts)),
			Vertices: verts,
		},
		Group: bmf.Group{
			Faces: bmf.FaceBlock{
				Count: uint32(len(faces)),
				Faces: faces,
			},
		},
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := bmf.Encode(f, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d faces)\n", *out, len(verts), len(faces))
}
