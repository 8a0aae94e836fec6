// inspectbmf dumps the structure of BMF files: the marker values the
// converter captures but never checks, the block counts, and the vertex
// bounding box. Useful when deciding whether a file that "converted fine"
// actually contains sane geometry.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/tech2077/bmf2obj/internal/bmf"
	"github.com/tech2077/bmf2obj/internal/source"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspectbmf <file.bmf>...")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		r, err := source.FromFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Open error %s: %v\n", arg, err)
			continue
		}
		doc, err := bmf.Decode(r)
		r.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decode error %s: %v\n", arg, err)
			continue
		}

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("  file:     header=0x%08X footer=0x%08X\n", doc.Header, doc.Footer)
		fmt.Printf("  vertices: header=0x%08X count=%d footer=0x%08X\n",
			doc.Vertices.Header, doc.Vertices.Count, doc.Vertices.Footer)
		fmt.Printf("  group:    header=0x%08X footer=0x%08X\n",
			doc.Group.Header, doc.Group.Footer)
		fmt.Printf("  faces:    header=0x%08X count=%d footer=0x%08X\n",
			doc.Group.Faces.Header, doc.Group.Faces.Count, doc.Group.Faces.Footer)
		fmt.Printf("  normals:  header=0x%08X count=%d footer=0x%08X\n",
			doc.Group.Normals.Header, doc.Group.Normals.Count, doc.Group.Normals.Footer)

		printBounds(doc)
		printIndexRange(doc)
	}
}

func printBounds(doc *bmf.File) {
	if len(doc.Vertices.Vertices) == 0 {
		return
	}
	minV, maxV := doc.Vertices.Vertices[0], doc.Vertices.Vertices[0]
	for _, v := range doc.Vertices.Vertices[1:] {
		minV.X = float32(math.Min(float64(minV.X), float64(v.X)))
		minV.Y = float32(math.Min(float64(minV.Y), float64(v.Y)))
		minV.Z = float32(math.Min(float64(minV.Z), float64(v.Z)))
		maxV.X = float32(math.Max(float64(maxV.X), float64(v.X)))
		maxV.Y = float32(math.Max(float64(maxV.Y), float64(v.Y)))
		maxV.Z = float32(math.Max(float64(maxV.Z), float64(v.Z)))
	}
	fmt.Printf("  bbox:     min=(%g,%g,%g) max=(%g,%g,%g)\n",
		minV.X, minV.Y, minV.Z, maxV.X, maxV.Y, maxV.Z)
}

func printIndexRange(doc *bmf.File) {
	faces := doc.Group.Faces.Faces
	if len(faces) == 0 {
		return
	}
	lo, hi := faces[0].A, faces[0].A
	for _, f := range faces {
		for _, i := range [3]uint32{f.A, f.B, f.C} {
			if i < lo {
				lo = i
			}
			if i > hi {
				hi = i
			}
		}
	}
	note := ""
	if uint64(hi) >= uint64(len(doc.Vertices.Vertices)) {
		note = " [OUT OF RANGE]"
	}
	fmt.Printf("  indices:  %d..%d of %d vertices%s\n",
		lo, hi, len(doc.Vertices.Vertices), note)
}
