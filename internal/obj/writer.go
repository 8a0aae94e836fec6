package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write serializes set as OBJ text. Floats use the shortest representation
// that round-trips, so float32-sourced coordinates survive exactly. Graph
// indices are converted to OBJ's 1-based numbering here and nowhere else.
func Write(w io.Writer, set *ObjSet) error {
	bw := bufio.NewWriter(w)

	if set.MaterialLibrary != "" {
		fmt.Fprintf(bw, "mtllib %s\n", set.MaterialLibrary)
	}

	for _, o := range set.Objects {
		if o.Name != "" {
			fmt.Fprintf(bw, "o %s\n", o.Name)
		}
		for _, v := range o.Vertices {
			fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
		}
		for _, t := range o.TexVertices {
			fmt.Fprintf(bw, "vt %s %s\n", ftoa(t.U), ftoa(t.V))
		}
		for _, n := range o.Normals {
			fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n.X), ftoa(n.Y), ftoa(n.Z))
		}
		for _, g := range o.Geometry {
			if g.Material != "" {
				fmt.Fprintf(bw, "usemtl %s\n", g.Material)
			}
			for _, tri := range g.Triangles {
				bw.WriteString("f")
				for _, idx := range tri {
					bw.WriteByte(' ')
					bw.WriteString(refString(idx))
				}
				bw.WriteByte('\n')
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: write: %w", err)
	}
	return nil
}

// ExportFile writes set to path, creating or truncating the file.
func ExportFile(path string, set *ObjSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, set); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("obj: close %s: %w", path, err)
	}
	return nil
}

// refString renders one face corner: v, v/t, v//n, or v/t/n.
func refString(idx Index) string {
	s := strconv.FormatUint(uint64(idx.Vertex)+1, 10)
	switch {
	case idx.Texture != nil && idx.Normal != nil:
		s += "/" + strconv.FormatUint(uint64(*idx.Texture)+1, 10)
		s += "/" + strconv.FormatUint(uint64(*idx.Normal)+1, 10)
	case idx.Texture != nil:
		s += "/" + strconv.FormatUint(uint64(*idx.Texture)+1, 10)
	case idx.Normal != nil:
		s += "//" + strconv.FormatUint(uint64(*idx.Normal)+1, 10)
	}
	return s
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
