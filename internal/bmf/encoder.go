package bmf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encode writes f back in the wire layout Decode reads. Markers and counts
// are written exactly as stored, not recomputed from slice lengths, so a
// decoded document re-encodes to the original bytes. Used by makebmf and
// by the decoder tests; OBJ → BMF conversion is not a supported path.
func Encode(w io.Writer, f *File) error {
	if err := writeU32(w, f.Header); err != nil {
		return fmt.Errorf("bmf: write file header: %w", err)
	}

	if err := writeU32(w, f.Vertices.Header); err != nil {
		return fmt.Errorf("bmf: write vertices header: %w", err)
	}
	if err := writeU32(w, f.Vertices.Count); err != nil {
		return fmt.Errorf("bmf: write vertices count: %w", err)
	}
	for i, v := range f.Vertices.Vertices {
		if err := writeVertex(w, v); err != nil {
			return fmt.Errorf("bmf: write vertex %d: %w", i, err)
		}
	}
	if err := writeU32(w, f.Vertices.Footer); err != nil {
		return fmt.Errorf("bmf: write vertices footer: %w", err)
	}

	if err := writeU32(w, f.Group.Header); err != nil {
		return fmt.Errorf("bmf: write group header: %w", err)
	}

	if err := writeU32(w, f.Group.Faces.Header); err != nil {
		return fmt.Errorf("bmf: write faces header: %w", err)
	}
	if err := writeU32(w, f.Group.Faces.Count); err != nil {
		return fmt.Errorf("bmf: write faces count: %w", err)
	}
	for i, fc := range f.Group.Faces.Faces {
		if err := writeFace(w, fc); err != nil {
			return fmt.Errorf("bmf: write face %d: %w", i, err)
		}
	}
	if err := writeU32(w, f.Group.Faces.Footer); err != nil {
		return fmt.Errorf("bmf: write faces footer: %w", err)
	}

	if err := writeU32(w, f.Group.Normals.Header); err != nil {
		return fmt.Errorf("bmf: write normals header: %w", err)
	}
	if err := writeU32(w, f.Group.Normals.Count); err != nil {
		return fmt.Errorf("bmf: write normals count: %w", err)
	}
	for i, n := range f.Group.Normals.Normals {
		if err := writeVertex(w, n); err != nil {
			return fmt.Errorf("bmf: write normal %d: %w", i, err)
		}
	}
	if err := writeU32(w, f.Group.Normals.Footer); err != nil {
		return fmt.Errorf("bmf: write normals footer: %w", err)
	}

	if err := writeU32(w, f.Group.Footer); err != nil {
		return fmt.Errorf("bmf: write group footer: %w", err)
	}

	if err := writeU32(w, f.Footer); err != nil {
		return fmt.Errorf("bmf: write file footer: %w", err)
	}

	return nil
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeVertex(w io.Writer, v Vertex) error {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Z))
	_, err := w.Write(buf[:])
	return err
}

func writeFace(w io.Writer, f Face) error {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], f.A)
	binary.LittleEndian.PutUint32(buf[4:8], f.B)
	binary.LittleEndian.PutUint32(buf[8:12], f.C)
	_, err := w.Write(buf[:])
	return err
}
