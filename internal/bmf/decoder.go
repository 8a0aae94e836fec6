package bmf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Decode reads one BMF document from r. The format is a rigid nested
// layout, all fields 32-bit little-endian:
//
//	BMF Header u32
//	    Vertices Header u32
//	        Vertices Count u32
//	        Vertices Data (Count * 3 * f32)
//	    Vertices Footer u32
//
//	    Group Header u32
//	        Faces Header u32
//	            Faces Count u32
//	            Faces Data (Count * 3 * u32)
//	        Faces Footer u32
//
//	        Normals Header u32
//	            Normals Count u32
//	            Normals Data (Count * 3 * f32)
//	        Normals Footer u32
//	    Group Footer u32
//	BMF Footer u32
//
// Files in the wild only ever show this single-group shape, as documented
// on http://paulbourke.net/dataformats/bmf_2/. Headers and footers are
// captured verbatim and never checked against a magic value; the only
// failure mode is the stream ending before a read completes, which aborts
// the decode with no partial result.
func Decode(r io.Reader) (*File, error) {
	var f File
	var err error

	if f.Header, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read file header: %w", err)
	}

	if f.Vertices.Header, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read vertices header: %w", err)
	}
	if f.Vertices.Count, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read vertices count: %w", err)
	}
	for i := uint32(0); i < f.Vertices.Count; i++ {
		v, err := readVertex(r)
		if err != nil {
			return nil, fmt.Errorf("bmf: read vertex %d/%d: %w", i, f.Vertices.Count, err)
		}
		f.Vertices.Vertices = append(f.Vertices.Vertices, v)
	}
	if f.Vertices.Footer, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read vertices footer: %w", err)
	}

	if f.Group.Header, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read group header: %w", err)
	}

	if f.Group.Faces.Header, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read faces header: %w", err)
	}
	if f.Group.Faces.Count, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read faces count: %w", err)
	}
	for i := uint32(0); i < f.Group.Faces.Count; i++ {
		fc, err := readFace(r)
		if err != nil {
			return nil, fmt.Errorf("bmf: read face %d/%d: %w", i, f.Group.Faces.Count, err)
		}
		f.Group.Faces.Faces = append(f.Group.Faces.Faces, fc)
	}
	if f.Group.Faces.Footer, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read faces footer: %w", err)
	}

	if f.Group.Normals.Header, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read normals header: %w", err)
	}
	if f.Group.Normals.Count, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read normals count: %w", err)
	}
	for i := uint32(0); i < f.Group.Normals.Count; i++ {
		n, err := readVertex(r)
		if err != nil {
			return nil, fmt.Errorf("bmf: read normal %d/%d: %w", i, f.Group.Normals.Count, err)
		}
		f.Group.Normals.Normals = append(f.Group.Normals.Normals, n)
	}
	if f.Group.Normals.Footer, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read normals footer: %w", err)
	}

	if f.Group.Footer, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read group footer: %w", err)
	}

	if f.Footer, err = readU32(r); err != nil {
		return nil, fmt.Errorf("bmf: read file footer: %w", err)
	}

	return &f, nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readVertex reads one 12-byte record of three little-endian float32s.
func readVertex(r io.Reader) (Vertex, error) {
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Vertex{}, err
	}
	return Vertex{
		X: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])),
	}, nil
}

// readFace reads one 12-byte record of three little-endian uint32 indices.
func readFace(r io.Reader) (Face, error) {
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Face{}, err
	}
	return Face{
		A: binary.LittleEndian.Uint32(buf[0:4]),
		B: binary.LittleEndian.Uint32(buf[4:8]),
		C: binary.LittleEndian.Uint32(buf[8:12]),
	}, nil
}
