// Package convert maps a decoded BMF document onto the OBJ object graph.
package convert

import (
	"github.com/tech2077/bmf2obj/internal/bmf"
	"github.com/tech2077/bmf2obj/internal/obj"
)

// ToObjSet builds the OBJ document for a decoded BMF file: one unnamed
// object, one material-less geometry. Vertex coordinates widen from
// float32 to float64 unchanged. Face indices pass through as decoded
// (assumed 0-based; the writer adds OBJ's +1). Decoded normals are
// dropped rather than trusted, and no texture coordinates exist in BMF,
// so face corners carry vertex references only. This transform is total:
// out-of-range indices and degenerate triangles map through untouched.
func ToObjSet(f *bmf.File) *obj.ObjSet {
	verts := make([]obj.Vertex, len(f.Vertices.Vertices))
	for i, v := range f.Vertices.Vertices {
		verts[i] = obj.Vertex{
			X: float64(v.X),
			Y: float64(v.Y),
			Z: float64(v.Z),
		}
	}

	tris := make([]obj.Triangle, len(f.Group.Faces.Faces))
	for i, fc := range f.Group.Faces.Faces {
		tris[i] = obj.Triangle{
			obj.Index{Vertex: fc.A},
			obj.Index{Vertex: fc.B},
			obj.Index{Vertex: fc.C},
		}
	}

	return &obj.ObjSet{
		Objects: []obj.Object{{
			Vertices: verts,
			Geometry: []obj.Geometry{{Triangles: tris}},
		}},
	}
}
