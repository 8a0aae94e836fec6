// Package obj holds a minimal Wavefront OBJ object graph and its text
// serializer. The graph stores vertex references with the index base the
// producer used (0-based for BMF conversions); the writer applies OBJ's
// 1-based numbering at serialization time.
package obj

// Vertex is a geometric vertex or normal direction in OBJ precision.
type Vertex struct {
	X, Y, Z float64
}

// TexVertex is a texture coordinate.
type TexVertex struct {
	U, V float64
}

// Index references one corner of a primitive. Texture and Normal are nil
// when the corner carries no vt/vn reference.
type Index struct {
	Vertex  uint32
	Texture *uint32
	Normal  *uint32
}

// Triangle is a three-corner face primitive.
type Triangle [3]Index

// Geometry is one run of faces sharing a material (empty = no usemtl line).
type Geometry struct {
	Material  string
	Triangles []Triangle
}

// Object is one named mesh (empty name = no o line).
type Object struct {
	Name        string
	Vertices    []Vertex
	TexVertices []TexVertex
	Normals     []Vertex
	Geometry    []Geometry
}

// ObjSet is a whole OBJ document: optional material library plus objects.
type ObjSet struct {
	MaterialLibrary string
	Objects         []Object
}
