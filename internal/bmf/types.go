package bmf

// Vertex is a 3D point or normal direction as stored on the wire.
type Vertex struct {
	X, Y, Z float32
}

// Face is a triangle referencing three vertex indices. The index base
// (0 or 1) is whatever the source file used; nothing here adjusts it.
type Face struct {
	A, B, C uint32
}

// VertexBlock holds the mesh's point cloud plus its raw block markers.
// Header and Footer are opaque: captured from the stream, never checked.
type VertexBlock struct {
	Header   uint32
	Count    uint32
	Vertices []Vertex
	Footer   uint32
}

// FaceBlock holds triangle connectivity plus its raw block markers.
type FaceBlock struct {
	Header uint32
	Count  uint32
	Faces  []Face
	Footer uint32
}

// NormalBlock holds per-entry normal directions plus its raw block markers.
// Normals are parsed for completeness but dropped by the OBJ mapper.
type NormalBlock struct {
	Header  uint32
	Count   uint32
	Normals []Vertex
	Footer  uint32
}

// Group is the single faces+normals collection a BMF file contains.
// The format has no provision for more than one.
type Group struct {
	Header  uint32
	Faces   FaceBlock
	Normals NormalBlock
	Footer  uint32
}

// File is a fully decoded BMF document: one vertex block, one group,
// and the document-level markers.
type File struct {
	Header   uint32
	Vertices VertexBlock
	Group    Group
	Footer   uint32
}
