package entsets

import (
	"github.com/topomesh/topomesh/table"
)

// Mesh is the narrow read surface an EntitySets needs from the owning
// mesh. All methods describe the mesh's current refinement generation.
//
// The three *Table methods are a one-time ownership handoff: each call
// builds or releases a table that the caller then owns exclusively; the
// mesh keeps no reference. EntitySets re-acquires them through
// CopyMeshTables after every refinement, since refinement invalidates
// the previous generation's tables.
type Mesh interface {
	// Dimension returns the spatial dimension (1, 2 or 3).
	Dimension() int
	// NumVertices returns the current vertex count.
	NumVertices() int
	// NumEdges returns the current edge count.
	NumEdges() int
	// NumElements returns the current element count.
	NumElements() int

	// EdgeVertexTable hands off the edge→vertex adjacency (two vertices
	// per row).
	EdgeVertexTable() *table.Table
	// FaceVertexTable hands off the face→vertex adjacency (three or
	// four vertices per row).
	FaceVertexTable() *table.Table
	// FaceEdgeTable hands off the face→edge adjacency.
	FaceEdgeTable() *table.Table

	// VertexToVertexTable returns the fully populated vertex-pair→edge
	// index for the current generation.
	VertexToVertexTable() *table.DSTable
	// FacesTable returns the face lookup keyed by corner vertices for
	// the current generation.
	FacesTable() FaceIndex
}

// FaceIndex resolves a face from its corner vertices, in any vertex
// order. Lookups return table.Unset when no such face is registered.
type FaceIndex interface {
	// IndexTri returns the index of the triangle {v0, v1, v2}.
	IndexTri(v0, v1, v2 int) int
	// IndexQuad returns the index of the quadrilateral {v0, v1, v2, v3}.
	IndexQuad(v0, v1, v2, v3 int) int
}

// EdgeFinder reports whether two vertices are joined by an edge.
// FindEdge returns the edge's identifier, or a negative value when the
// vertices are not connected. NCEntitySets uses it to recover the
// topological order of quadrilateral face corners.
type EdgeFinder interface {
	FindEdge(v0, v1 int) int
}

// NCMesh is the read surface of a non-conforming mesh: the flattened
// entity sets it was built with, plus the expansion of each coarse
// entity into its current refined descendants.
type NCMesh interface {
	// EntitySets returns the flattened sets the NC mesh carries.
	EntitySets() *NCEntitySets
	// RefinedEdges returns the current edge indices covering the coarse
	// edge with endpoints v0, v1.
	RefinedEdges(v0, v1 int) []int
	// RefinedFaces returns the current face indices covering the coarse
	// face with corners v0..v3 (v3 negative for a triangle).
	RefinedFaces(v0, v1, v2, v3 int) []int
	// RefinedElements returns the current element indices descending
	// from coarse element e.
	RefinedElements(e int) []int
}
