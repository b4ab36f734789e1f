package entsets

import (
	"go.uber.org/zap"
)

// Refinement propagation. Each structured refinement pass replaces
// every stored group in place using index arithmetic over the previous
// generation's cached counts — nothing is recomputed from geometry:
//
//   - A bisected edge e gains a midpoint vertex numbered NV + e, where
//     NV is the previous vertex count; its two halves are resolved
//     through the new generation's vertex-pair table.
//   - A refined quadrilateral face splits into four children found by
//     probing the new face lookup with corner/mid-edge/mid-face vertex
//     quadruples. Face vertex order is not topologically consistent, so
//     the probe tries rotations instead of a closed-form map.
//   - A refined element e spawns children at NE + (k-1)*e, where k is
//     the branching factor (4 for quad, 8 for hex); the parent's slot
//     is reused for the first child.
//
// Every pass ends with CopyMeshTables: the arithmetic is only valid
// against the counts of the generation the groups were last
// synchronized to, so the call order is part of the contract.

// Branching factors of the two structured refinements.
const (
	quadChildren = 4
	hexChildren  = 8
)

// QuadUniformRefinement rewrites all groups after a uniform quad (2D)
// refinement of the mesh. Vertex groups are unchanged; face groups do
// not exist in 2D.
func (es *EntitySets) QuadUniformRefinement() {
	es.log.Debug("propagating quad refinement",
		zap.Int("edgeSets", es.NumSets(Edge)),
		zap.Int("elementSets", es.NumSets(Element)))

	es.refineEdgeSets()
	es.refineElementSets(quadChildren)
	es.CopyMeshTables()
}

// HexUniformRefinement rewrites all groups after a uniform hex (3D)
// refinement of the mesh. Vertex groups are unchanged.
func (es *EntitySets) HexUniformRefinement() {
	es.log.Debug("propagating hex refinement",
		zap.Int("edgeSets", es.NumSets(Edge)),
		zap.Int("faceSets", es.NumSets(Face)),
		zap.Int("elementSets", es.NumSets(Element)))

	es.refineEdgeSets()
	es.refineFaceSets()
	es.refineElementSets(hexChildren)
	es.CopyMeshTables()
}

// refineEdgeSets replaces each edge with its two halves: the midpoint
// of old edge e is vertex NV + e, and the halves are the pairs
// (v0, mid) and (v1, mid) in the new generation's vertex-pair table.
// The group doubles; the first half keeps the original order.
func (es *EntitySets) refineEdgeSets() {
	if es.NumSets(Edge) == 0 {
		return
	}
	vtov := es.mesh.VertexToVertexTable()
	mid := es.numVertices

	for s, group := range es.sets[Edge] {
		n := len(group)
		next := make([]int, 2*n)
		for i, e := range group {
			v := es.edgeVertex.Row(e)
			next[i] = vtov.Pair(v[0], mid+e)
			next[i+n] = vtov.Pair(v[1], mid+e)
		}
		es.sets[Edge][s] = next
	}
}

// refineFaceSets replaces each quadrilateral face with its four
// children. A child is identified by one original corner, two mid-edge
// vertices and the mid-face vertex; which two edges flank a given
// corner is unknown, so candidate quadruples are probed against the new
// generation's face lookup until one is registered. An exhausted probe
// leaves -1, the stale marker Print reports as bad_face.
func (es *EntitySets) refineFaceSets() {
	if es.NumSets(Face) == 0 {
		return
	}
	faces := es.mesh.FacesTable()
	midEdge := es.numVertices
	midFace := es.numVertices + es.numEdges

	for s, group := range es.sets[Face] {
		n := len(group)
		next := make([]int, quadChildren*n)
		copy(next, group)
		for i, f := range group {
			v := es.faceVertex.Row(f)
			e := es.faceEdge.Row(f)

			for j := 0; j < 4; j++ {
				v0 := v[j]
				v3 := midFace + f
				child := -1
				for k := 0; k < 4 && child < 0; k++ {
					v1 := midEdge + e[k]
					for l := 1; l < 4; l++ {
						v2 := midEdge + e[(k+l)%4]
						if nf := faces.IndexQuad(v0, v1, v2, v3); nf >= 0 {
							child = nf
							break
						}
					}
				}
				if j == 0 {
					next[i] = child
				} else {
					next[n+3*i+j-1] = child
				}
			}
		}
		es.sets[Face][s] = next
	}
}

// refineElementSets grows each group by the branching factor: parent e
// keeps its slot as child zero, and the remaining children occupy
// NE + (children-1)*e onward.
func (es *EntitySets) refineElementSets(children int) {
	for s, group := range es.sets[Element] {
		n := len(group)
		next := make([]int, children*n)
		copy(next, group)
		for i, e := range group {
			base := es.numElements + (children-1)*e
			for c := 0; c < children-1; c++ {
				next[n+(children-1)*i+c] = base + c
			}
		}
		es.sets[Element][s] = next
	}
}
