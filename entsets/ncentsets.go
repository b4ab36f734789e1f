package entsets

import (
	"go.uber.org/zap"

	"github.com/topomesh/topomesh/table"
)

// entitySizes is the fixed tuple width per kind in a flattened set:
// one vertex index, two edge endpoints, four face corners, one element.
var entitySizes = [numEntityTypes]int{1, 2, 4, 1}

// NCEntitySets is the read-side flattening of an EntitySets for a
// non-conforming mesh representation: every group is expanded down to
// raw fixed-width vertex-index tuples, so the consumer needs no
// adjacency tables of its own. Triangular faces pad their fourth slot
// with -1. It carries no refinement logic.
type NCEntitySets struct {
	sets   [numEntityTypes][][]int
	names  [numEntityTypes][]string
	byName [numEntityTypes]map[string]int

	log *zap.Logger
}

// NewNCEntitySets flattens src. Quadrilateral face tuples are
// normalized so that vertex 0 connects to vertices 1 and 3 via an edge,
// as reported by edges; when the stored order disagrees, vertex 1 or 3
// is swapped with vertex 2. The face-vertex table does not record the
// corners' topological order, and the refined-face search depends on
// that invariant.
//
// The flattening reads src's owned edge-vertex and face-vertex tables,
// so src must have been synchronized via CopyMeshTables (Load does this
// already). The source's logger is inherited.
func NewNCEntitySets(src *EntitySets, edges EdgeFinder) *NCEntitySets {
	nc := &NCEntitySets{log: src.log}
	nc.log.Debug("flattening entity sets")

	nc.copyDirect(src, Vertex)
	nc.flattenEdges(src)
	nc.flattenFaces(src, edges)
	nc.copyDirect(src, Element)

	nc.log.Debug("entity sets flattened",
		zap.Int("vertexSets", nc.NumSets(Vertex)),
		zap.Int("edgeSets", nc.NumSets(Edge)),
		zap.Int("faceSets", nc.NumSets(Face)),
		zap.Int("elementSets", nc.NumSets(Element)))
	return nc
}

// initKind sizes kind t for ns groups and registers names from src.
func (nc *NCEntitySets) initKind(src *EntitySets, t EntityType) int {
	ns := src.NumSets(t)
	nc.sets[t] = make([][]int, ns)
	nc.names[t] = make([]string, ns)
	nc.byName[t] = make(map[string]int, ns)
	for s := 0; s < ns; s++ {
		name := src.SetName(t, s)
		nc.names[t][s] = name
		nc.byName[t][name] = s
	}
	return ns
}

// copyDirect flattens a width-one kind (vertices, elements).
func (nc *NCEntitySets) copyDirect(src *EntitySets, t EntityType) {
	ns := nc.initKind(src, t)
	for s := 0; s < ns; s++ {
		nc.sets[t][s] = append([]int(nil), src.sets[t][s]...)
	}
}

// flattenEdges expands each edge index to its two endpoint vertices.
func (nc *NCEntitySets) flattenEdges(src *EntitySets) {
	ns := nc.initKind(src, Edge)
	for s := 0; s < ns; s++ {
		group := src.sets[Edge][s]
		flat := make([]int, 2*len(group))
		for i, edge := range group {
			v := src.edgeVertex.Row(edge)
			flat[2*i+0] = v[0]
			flat[2*i+1] = v[1]
		}
		nc.sets[Edge][s] = flat
	}
}

// flattenFaces expands each face index to a four-vertex tuple and
// restores the corner-order invariant for quadrilaterals.
func (nc *NCEntitySets) flattenFaces(src *EntitySets, edges EdgeFinder) {
	ns := nc.initKind(src, Face)
	for s := 0; s < ns; s++ {
		group := src.sets[Face][s]
		flat := make([]int, 4*len(group))
		for i, face := range group {
			v := src.faceVertex.Row(face)
			flat[4*i+0] = v[0]
			flat[4*i+1] = v[1]
			flat[4*i+2] = v[2]
			if len(v) > 3 {
				flat[4*i+3] = v[3]
				if edges.FindEdge(v[0], v[1]) < 0 {
					flat[4*i+1], flat[4*i+2] = flat[4*i+2], flat[4*i+1]
				} else if edges.FindEdge(v[0], v[3]) < 0 {
					flat[4*i+3], flat[4*i+2] = flat[4*i+2], flat[4*i+3]
				}
			} else {
				flat[4*i+3] = -1
			}
		}
		nc.sets[Face][s] = flat
	}
}

// NumSets returns the number of kind-t groups.
func (nc *NCEntitySets) NumSets(t EntityType) int {
	checkType("NumSets", t)
	return len(nc.sets[t])
}

// EntitySize returns the tuple width of kind t.
func (nc *NCEntitySets) EntitySize(t EntityType) int {
	checkType("EntitySize", t)
	return entitySizes[t]
}

// SetName returns the name of group s of kind t.
func (nc *NCEntitySets) SetName(t EntityType, s int) string {
	checkType("SetName", t)
	return nc.names[t][s]
}

// SetIndex returns the ordinal of the kind-t group called name; an
// unknown name is a fatal lookup error.
func (nc *NCEntitySets) SetIndex(t EntityType, name string) int {
	checkType("SetIndex", t)
	s, ok := nc.byName[t][name]
	if !ok {
		table.Fatalf("NCEntitySets", "SetIndex", "unknown set name "+name, int(t))
	}
	return s
}

// NumEntities returns the number of tuples in group s of kind t.
func (nc *NCEntitySets) NumEntities(t EntityType, s int) int {
	checkType("NumEntities", t)
	return len(nc.sets[t][s]) / entitySizes[t]
}

// NumEntitiesByName is NumEntities addressed by group name.
func (nc *NCEntitySets) NumEntitiesByName(t EntityType, name string) int {
	return nc.NumEntities(t, nc.SetIndex(t, name))
}

// EntityIndex returns tuple i of group s of kind t as a fresh slice of
// EntitySize(t) vertex indices.
func (nc *NCEntitySets) EntityIndex(t EntityType, s, i int) []int {
	checkType("EntityIndex", t)
	size := entitySizes[t]
	out := make([]int, size)
	copy(out, nc.sets[t][s][size*i:size*(i+1)])
	return out
}

// EntityIndexByName is EntityIndex addressed by group name.
func (nc *NCEntitySets) EntityIndexByName(t EntityType, name string, i int) []int {
	return nc.EntityIndex(t, nc.SetIndex(t, name), i)
}

// NewFromNCMesh rebuilds conforming entity sets from a non-conforming
// mesh: each flattened tuple in the NC mesh's sets is expanded through
// the mesh's refined-entity queries, so a group follows every
// descendant of the coarse entities it named.
func NewFromNCMesh(mesh Mesh, ncmesh NCMesh, opts ...Option) *EntitySets {
	es := New(mesh, opts...)
	src := ncmesh.EntitySets()

	for t := Vertex; t <= Element; t++ {
		ns := src.NumSets(t)
		es.sets[t] = make([][]int, ns)
		es.names[t] = make([]string, ns)
		es.byName[t] = make(map[string]int, ns)

		for s := 0; s < ns; s++ {
			name := src.SetName(t, s)
			es.names[t][s] = name
			es.byName[t][name] = s

			ni := src.NumEntities(t, s)
			var group []int
			switch t {
			case Vertex:
				group = make([]int, ni)
				for i := 0; i < ni; i++ {
					group[i] = src.EntityIndex(t, s, i)[0]
				}
			case Edge:
				for i := 0; i < ni; i++ {
					tup := src.EntityIndex(t, s, i)
					group = append(group, ncmesh.RefinedEdges(tup[0], tup[1])...)
				}
			case Face:
				for i := 0; i < ni; i++ {
					tup := src.EntityIndex(t, s, i)
					group = append(group, ncmesh.RefinedFaces(tup[0], tup[1], tup[2], tup[3])...)
				}
			case Element:
				for i := 0; i < ni; i++ {
					group = append(group, ncmesh.RefinedElements(src.EntityIndex(t, s, i)[0])...)
				}
			}
			es.sets[t][s] = group
		}
	}
	return es
}
