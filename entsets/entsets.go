package entsets

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/topomesh/topomesh/table"
)

// EntitySets owns the named entity groups of one mesh, per entity kind,
// along with the adjacency tables (edge→vertex, face→vertex, face→edge)
// it needs to interpret and propagate them. Groups stay ordered; within
// one instance a (kind, name) pair is unique.
//
// Vertex, edge, element and (cached) count state tracks the mesh
// generation the sets were last synchronized to; every refinement pass
// ends with CopyMeshTables, which re-acquires the tables and counts
// from the mesh.
//
// All methods are single-threaded: exclusive writer during Load and
// refinement, read-only sharing afterwards.
type EntitySets struct {
	mesh Mesh

	// Owned adjacency tables, nil until first acquired. The mesh hands
	// them off; this instance holds the only reference afterwards.
	edgeVertex *table.Table
	faceVertex *table.Table
	faceEdge   *table.Table

	// Entity counts of the generation the groups currently describe.
	numVertices int
	numEdges    int
	numElements int

	sets   [numEntityTypes][][]int
	names  [numEntityTypes][]string
	byName [numEntityTypes]map[string]int

	log *zap.Logger
}

// Option configures an EntitySets at construction.
type Option func(*EntitySets)

// WithLogger routes debug-level progress logging (loading, refinement,
// flattening) to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(es *EntitySets) {
		if l != nil {
			es.log = l
		}
	}
}

// New returns an empty EntitySets bound to mesh, caching the mesh's
// current entity counts.
func New(mesh Mesh, opts ...Option) *EntitySets {
	es := &EntitySets{
		mesh:        mesh,
		numVertices: mesh.NumVertices(),
		numEdges:    mesh.NumEdges(),
		numElements: mesh.NumElements(),
		log:         zap.NewNop(),
	}
	for t := range es.byName {
		es.byName[t] = make(map[string]int)
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Clone returns a deep copy: groups, names and owned tables are all
// duplicated, and counts are refreshed from the mesh.
func (es *EntitySets) Clone() *EntitySets {
	out := New(es.mesh)
	out.log = es.log
	for t := Vertex; t <= Element; t++ {
		out.copyGroups(es, t)
	}
	if es.edgeVertex != nil {
		out.edgeVertex = es.edgeVertex.Clone()
	}
	if es.faceVertex != nil {
		out.faceVertex = es.faceVertex.Clone()
	}
	if es.faceEdge != nil {
		out.faceEdge = es.faceEdge.Clone()
	}
	return out
}

// copyGroups duplicates the kind-t groups of src into es.
func (es *EntitySets) copyGroups(src *EntitySets, t EntityType) {
	ns := src.NumSets(t)
	es.sets[t] = make([][]int, ns)
	es.names[t] = make([]string, ns)
	es.byName[t] = make(map[string]int, ns)
	for s := 0; s < ns; s++ {
		name := src.SetName(t, s)
		es.names[t][s] = name
		es.byName[t][name] = s
		es.sets[t][s] = append([]int(nil), src.sets[t][s]...)
	}
}

// NumSets returns the number of kind-t groups.
func (es *EntitySets) NumSets(t EntityType) int {
	checkType("NumSets", t)
	return len(es.sets[t])
}

// SetName returns the name of group s of kind t.
func (es *EntitySets) SetName(t EntityType, s int) string {
	checkType("SetName", t)
	return es.names[t][s]
}

// SetIndex returns the ordinal of the kind-t group called name. The
// name is assumed valid; an unknown name is a fatal lookup error.
func (es *EntitySets) SetIndex(t EntityType, name string) int {
	checkType("SetIndex", t)
	s, ok := es.byName[t][name]
	if !ok {
		table.Fatalf("EntitySets", "SetIndex",
			fmt.Sprintf("unknown %s set %q", t, name), int(t))
	}
	return s
}

// NumEntities returns the size of group s of kind t.
func (es *EntitySets) NumEntities(t EntityType, s int) int {
	checkType("NumEntities", t)
	return len(es.sets[t][s])
}

// NumEntitiesByName is NumEntities addressed by group name.
func (es *EntitySets) NumEntitiesByName(t EntityType, name string) int {
	return es.NumEntities(t, es.SetIndex(t, name))
}

// EntityIndex returns entry i of group s of kind t.
func (es *EntitySets) EntityIndex(t EntityType, s, i int) int {
	checkType("EntityIndex", t)
	return es.sets[t][s][i]
}

// EntityIndexByName is EntityIndex addressed by group name.
func (es *EntitySets) EntityIndexByName(t EntityType, name string, i int) int {
	return es.EntityIndex(t, es.SetIndex(t, name), i)
}

// CopyMeshTables re-acquires from the mesh whichever adjacency tables
// the current groups need — edge→vertex when edge groups exist,
// face→vertex and face→edge when face groups exist — and refreshes the
// cached entity counts. Must be called after every mesh refinement,
// which invalidates the previous generation's tables.
func (es *EntitySets) CopyMeshTables() {
	if es.NumSets(Edge) > 0 {
		es.edgeVertex = es.mesh.EdgeVertexTable()
	}
	if es.NumSets(Face) > 0 {
		es.faceVertex = es.mesh.FaceVertexTable()
		es.faceEdge = es.mesh.FaceEdgeTable()
	}
	es.numVertices = es.mesh.NumVertices()
	es.numEdges = es.mesh.NumEdges()
	es.numElements = es.mesh.NumElements()
}

// Load reads an entity-set file. A first line other than the known
// version means the file carries no entity sets: Load returns nil and
// the instance stays valid and empty. Within a recognized file,
// malformed section keywords and unknown face geometry tags are
// unrecoverable parse errors.
//
// Edge entries are given as vertex pairs and resolved through the
// mesh's vertex-pair table; face entries as a geometry tag plus corner
// vertices, resolved through the mesh's face lookup.
func (es *EntitySets) Load(r io.Reader) error {
	sc := newScanner(r)

	version := sc.Line()
	if version != setsFileVersion {
		es.log.Debug("unrecognized entity set header; no sets loaded",
			zap.String("header", version))
		return nil
	}

	sc.SkipComments()
	if ident := sc.Token(); ident != "dimension" {
		return fmt.Errorf("%w: expected %q, got %q", ErrBadHeader, "dimension", ident)
	}
	dim := sc.Int()
	if err := sc.Err(); err != nil {
		return fmt.Errorf("entsets: reading dimension: %w", err)
	}

	if err := es.loadGroups(sc, Vertex, "vertex_sets"); err != nil {
		return err
	}
	if dim > 1 {
		if err := es.loadGroups(sc, Edge, "edge_sets"); err != nil {
			return err
		}
	}
	if dim > 2 {
		if err := es.loadGroups(sc, Face, "face_sets"); err != nil {
			return err
		}
	}
	if err := es.loadGroups(sc, Element, "element_sets"); err != nil {
		return err
	}

	es.log.Debug("entity sets loaded",
		zap.Int("vertexSets", es.NumSets(Vertex)),
		zap.Int("edgeSets", es.NumSets(Edge)),
		zap.Int("faceSets", es.NumSets(Face)),
		zap.Int("elementSets", es.NumSets(Element)))

	es.CopyMeshTables()
	return nil
}

// loadGroups reads one section: its fixed keyword, the group count,
// then each group as a name line, an entity count, and the entities in
// the kind's own encoding.
func (es *EntitySets) loadGroups(sc *scanner, t EntityType, header string) error {
	sc.SkipComments()
	ident := sc.Token()
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading %s header: %v", ErrBadHeader, t, err)
	}
	if ident != header {
		return fmt.Errorf("%w: expected %q, got %q", ErrBadHeader, header, ident)
	}

	numSets := sc.Int()
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading %s set count: %v", ErrBadHeader, t, err)
	}
	es.sets[t] = make([][]int, numSets)
	es.names[t] = make([]string, numSets)
	es.byName[t] = make(map[string]int, numSets)

	var (
		vtov  *table.DSTable
		faces FaceIndex
	)
	if numSets > 0 {
		switch t {
		case Edge:
			vtov = es.mesh.VertexToVertexTable()
		case Face:
			faces = es.mesh.FacesTable()
		}
	}

	for s := 0; s < numSets; s++ {
		name := sc.Line()
		es.names[t][s] = name
		es.byName[t][name] = s

		n := sc.Int()
		group := make([]int, n)
		for i := range group {
			switch t {
			case Vertex, Element:
				group[i] = sc.Int()
			case Edge:
				v0, v1 := sc.Int(), sc.Int()
				group[i] = vtov.Pair(v0, v1)
			case Face:
				switch g := sc.Int(); g {
				case geomTriangle:
					v0, v1, v2 := sc.Int(), sc.Int(), sc.Int()
					group[i] = faces.IndexTri(v0, v1, v2)
				case geomQuadrilateral:
					v0, v1, v2, v3 := sc.Int(), sc.Int(), sc.Int(), sc.Int()
					group[i] = faces.IndexQuad(v0, v1, v2, v3)
				default:
					if err := sc.Err(); err != nil {
						return fmt.Errorf("%w: reading %s set %q: %v", ErrBadHeader, t, name, err)
					}
					return fmt.Errorf("%w: %d", ErrBadGeometry, g)
				}
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%w: reading %s set %q: %v", ErrBadHeader, t, name, err)
		}
		es.sets[t][s] = group
	}
	return nil
}
