package entsets

import (
	"sort"

	"github.com/topomesh/topomesh/table"
)

// buildTable assembles a CSR table from explicit rows via the two-phase
// protocol.
func buildTable(rows [][]int) *table.Table {
	var t table.Table
	t.MakeI(len(rows))
	for r, cols := range rows {
		t.AddColumnsInRow(r, len(cols))
	}
	t.MakeJ()
	for r, cols := range rows {
		t.AddConnections(r, cols)
	}
	t.ShiftUpI()
	return &t
}

// stubFaceIndex resolves faces from sorted corner keys.
type stubFaceIndex struct {
	tri  map[[3]int]int
	quad map[[4]int]int
}

func newStubFaceIndex() *stubFaceIndex {
	return &stubFaceIndex{tri: map[[3]int]int{}, quad: map[[4]int]int{}}
}

func (f *stubFaceIndex) addTri(idx, v0, v1, v2 int) {
	f.tri[triKey(v0, v1, v2)] = idx
}

func (f *stubFaceIndex) addQuad(idx, v0, v1, v2, v3 int) {
	f.quad[quadKey(v0, v1, v2, v3)] = idx
}

func (f *stubFaceIndex) IndexTri(v0, v1, v2 int) int {
	if idx, ok := f.tri[triKey(v0, v1, v2)]; ok {
		return idx
	}
	return table.Unset
}

func (f *stubFaceIndex) IndexQuad(v0, v1, v2, v3 int) int {
	if idx, ok := f.quad[quadKey(v0, v1, v2, v3)]; ok {
		return idx
	}
	return table.Unset
}

func triKey(v0, v1, v2 int) [3]int {
	k := []int{v0, v1, v2}
	sort.Ints(k)
	return [3]int{k[0], k[1], k[2]}
}

func quadKey(v0, v1, v2, v3 int) [4]int {
	k := []int{v0, v1, v2, v3}
	sort.Ints(k)
	return [4]int{k[0], k[1], k[2], k[3]}
}

// stubMesh is a hand-wired Mesh: tests set its fields to whatever
// generation they are simulating. Table methods hand off clones, so
// each call is an independent ownership transfer.
type stubMesh struct {
	dim, nv, ne, nel int

	edgeVertex *table.Table
	faceVertex *table.Table
	faceEdge   *table.Table

	// vtovPairs defines the vertex-pair table; push order assigns the
	// edge indices.
	vtovPairs [][2]int

	faces *stubFaceIndex
}

func (m *stubMesh) Dimension() int   { return m.dim }
func (m *stubMesh) NumVertices() int { return m.nv }
func (m *stubMesh) NumEdges() int    { return m.ne }
func (m *stubMesh) NumElements() int { return m.nel }

func (m *stubMesh) EdgeVertexTable() *table.Table { return m.edgeVertex.Clone() }
func (m *stubMesh) FaceVertexTable() *table.Table { return m.faceVertex.Clone() }
func (m *stubMesh) FaceEdgeTable() *table.Table   { return m.faceEdge.Clone() }

func (m *stubMesh) VertexToVertexTable() *table.DSTable {
	d := table.NewDSTable(m.nv)
	for _, p := range m.vtovPairs {
		d.Pair(p[0], p[1])
	}
	return d
}

func (m *stubMesh) FacesTable() FaceIndex { return m.faces }

// stubEdgeFinder reports edges from an undirected pair set.
type stubEdgeFinder struct {
	edges map[[2]int]int
}

func newStubEdgeFinder(pairs ...[2]int) *stubEdgeFinder {
	f := &stubEdgeFinder{edges: map[[2]int]int{}}
	for i, p := range pairs {
		if p[0] > p[1] {
			p[0], p[1] = p[1], p[0]
		}
		f.edges[p] = i
	}
	return f
}

func (f *stubEdgeFinder) FindEdge(v0, v1 int) int {
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if e, ok := f.edges[[2]int{v0, v1}]; ok {
		return e
	}
	return -1
}

// cubeFixtureMesh matches entsets/testdata/unit_cube.sets: seven
// vertices, a four-edge loop over 0..3, one quadrilateral face and one
// triangle, one element.
func cubeFixtureMesh() *stubMesh {
	m := &stubMesh{
		dim: 3, nv: 7, ne: 4, nel: 1,
		edgeVertex: buildTable([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}),
		faceVertex: buildTable([][]int{{0, 1, 2, 3}, {4, 5, 6}}),
		faceEdge:   buildTable([][]int{{0, 1, 2, 3}, {0, 1, 2}}),
		vtovPairs:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
		faces:      newStubFaceIndex(),
	}
	m.faces.addQuad(0, 0, 1, 2, 3)
	m.faces.addTri(1, 4, 5, 6)
	return m
}
