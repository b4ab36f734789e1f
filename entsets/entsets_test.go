package entsets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topomesh/topomesh/table"
)

func loadFixture(t *testing.T, mesh Mesh, name string) *EntitySets {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	es := New(mesh)
	require.NoError(t, es.Load(f))
	return es
}

// TestLoad_Fixture verifies a full 3D load: names, sizes and the
// resolution of edge entries (vertex pairs) and face entries (tagged
// vertex tuples) to internal indices.
func TestLoad_Fixture(t *testing.T) {
	es := loadFixture(t, cubeFixtureMesh(), "unit_cube.sets")

	require.Equal(t, 2, es.NumSets(Vertex))
	assert.Equal(t, "corners", es.SetName(Vertex, 0))
	assert.Equal(t, 4, es.NumEntities(Vertex, 0))
	assert.Equal(t, []int{0, 1, 2, 3}, es.sets[Vertex][0])
	assert.Equal(t, "origin", es.SetName(Vertex, 1))

	require.Equal(t, 1, es.NumSets(Edge))
	assert.Equal(t, "bottom edge", es.SetName(Edge, 0), "set names may contain spaces")
	assert.Equal(t, []int{0, 2}, es.sets[Edge][0], "vertex pairs resolve to edge indices")

	require.Equal(t, 1, es.NumSets(Face))
	assert.Equal(t, []int{0, 1}, es.sets[Face][0], "quad then triangle resolve to face indices")

	require.Equal(t, 1, es.NumSets(Element))
	assert.Equal(t, 0, es.EntityIndex(Element, 0, 0))

	// Load ends with CopyMeshTables: tables owned, counts current.
	assert.NotNil(t, es.edgeVertex)
	assert.NotNil(t, es.faceVertex)
	assert.NotNil(t, es.faceEdge)
	assert.Equal(t, 7, es.numVertices)
}

// TestLoad_UnknownVersion verifies the compatibility fallback: any
// other first line yields a valid, set-less instance, not an error.
func TestLoad_UnknownVersion(t *testing.T) {
	es := New(cubeFixtureMesh())
	err := es.Load(strings.NewReader("MFEM mesh v1.0\n\ndimension\n3\n"))

	require.NoError(t, err)
	for _, kind := range []EntityType{Vertex, Edge, Face, Element} {
		assert.Zero(t, es.NumSets(kind), "%s sets", kind)
	}
}

// TestLoad_EmptyInput is the degenerate fallback case.
func TestLoad_EmptyInput(t *testing.T) {
	es := New(cubeFixtureMesh())
	require.NoError(t, es.Load(strings.NewReader("")))
	assert.Zero(t, es.NumSets(Vertex))
}

// TestLoad_BadKeyword verifies that a wrong mandatory keyword is an
// unrecoverable parse error.
func TestLoad_BadKeyword(t *testing.T) {
	in := "MFEM sets v1.0\n\ndimensions\n3\n"
	err := New(cubeFixtureMesh()).Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrBadHeader)

	in = "MFEM sets v1.0\n\ndimension\n1\n\nnode_sets\n0\n"
	err = New(cubeFixtureMesh()).Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrBadHeader)
}

// TestLoad_Truncated verifies that running out of input inside a
// recognized file is a parse error, not a silent partial load.
func TestLoad_Truncated(t *testing.T) {
	in := "MFEM sets v1.0\n\ndimension\n1\n\nvertex_sets\n1\n\ninner\n3\n0 1\n"
	err := New(cubeFixtureMesh()).Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrBadHeader)
}

// TestLoad_BadGeometryTag verifies that only tags 2 and 3 are accepted
// in face entries.
func TestLoad_BadGeometryTag(t *testing.T) {
	in := "MFEM sets v1.0\n\ndimension\n3\n\n" +
		"vertex_sets\n0\n\nedge_sets\n0\n\n" +
		"face_sets\n1\n\nbad\n1\n4 0 1 2 3\n\nelement_sets\n0\n"
	err := New(cubeFixtureMesh()).Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrBadGeometry)
}

// TestLoad_SkipsComments verifies '#' comment lines between sections.
func TestLoad_SkipsComments(t *testing.T) {
	in := "MFEM sets v1.0\n\n# generated by hand\ndimension\n1\n\n" +
		"# only vertices here\nvertex_sets\n1\n\npins\n2\n4 6\n\n" +
		"element_sets\n0\n"
	es := New(cubeFixtureMesh())
	require.NoError(t, es.Load(strings.NewReader(in)))
	assert.Equal(t, []int{4, 6}, es.sets[Vertex][0])
}

// TestPrint_RoundTrip prints a loaded instance and loads the output
// into a fresh one, expecting identical groups.
func TestPrint_RoundTrip(t *testing.T) {
	mesh := cubeFixtureMesh()
	es := loadFixture(t, mesh, "unit_cube.sets")

	var buf bytes.Buffer
	require.NoError(t, es.Print(&buf))

	again := New(mesh)
	require.NoError(t, again.Load(&buf))

	for kind := Vertex; kind <= Element; kind++ {
		require.Equal(t, es.NumSets(kind), again.NumSets(kind), "%s set count", kind)
		for s := 0; s < es.NumSets(kind); s++ {
			assert.Equal(t, es.SetName(kind, s), again.SetName(kind, s))
			assert.Equal(t, es.sets[kind][s], again.sets[kind][s], "%s set %d", kind, s)
		}
	}
}

// TestPrint_BadEdgeToken verifies stale negative entries print as
// bad_edge rather than crashing on a table lookup.
func TestPrint_BadEdgeToken(t *testing.T) {
	mesh := cubeFixtureMesh()
	mesh.dim = 2
	es := New(mesh)
	es.sets[Edge] = [][]int{{-1, 0}}
	es.names[Edge] = []string{"stale"}
	es.byName[Edge]["stale"] = 0
	es.edgeVertex = buildTable([][]int{{0, 1}})

	var buf bytes.Buffer
	require.NoError(t, es.Print(&buf))
	assert.Contains(t, buf.String(), "bad_edge 0 1\n")
}

// TestSetIndex_UnknownNameFatal verifies the lookup contract: the name
// is assumed valid, so a miss is a programming error.
func TestSetIndex_UnknownNameFatal(t *testing.T) {
	es := loadFixture(t, cubeFixtureMesh(), "unit_cube.sets")

	assert.Equal(t, 1, es.SetIndex(Vertex, "origin"))
	assert.Equal(t, 1, es.NumEntitiesByName(Vertex, "origin"))
	assert.Equal(t, 0, es.EntityIndexByName(Vertex, "origin", 0))

	defer func() {
		_, ok := recover().(*table.FatalError)
		require.True(t, ok, "unknown set name must panic with *FatalError")
	}()
	es.SetIndex(Vertex, "no such set")
}

// TestEntityTypeRangeFatal verifies the closed-enum contract.
func TestEntityTypeRangeFatal(t *testing.T) {
	es := New(cubeFixtureMesh())
	assert.Panics(t, func() { es.NumSets(EntityType(4)) })
	assert.Panics(t, func() { es.NumSets(EntityType(-1)) })
}

// TestClone verifies deep-copy independence of groups and tables.
func TestClone(t *testing.T) {
	es := loadFixture(t, cubeFixtureMesh(), "unit_cube.sets")

	cp := es.Clone()
	cp.sets[Vertex][0][0] = 99

	assert.Equal(t, 0, es.EntityIndex(Vertex, 0, 0), "original group untouched")
	assert.Equal(t, es.SetName(Edge, 0), cp.SetName(Edge, 0))
	assert.Equal(t, 1, cp.SetIndex(Vertex, "origin"), "name lookup rebuilt in the copy")
	require.NotNil(t, cp.edgeVertex)
	assert.NotSame(t, es.edgeVertex, cp.edgeVertex, "owned tables duplicated, not shared")
}

// TestPrintSetInfo spot-checks the summary listing.
func TestPrintSetInfo(t *testing.T) {
	es := loadFixture(t, cubeFixtureMesh(), "unit_cube.sets")

	var buf bytes.Buffer
	require.NoError(t, es.PrintSetInfo(&buf))
	out := buf.String()
	assert.Contains(t, out, "Vertex Sets (Index, Size, Set Name):")
	assert.Contains(t, out, "\t0\t4\tcorners\n")
	assert.Contains(t, out, "\t0\t2\tbottom edge\n")
}
