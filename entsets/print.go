package entsets

import (
	"fmt"
	"io"
)

// errWriter batches formatted writes, remembering the first failure.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Print writes the sets in the versioned text format Load reads.
// Section presence follows the mesh dimension: edge sets appear above
// one dimension, face sets above two. Edge and face entries are written
// as their resolved vertices from the owned adjacency tables; a
// negative entity index — stale after an incomplete refinement — prints
// as "bad_edge" or "bad_face" instead.
func (es *EntitySets) Print(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n\n", setsFileVersion)
	ew.printf("dimension\n%d\n\n", es.mesh.Dimension())

	es.printDirect(ew, Vertex, "vertex_sets")
	if es.mesh.Dimension() > 1 {
		es.printEdgeSets(ew)
	}
	if es.mesh.Dimension() > 2 {
		es.printFaceSets(ew)
	}
	es.printDirect(ew, Element, "element_sets")
	return ew.err
}

// printDirect writes a section whose entities are raw indices (vertex
// and element kinds).
func (es *EntitySets) printDirect(ew *errWriter, t EntityType, header string) {
	ew.printf("%s\n%d\n\n", header, es.NumSets(t))
	for s, group := range es.sets[t] {
		ew.printf("%s\n%d\n", es.names[t][s], len(group))
		for i, idx := range group {
			if i < len(group)-1 {
				ew.printf("%d ", idx)
			} else {
				ew.printf("%d\n\n", idx)
			}
		}
	}
}

// printEdgeSets writes edge entries as their two endpoint vertices.
func (es *EntitySets) printEdgeSets(ew *errWriter) {
	ew.printf("edge_sets\n%d\n\n", es.NumSets(Edge))
	for s, group := range es.sets[Edge] {
		ew.printf("%s\n%d\n", es.names[Edge][s], len(group))
		for i, edge := range group {
			sep := " "
			if i == len(group)-1 {
				sep = "\n\n"
			}
			if edge < 0 {
				ew.printf("bad_edge%s", sep)
				continue
			}
			v := es.edgeVertex.Row(edge)
			ew.printf("%d %d%s", v[0], v[1], sep)
		}
	}
}

// printFaceSets writes face entries as (vertexCount-1) followed by the
// corner vertices, one face per line.
func (es *EntitySets) printFaceSets(ew *errWriter) {
	ew.printf("face_sets\n%d\n\n", es.NumSets(Face))
	for s, group := range es.sets[Face] {
		ew.printf("%s\n%d\n", es.names[Face][s], len(group))
		for i, face := range group {
			if face < 0 {
				if i < len(group)-1 {
					ew.printf("bad_face ")
				} else {
					ew.printf("bad_face\n\n")
				}
				continue
			}
			v := es.faceVertex.Row(face)
			ew.printf("%d", len(v)-1)
			for _, vi := range v {
				ew.printf(" %d", vi)
			}
			ew.printf("\n")
		}
		ew.printf("\n")
	}
}

// PrintSetInfo writes a human-readable summary of the stored groups:
// per kind, each group's ordinal, size and name.
func (es *EntitySets) PrintSetInfo(w io.Writer) error {
	ew := &errWriter{w: w}
	if es.NumSets(Vertex) > 0 || es.NumSets(Edge) > 0 ||
		es.NumSets(Face) > 0 || es.NumSets(Element) > 0 {
		ew.printf("\nEntity Sets:\n")
	}
	headers := [numEntityTypes]string{"Vertex", "Edge", "Face", "Element"}
	for t := Vertex; t <= Element; t++ {
		if es.NumSets(t) == 0 {
			continue
		}
		ew.printf("  %s Sets (Index, Size, Set Name):\n", headers[t])
		for s, group := range es.sets[t] {
			ew.printf("\t%d\t%d\t%s\n", s, len(group), es.names[t][s])
		}
		ew.printf("\n")
	}
	return ew.err
}
