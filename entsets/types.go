package entsets

import (
	"errors"

	"github.com/topomesh/topomesh/table"
)

// Sentinel errors for entity-set file parsing.
var (
	// ErrBadHeader indicates a malformed mandatory section keyword.
	ErrBadHeader = errors.New("entsets: invalid entity set file")
	// ErrBadGeometry indicates an unknown face geometry tag (only 2,
	// triangle, and 3, quadrilateral, are valid).
	ErrBadGeometry = errors.New("entsets: unknown face geometry type")
)

// EntityType selects one of the four entity kinds a group may contain.
// The set is closed; it will not grow.
type EntityType int

const (
	// Vertex groups hold vertex indices directly.
	Vertex EntityType = iota
	// Edge groups hold indices into the mesh's edge numbering.
	Edge
	// Face groups hold indices into the mesh's face table.
	Face
	// Element groups hold element indices directly.
	Element

	numEntityTypes
)

var entityTypeNames = [numEntityTypes]string{"vertex", "edge", "face", "element"}

// String returns the lower-case kind name.
func (t EntityType) String() string {
	if t < Vertex || t > Element {
		return "invalid"
	}
	return entityTypeNames[t]
}

// checkType panics when t is outside the closed Vertex..Element range.
func checkType(op string, t EntityType) {
	if t < Vertex || t > Element {
		table.Fatalf("EntitySets", op, "entity type out of range", int(t))
	}
}

// Geometry tags used by face entries in the set file format.
const (
	geomTriangle      = 2
	geomQuadrilateral = 3
)

// setsFileVersion is the first line of a recognized entity-set file.
const setsFileVersion = "MFEM sets v1.0"
