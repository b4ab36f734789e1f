// Package entsets maintains named groups of mesh entities — vertices,
// edges, faces and elements — and keeps them valid while the mesh is
// uniformly refined.
//
// What:
//
//   - EntitySets owns, per entity kind, an ordered list of named groups
//     of entity indices, loaded from the versioned "MFEM sets v1.0"
//     text format, copied from another instance, or rebuilt from a
//     non-conforming source.
//   - QuadUniformRefinement and HexUniformRefinement rewrite every
//     stored group in place after a structured refinement pass, using
//     deterministic index arithmetic rather than geometry.
//   - NCEntitySets flattens groups down to raw vertex-index tuples for
//     a non-conforming mesh representation.
//
// Why:
//
//   - Boundary conditions and material regions are named over the
//     coarse mesh; after refinement each old edge, face and element
//     splits into a known family of children, and the groups must
//     follow them without the user re-describing anything.
//
// The owning mesh is consulted only through the narrow Mesh, NCMesh,
// FaceIndex and EdgeFinder interfaces. Adjacency tables obtained from
// the mesh are a one-time ownership handoff: after CopyMeshTables the
// sets own them and the mesh no longer refers to them.
//
// Errors:
//
//	ErrBadHeader   - a mandatory section keyword is missing or wrong.
//	ErrBadGeometry - a face entry carries an unknown geometry tag.
//
// An unrecognized first line is not an error: the file simply contains
// no entity sets, and Load leaves a valid, empty instance (the
// backward-compatibility fallback for pre-set mesh files). Looking up a
// set by an unknown name, or passing an entity kind outside
// Vertex..Element, is a programming error and panics with
// *table.FatalError.
package entsets
