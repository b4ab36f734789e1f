// Package table implements the sparse incidence tables used to describe
// mesh topology: which vertices belong to which edges, which edges bound
// which faces, and so on. Tables carry no numeric values, only the
// presence or absence of a (row, column) connection.
//
// What:
//
//   - Table: an immutable-after-build CSR pattern (row offsets + column
//     indices) with three construction protocols: fixed-degree
//     allocation, the two-phase MakeI/MakeJ build, and explicit SetDims.
//   - STable: a symmetric view that canonicalizes (r, c) to (min, max),
//     storing one slot per undirected pair.
//   - DSTable: a dynamic row table that assigns a dense, stable index to
//     each (row, column) pair in discovery order, with no degree bound.
//   - Transpose, TransposeIndex, Mult: pattern algebra used to derive
//     one adjacency relation from another.
//
// Why:
//
//   - Mesh connectivity (vertex/edge/face/element adjacency) is sparse
//     and fixed once built; CSR keeps it compact and cache-friendly.
//   - DSTable answers "which edge joins vertices u and v?" for pairs
//     discovered in arbitrary order, e.g. while numbering edges.
//
// Complexity:
//
//   - Table.Push / Table.Index: O(row degree).
//   - Transpose: O(rows + nnz). Mult: O(flops), one marker slot per
//     column of the right factor.
//   - DSTable.Push / Index: O(row chain length).
//
// Errors:
//
//	Lookups that can legitimately miss return Unset (-1) and never fail.
//	Violations of the build contract (pushing into a full row, a row
//	index out of range, incompatible Mult operands) are programming
//	errors and panic with *FatalError.
package table
