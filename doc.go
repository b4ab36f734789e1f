// Package topomesh collects sparse incidence tables and named entity
// sets for mesh topology work.
//
// 🚀 What is topomesh?
//
//	A compact, pure-Go toolkit for finite-element-style connectivity:
//		• table/   — CSR incidence patterns: fixed-degree, two-phase and
//		  direct construction, symmetric and dynamic variants, plus
//		  Transpose and boolean Mult
//		• entsets/ — named groups of vertices, edges, faces and elements
//		  with a versioned text format and uniform-refinement tracking
//		• cmd/tabletool — a small CLI over the table save format
//
// ✨ Why choose topomesh?
//
//   - Index-based – entities are plain ints, no pointer graphs to chase
//   - Predictable memory – two flat arrays per table, one allocation each
//   - Explicit contracts – soft misses return -1, broken preconditions
//     panic with a structured *table.FatalError
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a quad: its edge→vertex table has four rows of two columns, and its
//	transpose answers "which edges touch vertex v" in O(degree).
//
// Dive into table/doc.go and entsets/doc.go for the full contracts.
//
//	go get github.com/topomesh/topomesh
package topomesh
