package table

// STable is a symmetric view over Table for undirected relations: every
// query and insert is canonicalized so the smaller index is the row.
// One slot then serves both orientations of a pair. Callers never pass
// r == c; the mesh layer has no self-loops.
type STable struct {
	Table
}

// NewSTable returns an STable with rows rows of connectionsPerRow
// slots each, all Unset.
func NewSTable(rows, connectionsPerRow int) *STable {
	return &STable{Table: *New(rows, connectionsPerRow)}
}

// Index returns the slot of the undirected pair {r, c}, or Unset.
func (s *STable) Index(r, c int) int {
	if r < c {
		return s.Table.Index(r, c)
	}
	return s.Table.Index(c, r)
}

// Push inserts the undirected pair {r, c} and returns its slot.
func (s *STable) Push(r, c int) int {
	if r < c {
		return s.Table.Push(r, c)
	}
	return s.Table.Push(c, r)
}
