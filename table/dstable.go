package table

// noNode terminates a row chain.
const noNode = -1

// dsNode is one entry of a DSTable row chain. Nodes live in the table's
// arena and never escape it; a node's arena position doubles as the
// dense entry index, since entries are appended in discovery order.
type dsNode struct {
	column int
	prev   int
}

// DSTable maps (row, column) pairs to a dense integer index assigned in
// discovery order, with no a-priori bound on row degree. Each row is a
// newest-first chain of nodes; within a row, columns are unique, and
// indices across the whole table form the dense range [0, NumEntries).
//
// Its typical job is numbering mesh edges: Pair(u, v) hands out the
// next free edge index the first time a vertex pair is seen and the
// same index ever after.
type DSTable struct {
	rows  []int
	nodes []dsNode
}

// DSOption configures a DSTable at construction.
type DSOption func(*DSTable)

// WithNodeCapacity preallocates room for n entries. Purely a throughput
// knob; behavior is identical with or without it.
func WithNodeCapacity(n int) DSOption {
	return func(d *DSTable) {
		d.nodes = make([]dsNode, 0, n)
	}
}

// NewDSTable returns an empty DSTable with nrows rows.
func NewDSTable(nrows int, opts ...DSOption) *DSTable {
	if nrows < 0 {
		Fatal("DSTable", "NewDSTable", nrows)
	}
	d := &DSTable{rows: make([]int, nrows)}
	for r := range d.rows {
		d.rows[r] = noNode
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NumRows returns the number of rows.
func (d *DSTable) NumRows() int { return len(d.rows) }

// NumEntries returns the number of distinct (row, column) pairs seen so
// far, which is also the next index to be assigned.
func (d *DSTable) NumEntries() int { return len(d.nodes) }

// Push returns the index of (r, c), assigning the next free one when
// the pair is new. A row outside [0, NumRows) panics with *FatalError.
func (d *DSTable) Push(r, c int) int {
	if r < 0 || r >= len(d.rows) {
		Fatal("DSTable", "Push", r, c)
	}
	for n := d.rows[r]; n != noNode; n = d.nodes[n].prev {
		if d.nodes[n].column == c {
			return n
		}
	}
	d.nodes = append(d.nodes, dsNode{column: c, prev: d.rows[r]})
	idx := len(d.nodes) - 1
	d.rows[r] = idx
	return idx
}

// Index returns the index of (r, c), or Unset when the pair has not
// been seen or r is out of range. It never allocates.
func (d *DSTable) Index(r, c int) int {
	if r < 0 || r >= len(d.rows) {
		return Unset
	}
	for n := d.rows[r]; n != noNode; n = d.nodes[n].prev {
		if d.nodes[n].column == c {
			return n
		}
	}
	return Unset
}

// Pair is Push for undirected pairs: {u, v} is canonicalized so the
// smaller vertex is the row, giving one index per pair regardless of
// orientation.
func (d *DSTable) Pair(u, v int) int {
	if u > v {
		u, v = v, u
	}
	return d.Push(u, v)
}
