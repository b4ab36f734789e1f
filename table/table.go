package table

import (
	"bufio"
	"fmt"
	"io"
)

// Unset marks a column slot that has been allocated but not yet assigned.
// Lookups treat it as the end of the row; Finalize compacts it away.
const Unset = -1

// defaultPrintWidth is the number of columns per output line in Print.
const defaultPrintWidth = 4

// Table is a CSR incidence pattern: row r's columns occupy
// j[i[r] : i[r+1]]. It is built through exactly one of three protocols
// and is read-only afterwards:
//
//  1. New(rows, connectionsPerRow) allocates a uniform stride per row
//     with every slot Unset; entries are assigned later via Push.
//  2. The two-phase build: MakeI, AddColumnInRow/AddColumnsInRow (count
//     pass), MakeJ (prefix sum + allocation), AddConnection/
//     AddConnections (fill pass), ShiftUpI (restore offsets).
//  3. SetDims(rows, nnz) followed by direct writes through Row.
//
// The zero value is not usable; start from one of the constructors or
// from MakeI/SetDims.
type Table struct {
	// i holds row offsets: len NumRows+1, i[0] == 0, non-decreasing.
	// During phase two of the two-phase build it temporarily holds
	// per-row write cursors; ShiftUpI restores true offsets.
	i []int
	// j holds column indices, len i[NumRows]. May contain Unset slots
	// until Finalize.
	j []int
}

// New returns a Table with rows rows of connectionsPerRow slots each,
// all Unset. Entries are assigned later via Push.
func New(rows, connectionsPerRow int) *Table {
	if rows < 0 || connectionsPerRow < 0 {
		Fatal("Table", "New", rows, connectionsPerRow)
	}
	t := &Table{
		i: make([]int, rows+1),
		j: make([]int, rows*connectionsPerRow),
	}
	for r := 1; r <= rows; r++ {
		t.i[r] = t.i[r-1] + connectionsPerRow
	}
	for k := range t.j {
		t.j[k] = Unset
	}
	return t
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.i) - 1 }

// NumConnections returns the total number of column slots, assigned or not.
func (t *Table) NumConnections() int { return t.i[t.NumRows()] }

// RowSize returns the number of column slots in row r.
func (t *Table) RowSize(r int) int { return t.i[r+1] - t.i[r] }

// Row returns row r's column slots as a live subslice of the table's
// storage. Callers fill it directly under the SetDims protocol and must
// not mutate it otherwise.
func (t *Table) Row(r int) []int { return t.j[t.i[r]:t.i[r+1]] }

// SetDims discards any existing pattern and allocates rows rows with a
// total of nnz column slots. Row boundaries other than the first and
// last are left at zero; the caller lays them out.
func (t *Table) SetDims(rows, nnz int) {
	if rows < 0 || nnz < 0 {
		Fatal("Table", "SetDims", rows, nnz)
	}
	t.i = make([]int, rows+1)
	t.j = make([]int, nnz)
	t.i[rows] = nnz
}

// MakeI begins the two-phase build: nrows rows, all counts zero.
func (t *Table) MakeI(nrows int) {
	t.SetDims(nrows, 0)
}

// AddColumnInRow records, during phase one, that one more column will be
// added to row r.
func (t *Table) AddColumnInRow(r int) { t.i[r]++ }

// AddColumnsInRow records, during phase one, that n more columns will be
// added to row r.
func (t *Table) AddColumnsInRow(r, n int) { t.i[r] += n }

// MakeJ converts the per-row counts accumulated in phase one into write
// cursors (a prefix sum stored in place) and allocates column storage
// for the total. Phase two's AddConnection calls advance the cursors;
// ShiftUpI turns them back into row offsets.
func (t *Table) MakeJ() {
	total := 0
	rows := t.NumRows()
	for r := 0; r < rows; r++ {
		count := t.i[r]
		t.i[r] = total
		total += count
	}
	t.i[rows] = total
	t.j = make([]int, total)
}

// AddConnection writes column c into the next free slot of row r during
// phase two.
func (t *Table) AddConnection(r, c int) {
	t.j[t.i[r]] = c
	t.i[r]++
}

// AddConnections writes all of cols into row r during phase two.
func (t *Table) AddConnections(r int, cols []int) {
	copy(t.j[t.i[r]:], cols)
	t.i[r] += len(cols)
}

// ShiftUpI restores true row offsets after phase two, undoing the
// cursor reuse: each cursor now sits at the end of its row, which is
// the next row's start.
func (t *Table) ShiftUpI() {
	for r := t.NumRows(); r > 0; r-- {
		t.i[r] = t.i[r-1]
	}
	t.i[0] = 0
}

// Push inserts column c into row r and returns its slot index. The
// insert is idempotent: if c is already present its existing slot is
// returned. Pushing into a row with no Unset slot left means the row
// was under-allocated and panics with *FatalError.
func (t *Table) Push(r, c int) int {
	if r < 0 || r >= t.NumRows() {
		Fatal("Table", "Push", r, c)
	}
	for k := t.i[r]; k < t.i[r+1]; k++ {
		if t.j[k] == c {
			return k
		}
		if t.j[k] == Unset {
			t.j[k] = c
			return k
		}
	}
	Fatalf("Table", "Push", "row is full", r, c)
	return Unset
}

// Index returns the slot index of column c in row r, or Unset when the
// column is absent or r is out of range. The scan stops at the first
// Unset slot, so rows fill front to back.
func (t *Table) Index(r, c int) int {
	if r < 0 || r >= t.NumRows() {
		return Unset
	}
	for k := t.i[r]; k < t.i[r+1]; k++ {
		if t.j[k] == c {
			return k
		}
		if t.j[k] == Unset {
			return Unset
		}
	}
	return Unset
}

// Finalize compacts out all remaining Unset slots, producing the true
// CSR form: offsets shrink and columns keep their in-row order. Calling
// it on a table with no Unset slots is a no-op.
func (t *Table) Finalize() {
	assigned := 0
	for _, c := range t.j {
		if c != Unset {
			assigned++
		}
	}
	if assigned == len(t.j) {
		return
	}

	packed := make([]int, 0, assigned)
	rows := t.NumRows()
	for r := 0; r < rows; r++ {
		begin, end := t.i[r], t.i[r+1]
		t.i[r] = len(packed)
		for k := begin; k < end; k++ {
			if t.j[k] == Unset {
				break
			}
			packed = append(packed, t.j[k])
		}
	}
	t.i[rows] = len(packed)
	t.j = packed
}

// Width returns one past the maximum column value across all rows,
// i.e. the column count of a matching dense shape.
func (t *Table) Width() int {
	width := -1
	for _, c := range t.j {
		if c > width {
			width = c
		}
	}
	return width + 1
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		i: make([]int, len(t.i)),
		j: make([]int, len(t.j)),
	}
	copy(out.i, t.i)
	copy(out.j, t.j)
	return out
}

// Print writes a human-readable listing of the pattern, width column
// entries per line under a "[row N]" header. width < 1 selects the
// default of 4.
func (t *Table) Print(w io.Writer, width int) error {
	if width < 1 {
		width = defaultPrintWidth
	}
	for r := 0; r < t.NumRows(); r++ {
		if _, err := fmt.Fprintf(w, "[row %d]\n", r); err != nil {
			return err
		}
		var k int
		for k = t.i[r]; k < t.i[r+1]; k++ {
			if _, err := fmt.Fprintf(w, "%5d", t.j[k]); err != nil {
				return err
			}
			if (k+1-t.i[r])%width == 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
		}
		if (k-t.i[r])%width != 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the table in its exchange format: the row count, then the
// offsets, then the column indices, one integer per line. Load reads it
// back.
func (t *Table) Save(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", t.NumRows()); err != nil {
		return err
	}
	for _, v := range t.i {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}
	for _, v := range t.j {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a table previously written by Save. Malformed input yields
// ErrBadSaveFormat.
func Load(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	var rows int
	if _, err := fmt.Fscan(br, &rows); err != nil {
		return nil, fmt.Errorf("%w: reading row count: %v", ErrBadSaveFormat, err)
	}
	if rows < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", ErrBadSaveFormat, rows)
	}

	t := &Table{i: make([]int, rows+1)}
	for k := range t.i {
		if _, err := fmt.Fscan(br, &t.i[k]); err != nil {
			return nil, fmt.Errorf("%w: reading offset %d: %v", ErrBadSaveFormat, k, err)
		}
	}
	if t.i[0] != 0 || t.i[rows] < 0 {
		return nil, fmt.Errorf("%w: bad offsets", ErrBadSaveFormat)
	}
	for k := 1; k <= rows; k++ {
		if t.i[k] < t.i[k-1] {
			return nil, fmt.Errorf("%w: offsets not monotone at row %d", ErrBadSaveFormat, k)
		}
	}

	t.j = make([]int, t.i[rows])
	for k := range t.j {
		if _, err := fmt.Fscan(br, &t.j[k]); err != nil {
			return nil, fmt.Errorf("%w: reading column %d: %v", ErrBadSaveFormat, k, err)
		}
	}
	return t, nil
}
