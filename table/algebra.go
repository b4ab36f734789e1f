package table

// Transpose returns At with At(c, r) present exactly when a(r, c) is.
// ncols fixes the transpose's row count; pass a negative value to use
// a.Width(). The input must be finalized (no Unset slots).
//
// The construction is the standard two-phase scatter: histogram column
// occurrences into the new offsets, prefix-sum them, then reuse the
// offset array as per-row write cursors and restore it afterwards.
//
// Time Complexity: O(rows + nnz)
func Transpose(a *Table, ncols int) *Table {
	if ncols < 0 {
		ncols = a.Width()
	}
	at := &Table{}
	at.SetDims(ncols, a.NumConnections())

	for _, c := range a.j {
		at.i[c+1]++
	}
	for r := 1; r < ncols; r++ {
		at.i[r+1] += at.i[r]
	}

	for r := 0; r < a.NumRows(); r++ {
		for k := a.i[r]; k < a.i[r+1]; k++ {
			c := a.j[k]
			at.j[at.i[c]] = r
			at.i[c]++
		}
	}
	for r := ncols; r > 0; r-- {
		at.i[r] = at.i[r-1]
	}
	at.i[0] = 0
	return at
}

// TransposeIndex transposes a plain row assignment: entry r of assign
// is the single column of row r, so the result has row assign[r]
// containing column r. ncols < 0 sizes the result to max(assign)+1.
func TransposeIndex(assign []int, ncols int) *Table {
	if ncols < 0 {
		for _, c := range assign {
			if c >= ncols {
				ncols = c + 1
			}
		}
		if ncols < 0 {
			ncols = 0
		}
	}
	at := &Table{}
	at.MakeI(ncols)
	for _, c := range assign {
		at.AddColumnInRow(c)
	}
	at.MakeJ()
	for r, c := range assign {
		at.AddConnection(c, r)
	}
	at.ShiftUpI()
	return at
}

// Mult returns the pattern composition C of a and b: C(r, m) is present
// exactly when some k has both a(r, k) and b(k, m). Both inputs must be
// finalized, and a.Width() must not exceed b.NumRows(); a wider a is a
// fatal operand mismatch.
//
// Two-pass SMMP: pass one counts distinct output columns per row to
// size C, pass two writes them. A marker array over b's columns,
// stamped with the current row index, suppresses duplicates; stamping
// makes the per-row reset O(1) instead of a clear.
//
// Time Complexity: O(flops), Memory: O(b.Width()) scratch
func Mult(a, b *Table) *Table {
	if a.Width() > b.NumRows() {
		Fatalf("Table", "Mult", "left width exceeds right row count", a.Width(), b.NumRows())
	}

	marker := make([]int, b.Width())
	for m := range marker {
		marker[m] = -1
	}

	count := 0
	for r := 0; r < a.NumRows(); r++ {
		for ka := a.i[r]; ka < a.i[r+1]; ka++ {
			k := a.j[ka]
			for kb := b.i[k]; kb < b.i[k+1]; kb++ {
				if m := b.j[kb]; marker[m] != r {
					marker[m] = r
					count++
				}
			}
		}
	}

	c := &Table{}
	c.SetDims(a.NumRows(), count)
	for m := range marker {
		marker[m] = -1
	}

	pos := 0
	for r := 0; r < a.NumRows(); r++ {
		c.i[r] = pos
		for ka := a.i[r]; ka < a.i[r+1]; ka++ {
			k := a.j[ka]
			for kb := b.i[k]; kb < b.i[k+1]; kb++ {
				if m := b.j[kb]; marker[m] != r {
					marker[m] = r
					c.j[pos] = m
					pos++
				}
			}
		}
	}
	return c
}
