package engine

import "github.com/shelterlens-org/shelterlens/dataset"

// ============================================================================
// VIEW — zero-copy row access
// ============================================================================
// The engine never owns or copies the dataset. A View is either the whole
// table or an index list into it; filtering produces sub-views that share
// the same immutable backing table, so any number of concurrent chart
// computations can read through views without locking.
// ============================================================================

// View provides indexed read access to a subset of a Table.
// The zero View is an empty view.
type View struct {
	table   *dataset.Table
	indices []int // positions in table; meaningful only when !full
	full    bool
}

// NewView wraps a whole table as a View.
func NewView(t *dataset.Table) View {
	return View{table: t, full: true}
}

// Len returns the number of records visible through the view.
func (v View) Len() int {
	if v.full {
		return v.table.Len()
	}
	return len(v.indices)
}

// Record returns the i-th visible record.
func (v View) Record(i int) dataset.Record {
	return v.table.Record(v.index(i))
}

// index maps a view position to a position in the backing table.
func (v View) index(i int) int {
	if v.full {
		return i
	}
	return v.indices[i]
}

// subView builds a view from table-level positions. An empty match is an
// empty view, never a missing one.
func (v View) subView(indices []int) View {
	return View{table: v.table, indices: indices}
}
