// Package table provides an in-memory columnar table: named, typed
// columns with ordered rows and per-column null tracking.
package table

// Table is an ordered collection of equal-length columns.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New builds a table from the given columns. Column order is
// preserved. Later columns shadow earlier ones with the same name in
// by-name lookups.
func New(cols ...*Column) *Table {
	t := &Table{
		cols:  cols,
		index: make(map[string]int, len(cols)),
	}

	for i, c := range cols {
		t.index[c.Name()] = i
	}

	return t
}

// NumRows returns the row count. All columns have the same length.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Columns returns the columns in order.
func (t *Table) Columns() []*Column {
	return t.cols
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.cols[i]
}

// Names returns the column names in column order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}
