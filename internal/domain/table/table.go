// Package table holds the in-memory representation of one loaded CSV file.
//
// A Table is immutable after construction: every operation that narrows or
// reshapes data returns a new Table and leaves the source untouched. Columns
// are addressed by their exact (case-sensitive) header name; a missing column
// is an explicit (index, false) branch for the caller, never a panic.
package table

// Table is an ordered set of named columns over rows of string cells, in
// file order. Cell values stay as read; numeric interpretation is up to the
// caller.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table from a header and rows. Both slices are copied so the
// table cannot be mutated through the originals. Rows shorter than the
// header are padded with empty cells, longer ones are truncated.
func New(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		name:    name,
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, c := range t.columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	for _, r := range rows {
		row := make([]string, len(t.columns))
		copy(row, r)
		t.rows = append(t.rows, row)
	}
	return t
}

// Name returns the table name (the file stem it was loaded from).
func (t *Table) Name() string { return t.name }

// Columns returns a copy of the header.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Rows returns a copy of all rows in file order.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i := range t.rows {
		out[i] = append([]string(nil), t.rows[i]...)
	}
	return out
}

// ColumnExists reports whether the header contains name.
func (t *Table) ColumnExists(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the position of the named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the value at (row, column name). The second result is false
// when the column does not exist.
func (t *Table) Cell(row int, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok {
		return "", false
	}
	return t.rows[row][i], true
}

// Select returns a new table with the same schema containing the rows for
// which keep returns true. keep receives a copy of each row.
func (t *Table) Select(keep func(row []string) bool) *Table {
	var kept [][]string
	for i := range t.rows {
		if keep(t.Row(i)) {
			kept = append(kept, t.rows[i])
		}
	}
	return New(t.name, t.columns, kept)
}

// Map returns a new table with the same schema whose rows are produced by
// applying fn to a copy of each row. fn returning nil drops the row.
func (t *Table) Map(fn func(row []string) []string) *Table {
	var out [][]string
	for i := range t.rows {
		if r := fn(t.Row(i)); r != nil {
			out = append(out, r)
		}
	}
	return New(t.name, t.columns, out)
}

// Empty returns a zero-row table with the same name and schema.
func (t *Table) Empty() *Table {
	return New(t.name, t.columns, nil)
}
