// Package tabular turns uploaded spreadsheet/CSV bytes into a normalized
// in-memory table. It is the only place that knows about file formats and
// text encodings; everything downstream works on Table.
package tabular

// Cell is a single table cell. Set distinguishes a cell the source file
// actually provided (possibly blank) from one that was missing entirely,
// e.g. a short CSV record or a truncated spreadsheet row.
type Cell struct {
	Value string
	Set   bool
}

// Display returns the cell value for preview output, with absent cells
// rendered as the empty string.
func (c Cell) Display() string {
	if !c.Set {
		return ""
	}
	return c.Value
}

// Table is an ordered, fully decoded tabular file: a header row plus zero
// or more data rows. Column and row order match the source file exactly.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// RowMap returns row i keyed by header name. When two source columns share
// a header the later column wins, matching how the mapping step resolves
// duplicate targets.
func (t *Table) RowMap(i int) map[string]Cell {
	row := t.Rows[i]
	m := make(map[string]Cell, len(t.Headers))
	for j, h := range t.Headers {
		if j < len(row) {
			m[h] = row[j]
		} else {
			m[h] = Cell{}
		}
	}
	return m
}
