// Package table models one in-memory tabular dataset: an ordered sequence of
// named columns, each an ordered sequence of typed cell values. Row order is
// preserved by every operation; column order changes only by removal.
package table

import "fmt"

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name   string
	Values []Value
}

// Table is an ordered mapping from column name to column.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New creates an empty table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Append adds a column at the end of the column order. Column names must be
// unique within a table.
func (t *Table) Append(name string, values []Value) error {
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("duplicate column name %q", name)
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, &Column{Name: name, Values: values})
	return nil
}

// NumRows returns the row count (length of the first column; all columns are
// kept the same length by construction).
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Values)
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Names returns the column names in column order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, if present.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Has reports whether the named column is present.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Columns iterates columns in order, applying fn to each.
func (t *Table) Columns(fn func(c *Column)) {
	for _, c := range t.cols {
		fn(c)
	}
}

// Rename maps every column name through fn, keeping column order. It fails
// when two columns end up with the same name.
func (t *Table) Rename(fn func(string) string) error {
	renamed := make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		name := fn(c.Name)
		if prev, dup := renamed[name]; dup {
			return fmt.Errorf("columns %q and %q both normalize to %q",
				t.cols[prev].Name, c.Name, name)
		}
		renamed[name] = i
	}
	for _, c := range t.cols {
		c.Name = fn(c.Name)
	}
	t.index = renamed
	return nil
}

// Drop removes the column for each name that matches keep == false, without
// reordering the retained columns. Unknown names are ignored.
func (t *Table) Drop(drop func(name string) bool) {
	kept := t.cols[:0]
	for _, c := range t.cols {
		if !drop(c.Name) {
			kept = append(kept, c)
		}
	}
	t.cols = kept
	t.index = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		t.index[c.Name] = i
	}
}
