package wrangle

import "fmt"

type column struct {
	name  string
	value Value
}

// Row is an ordered sequence of (name, Value) pairs. Column names are
// case-sensitive and duplicates are permitted; operations that address a
// column by name resolve to the first match (Open Question (b) in
// spec.md §9 — documented here rather than forbidding duplicates).
type Row struct {
	cols []column
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{}
}

// RowFrom builds a row from names and values in order, panicking if the
// slices have mismatched lengths (a programming error, not a data error).
func RowFrom(names []string, values []Value) *Row {
	if len(names) != len(values) {
		panic("wrangle: RowFrom: names/values length mismatch")
	}
	r := &Row{cols: make([]column, len(names))}
	for i := range names {
		r.cols[i] = column{name: names[i], value: values[i]}
	}
	return r
}

// Len returns the number of columns.
func (r *Row) Len() int { return len(r.cols) }

// NameAt returns the column name at pos, panicking if pos is out of range.
func (r *Row) NameAt(pos int) string { return r.cols[pos].name }

// Find returns the index of the first column named name, or -1.
func (r *Row) Find(name string) int {
	for i, c := range r.cols {
		if c.name == name {
			return i
		}
	}
	return -1
}

// GetValue returns the value at name, or Null if absent (I1/I2 contract in
// spec.md §4.1: by-name access never panics on a missing column).
func (r *Row) GetValue(name string) Value {
	i := r.Find(name)
	if i < 0 {
		return Null()
	}
	return r.cols[i].value
}

// GetValueAt returns the value at pos, panicking if out of range.
func (r *Row) GetValueAt(pos int) Value {
	return r.cols[pos].value
}

// SetValue replaces the value at pos in place; it never changes column
// count or order (I2). Panics if pos is out of range.
func (r *Row) SetValue(pos int, v Value) {
	r.cols[pos].value = v
}

// SetValueByName replaces the value of the first column named name,
// creating a new trailing column via Add if absent.
func (r *Row) SetValueByName(name string, v Value) {
	i := r.Find(name)
	if i < 0 {
		r.Add(name, v)
		return
	}
	r.cols[i].value = v
}

// Add always appends a new column (I3), even if name already exists.
func (r *Row) Add(name string, v Value) {
	r.cols = append(r.cols, column{name: name, value: v})
}

// RemoveAt shrinks the row by deleting the column at pos, preserving the
// order of the remaining columns (I1). Panics if pos is out of range.
func (r *Row) RemoveAt(pos int) {
	r.cols = append(r.cols[:pos], r.cols[pos+1:]...)
}

// RemoveByName removes the first column named name. It is a no-op if
// absent.
func (r *Row) RemoveByName(name string) {
	i := r.Find(name)
	if i < 0 {
		return
	}
	r.RemoveAt(i)
}

// Swap exchanges the values (not the names) stored at nameA and nameB. A
// missing column on either side is a step failure, not a panic, since the
// names come from directive arguments supplied at DSL-authoring time
// against row data the author does not control.
func (r *Row) Swap(nameA, nameB string) error {
	ia := r.Find(nameA)
	if ia < 0 {
		return fmt.Errorf("swap: column %q not found", nameA)
	}
	ib := r.Find(nameB)
	if ib < 0 {
		return fmt.Errorf("swap: column %q not found", nameB)
	}
	r.cols[ia].value, r.cols[ib].value = r.cols[ib].value, r.cols[ia].value
	return nil
}

// Rename renames the first column named from to to, leaving its position
// and value untouched.
func (r *Row) Rename(from, to string) error {
	i := r.Find(from)
	if i < 0 {
		return fmt.Errorf("rename: column %q not found", from)
	}
	r.cols[i].name = to
	return nil
}

// SetNames replaces every column name in order; len(names) must equal
// r.Len().
func (r *Row) SetNames(names []string) error {
	if len(names) != len(r.cols) {
		return fmt.Errorf("columns: expected %d names, got %d", len(r.cols), len(names))
	}
	for i, n := range names {
		r.cols[i].name = n
	}
	return nil
}

// Clone returns a shallow copy: the column slice is copied so subsequent
// mutation of the clone cannot alias the original (fan-out steps rely on
// this), but Values themselves (immutable) are shared by value.
func (r *Row) Clone() *Row {
	cols := make([]column, len(r.cols))
	copy(cols, r.cols)
	return &Row{cols: cols}
}

// Names returns the ordered column names.
func (r *Row) Names() []string {
	names := make([]string, len(r.cols))
	for i, c := range r.cols {
		names[i] = c.name
	}
	return names
}
