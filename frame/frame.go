package frame

import (
	"fmt"

	"ds_helper/util/slice"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Frame represents table of strings with optional column names
type Frame struct {
	Columns []string
	Rows    [][]string
}

// ColumnLenError represents error thrown if added column has different amount of values than frame has rows
type ColumnLenError struct {
	Column string
	Want   int
	Got    int
}

// Error is used to satisfy golang error interface
func (e ColumnLenError) Error() string {
	return fmt.Sprintf("Column %q should have %v values, got %v", e.Column, e.Want, e.Got)
}

// FromColumn returns new frame with the single column <name> filled with <values>
func FromColumn(name string, values []string) Frame {
	return Frame{
		Columns: []string{name},
		Rows: lo.Map(values, func(val string, _ int) []string {
			return []string{val}
		}),
	}
}

// Len returns amount of rows
func (f Frame) Len() int {
	return len(f.Rows)
}

// Width returns amount of columns: the widest of the header and every row
func (f Frame) Width() int {
	return lo.Max(append(lo.Map(f.Rows, func(row []string, _ int) int { return len(row) }), len(f.Columns)))
}

// Column returns values of column <name> and true if such column exists. Missing cells of ragged rows are empty.
func (f Frame) Column(name string) ([]string, bool) {
	idx := lo.IndexOf(f.Columns, name)
	if idx < 0 {
		return nil, false
	}
	return lo.Map(f.Rows, func(row []string, _ int) string {
		if idx < len(row) {
			return row[idx]
		}
		return ""
	}), true
}

// Clone returns deep copy of <f>
func (f Frame) Clone() Frame {
	return Frame{
		Columns: append([]string(nil), f.Columns...),
		Rows: lo.Map(f.Rows, func(row []string, _ int) []string {
			return append([]string{}, row...)
		}),
	}
}

// WithColumn returns copy of <f> with column <name> of <values> appended. Ragged rows are padded first, so the new
// column lands at the same index in every row.
//
// Returns ColumnLenError if amount of <values> differs from amount of rows.
func (f Frame) WithColumn(name string, values []string) (Frame, error) {
	if len(values) != f.Len() {
		return f, errors.Wrap(ColumnLenError{Column: name, Want: f.Len(), Got: len(values)}, "Add column")
	}
	width := f.Width()
	out := f.Clone()
	out.Columns = append(out.Columns, slice.Filled("", width-len(out.Columns))...)
	out.Columns = append(out.Columns, name)
	for idx, row := range out.Rows {
		row = append(row, slice.Filled("", width-len(row))...)
		out.Rows[idx] = append(row, values[idx])
	}
	return out, nil
}

// DropDuplicateRows returns copy of <f> without repeated rows, keeping the first occurence of each
func (f Frame) DropDuplicateRows() Frame {
	out := f.Clone()
	out.Rows = slice.RemoveDuplicatesFunc(out.Rows)
	return out
}
