package frame

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func newTestFrame() Frame {
	return Frame{
		Columns: []string{"Symbol", "Security"},
		Rows: [][]string{
			{"MMM", "3M Company"},
			{"AOS", "A. O. Smith Corporation"},
			{"ABT"},
		},
	}
}

func TestFromColumn(t *testing.T) {
	f := FromColumn("Raw name", []string{"Acme Corp", "Globex Inc"})
	expected := Frame{Columns: []string{"Raw name"}, Rows: [][]string{{"Acme Corp"}, {"Globex Inc"}}}
	assert.Exactly(t, expected, f, "should create single column frame")

	f = FromColumn("Raw name", []string{})
	assert.Exactly(t, 0, f.Len(), "should create frame without rows")
	assert.Exactly(t, 1, f.Width(), "should have one column")
}

func TestWidth(t *testing.T) {
	assert.Exactly(t, 2, newTestFrame().Width(), "should return header width")
	assert.Exactly(t, 3, Frame{Rows: [][]string{{"a"}, {"a", "b", "c"}}}.Width(), "should return widest row")
	assert.Exactly(t, 0, Frame{}.Width(), "should return 0 for empty frame")
}

func TestColumn(t *testing.T) {
	f := newTestFrame()

	values, found := f.Column("Security")
	assert.True(t, found, "should find column")
	assert.Exactly(t, []string{"3M Company", "A. O. Smith Corporation", ""}, values, "should pad missing cells")

	values, found = f.Column("Missing")
	assert.False(t, found, "should not find column")
	assert.Nil(t, values, "should return nil values")
}

func TestClone(t *testing.T) {
	f1 := newTestFrame()
	f2 := f1.Clone()
	assert.Exactly(t, f1, f2, "should return equal frame")

	f2.Rows[0][0] = "Changed"
	f2.Columns[0] = "Changed"
	assert.Exactly(t, newTestFrame(), f1, "changes to the copy should not modify the source")
}

func TestWithColumn(t *testing.T) {
	f1 := newTestFrame()

	f2, err := f1.WithColumn("Security (stripped)", []string{"3M", "A. O. Smith", ""})
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, newTestFrame(), f1, "should not modify the source")

	expected := Frame{
		Columns: []string{"Symbol", "Security", "Security (stripped)"},
		Rows: [][]string{
			{"MMM", "3M Company", "3M"},
			{"AOS", "A. O. Smith Corporation", "A. O. Smith"},
			{"ABT", "", ""},
		},
	}
	assert.Exactly(t, expected, f2, "should append column padding ragged rows")

	_, err = f1.WithColumn("Short", []string{"a"})
	lenErr := ColumnLenError{}
	assert.True(t, errors.As(err, &lenErr), "should return ColumnLenError")
	assert.Exactly(t, ColumnLenError{Column: "Short", Want: 3, Got: 1}, lenErr, "should describe mismatch")
}

func TestDropDuplicateRows(t *testing.T) {
	f1 := Frame{
		Columns: []string{"Name"},
		Rows:    [][]string{{"Acme"}, {"Globex"}, {"Acme"}, {"Acme", "Corp"}},
	}
	f2 := f1.DropDuplicateRows()

	assert.Exactly(t, [][]string{{"Acme"}, {"Globex"}, {"Acme"}, {"Acme", "Corp"}}, f1.Rows, "should not modify the source")
	assert.Exactly(t, [][]string{{"Acme"}, {"Globex"}, {"Acme", "Corp"}}, f2.Rows, "should drop repeated rows")
	assert.Exactly(t, []string{"Name"}, f2.Columns, "should keep columns")
}
