package export

import (
	"os"

	"ds_helper/frame"
	"ds_helper/util/file"

	json "github.com/SCP002/jsonexraw"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

// jsonFrame represents frame serialized column names apart from rows
type jsonFrame struct {
	Columns []string   `json:"columns,omitempty"`
	Data    [][]string `json:"data"`
}

// ColumnsMismatchError represents error thrown if frame is appended to a file having different column names
type ColumnsMismatchError struct {
	Existing []string
	New      []string
}

// Error is used to satisfy golang error interface
func (e ColumnsMismatchError) Error() string {
	return "Can not append rows with different columns: " + cmp.Diff(e.Existing, e.New)
}

// writeJSON writes <f> to <path> as JSON object with "columns" and "data" keys. If <appendTo> is true, rows are added
// to the data of an existing file.
func writeJSON(path string, f frame.Frame, appendTo bool) error {
	out := jsonFrame{Columns: f.Columns, Data: f.Rows}
	if out.Data == nil {
		out.Data = [][]string{}
	}

	if appendTo && file.Exists(path) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "Read JSON file")
		}
		var existing jsonFrame
		if err := json.Unmarshal(raw, &existing); err != nil {
			return errors.Wrap(err, "Parse JSON file")
		}
		if len(existing.Columns) > 0 && len(out.Columns) > 0 && !cmp.Equal(existing.Columns, out.Columns) {
			return errors.Wrap(ColumnsMismatchError{Existing: existing.Columns, New: out.Columns}, "Append JSON")
		}
		if len(out.Columns) == 0 {
			out.Columns = existing.Columns
		}
		out.Data = append(existing.Data, out.Data...)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "Serialize JSON")
	}
	return errors.Wrap(os.WriteFile(path, raw, 0644), "Write JSON file")
}
