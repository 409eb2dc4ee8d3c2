package export

import (
	"encoding/csv"
	"os"

	"ds_helper/frame"

	"github.com/cockroachdb/errors"
)

// writeCSV writes <f> to <path> as comma separated values
func writeCSV(path string, f frame.Frame, appendTo bool) (err error) {
	out, err := os.OpenFile(path, openFlags(appendTo), 0644)
	if err != nil {
		return errors.Wrap(err, "Open CSV file")
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = errors.Wrap(closeErr, "Close CSV file")
		}
	}()

	w := csv.NewWriter(out)
	if len(f.Columns) > 0 {
		if err := w.Write(f.Columns); err != nil {
			return errors.Wrap(err, "Write CSV header")
		}
	}
	if err := w.WriteAll(f.Rows); err != nil {
		return errors.Wrap(err, "Write CSV rows")
	}
	return nil
}
