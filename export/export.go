package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ds_helper/frame"
	"ds_helper/util/file"
	"ds_helper/util/slice"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Format represents output file format
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	JSON Format = "json"
)

// Formats represents every supported format
var Formats = []Format{CSV, XLSX, JSON}

// Options represents export settings
type Options struct {
	Format Format
	Header bool // Write column names?
	Index  bool // Prepend 0-based row number column?
	Append bool // Append to existing file instead of overwriting it?
}

// UnknownFormatError represents error thrown if output format is not supported
type UnknownFormatError struct {
	Format Format
}

// Error is used to satisfy golang error interface
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("Unknown export format %q, should be one of: %v", e.Format, Formats)
}

// timestampLayout represents yyyymmdd-hhmmss
const timestampLayout = "20060102-150405"

// Timestamp returns <t> formatted as yyyymmdd-hhmmss, mainly used in file names
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// TimestampNow returns current time formatted as yyyymmdd-hhmmss
func TimestampNow() string {
	return Timestamp(time.Now())
}

// CfgOptions returns export settings from the program config
func (r repo) CfgOptions() Options {
	return Options{
		Format: Format(strings.ToLower(r.cfg.Export.Format)),
		Header: r.cfg.Export.Header,
		Index:  r.cfg.Export.Index,
		Append: r.cfg.Export.Append,
	}
}

// Write returns path of the file <f> is written to, using settings from the program config.
//
// See WriteWith.
func (r repo) Write(f frame.Frame, filename string) (string, error) {
	return r.WriteWith(f, filename, r.CfgOptions())
}

// WriteWith returns path of the file <f> is written to, in the data directory from the program config.
//
// The data directory is created if it does not exist. Extension of <opts>.Format is added to <filename> if it has none.
//
// Can return errors defined in this package: UnknownFormatError, ColumnsMismatchError.
func (r repo) WriteWith(f frame.Frame, filename string, opts Options) (string, error) {
	write, ok := writers[opts.Format]
	if !ok {
		return "", errors.Wrap(UnknownFormatError{Format: opts.Format}, "Export")
	}

	created, err := file.EnsureDir(r.cfg.Export.DataDir)
	if err != nil {
		return "", errors.Wrap(err, "Export")
	}
	if created {
		r.log.Debugf("Created data directory %v", r.cfg.Export.DataDir)
	}

	if filepath.Ext(filename) == "" {
		filename += "." + string(opts.Format)
	}
	path := filepath.Join(r.cfg.Export.DataDir, filename)
	if opts.Append && file.Exists(path) {
		r.log.Debugf("Appending %v rows to %v", f.Len(), path)
	}

	if err := write(path, prepare(f, opts), opts.Append); err != nil {
		return "", errors.Wrap(err, "Export")
	}

	r.log.Infof("Path created: %v", path)
	return path, nil
}

// writers represents file writer for every format. <f> is already prepared for writing.
var writers = map[Format]func(path string, f frame.Frame, appendTo bool) error{
	CSV:  writeCSV,
	XLSX: writeXLSX,
	JSON: writeJSON,
}

// prepare returns copy of <f> with header dropped or index column added as set in <opts>
func prepare(f frame.Frame, opts Options) frame.Frame {
	out := f.Clone()
	if opts.Index {
		out.Rows = lo.Map(out.Rows, func(row []string, idx int) []string {
			return slice.Prepend(row, strconv.Itoa(idx))
		})
		if len(out.Columns) > 0 {
			out.Columns = slice.Prepend(out.Columns, "")
		}
	}
	if !opts.Header {
		out.Columns = nil
	}
	return out
}

// openFlags returns flags to open file for writing, truncating it unless <appendTo> is true
func openFlags(appendTo bool) int {
	return os.O_WRONLY | os.O_CREATE | lo.Ternary(appendTo, os.O_APPEND, os.O_TRUNC)
}
