package export

import (
	"ds_helper/frame"
	"ds_helper/util/file"

	"github.com/cockroachdb/errors"
	"github.com/tealeg/xlsx/v2"
)

// sheetName represents name of the sheet new XLSX files are created with
const sheetName = "Sheet1"

// writeXLSX writes <f> to <path> as XLSX workbook. If <appendTo> is true, rows are added to the first sheet of an
// existing workbook.
func writeXLSX(path string, f frame.Frame, appendTo bool) error {
	var book *xlsx.File
	var sheet *xlsx.Sheet
	if appendTo && file.Exists(path) {
		var err error
		if book, err = xlsx.OpenFile(path); err != nil {
			return errors.Wrap(err, "Open XLSX file")
		}
		if len(book.Sheets) == 0 {
			return errors.Newf("XLSX file has no sheets: %v", path)
		}
		sheet = book.Sheets[0]
	} else {
		book = xlsx.NewFile()
		var err error
		if sheet, err = book.AddSheet(sheetName); err != nil {
			return errors.Wrap(err, "Add XLSX sheet")
		}
	}

	addRow := func(cells []string) {
		row := sheet.AddRow()
		for _, cellData := range cells {
			row.AddCell().SetString(cellData)
		}
	}
	if len(f.Columns) > 0 {
		addRow(f.Columns)
	}
	for _, cells := range f.Rows {
		addRow(cells)
	}

	return errors.Wrap(book.Save(path), "Save XLSX file")
}
