package tw

import (
	"io"
	"os"

	"ds_helper/frame"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// cellWidthMax represents maximum width of a frame column, longer cells are wrapped
const cellWidthMax = 40

// Writer represents table writer
type Writer struct {
	table.Writer
}

// New returns new configured table writer printing to stderr
func New() Writer {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput returns new configured table writer printing to <out>
func NewWithOutput(out io.Writer) Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	return Writer{tw}
}

// Render renders table and resets it
func (w Writer) Render() {
	w.Writer.Render()
	w.ResetHeaders()
	w.ResetRows()
	w.ResetFooters()
}

// RenderFrame renders up to <limit> rows of <f> with it's header, adding footer with total amount of rows if some were
// left out. Non-positive <limit> renders every row. Cells wider than cellWidthMax are wrapped.
func (w Writer) RenderFrame(f frame.Frame, limit int) {
	toRow := func(cells []string) table.Row {
		return lo.Map(cells, func(cell string, _ int) any { return cell })
	}
	w.SetColumnConfigs(lo.Times(f.Width(), func(idx int) table.ColumnConfig {
		return table.ColumnConfig{Number: idx + 1, WidthMax: cellWidthMax}
	}))
	if len(f.Columns) > 0 {
		w.AppendHeader(toRow(f.Columns))
	}
	rows := f.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		w.AppendFooter(table.Row{"Total rows", f.Len()})
	}
	for _, row := range rows {
		w.AppendRow(toRow(row))
	}
	w.Render()
}
