package fetch

import (
	"io"
	"strconv"
	"strings"

	"ds_helper/frame"
	"ds_helper/util/slice"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTables is returned if HTML document has no <table> elements
var ErrNoTables = errors.New("No tables found")

// Browsers limit spans the same way
const (
	maxColSpan = 1000
	maxRowSpan = 65534
)

// cell represents table cell with text collapsed to single spaces
type cell struct {
	text    string
	header  bool
	colSpan int
	rowSpan int
}

// carried represents cell text which continues down to following rows
type carried struct {
	text string
	left int
}

// ReadHTML returns every table of HTML document read from <r>, in document order.
//
// Leading rows consisting only of <th> cells become column names, joined per column with a space if there are more
// than one. Tables without such rows get column names "0", "1" and so on. Cells spanning multiple columns or rows are
// repeated in every column or row they span. Nested tables are returned as separate tables and not inlined into the
// cells of the outer table.
//
// Returns ErrNoTables if document has no tables.
func ReadHTML(r io.Reader) ([]frame.Frame, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse HTML")
	}

	var tables []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if isElem(n, atom.Table) {
			tables = append(tables, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return lo.Map(tables, func(table *html.Node, _ int) frame.Frame {
		return buildFrame(gridOf(rowsOf(table)))
	}), nil
}

// rowsOf returns cells of every row belonging to <table> itself, not to tables nested in it
func rowsOf(table *html.Node) [][]cell {
	var rows [][]cell
	addRow := func(tr *html.Node) {
		var cells []cell
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if isElem(c, atom.Th) || isElem(c, atom.Td) {
				cells = append(cells, cell{
					text:    strings.Join(strings.Fields(textOf(c)), " "),
					header:  c.DataAtom == atom.Th,
					colSpan: spanAttr(c, "colspan", maxColSpan),
					rowSpan: spanAttr(c, "rowspan", maxRowSpan),
				})
			}
		}
		rows = append(rows, cells)
	}
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case isElem(c, atom.Tr):
			addRow(c)
		case isElem(c, atom.Thead), isElem(c, atom.Tbody), isElem(c, atom.Tfoot):
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if isElem(tr, atom.Tr) {
					addRow(tr)
				}
			}
		}
	}
	return rows
}

// gridOf returns texts of <rows> with spanned cells repeated, and amount of leading header rows
func gridOf(rows [][]cell) ([][]string, int) {
	var grid [][]string
	pending := map[int]carried{}
	headerRows := 0
	inHeader := true

	takePending := func(row []string, col int) ([]string, bool) {
		p, ok := pending[col]
		if !ok {
			return row, false
		}
		if p.left--; p.left == 0 {
			delete(pending, col)
		} else {
			pending[col] = p
		}
		return append(row, p.text), true
	}

	for _, cells := range rows {
		if len(cells) == 0 && len(pending) == 0 {
			continue
		}
		var row []string
		for _, c := range cells {
			for ok := true; ok; {
				row, ok = takePending(row, len(row))
			}
			for i := 0; i < c.colSpan; i++ {
				if c.rowSpan > 1 {
					pending[len(row)] = carried{text: c.text, left: c.rowSpan - 1}
				}
				row = append(row, c.text)
			}
		}
		// Cells carried past the last cell of this row
		for len(pending) > 0 {
			lastCol := lo.Max(lo.Keys(pending))
			if len(row) > lastCol {
				break
			}
			var ok bool
			if row, ok = takePending(row, len(row)); !ok {
				row = append(row, "")
			}
		}

		isHeader := len(cells) > 0 && lo.EveryBy(cells, func(c cell) bool { return c.header })
		if inHeader && isHeader {
			headerRows++
		} else {
			inHeader = false
		}
		grid = append(grid, row)
	}
	return grid, headerRows
}

// buildFrame returns frame of <grid> with the first <headerRows> rows turned into column names. Rows are padded to
// the same width.
func buildFrame(grid [][]string, headerRows int) frame.Frame {
	width := lo.Max(lo.Map(grid, func(row []string, _ int) int { return len(row) }))
	pad := func(row []string) []string {
		return append(row, slice.Filled("", width-len(row))...)
	}

	var columns []string
	if headerRows == 0 {
		columns = lo.Times(width, strconv.Itoa)
	} else {
		columns = make([]string, width)
		for col := range columns {
			var parts []string
			for _, row := range grid[:headerRows] {
				if col < len(row) && row[col] != "" && (len(parts) == 0 || parts[len(parts)-1] != row[col]) {
					parts = append(parts, row[col])
				}
			}
			columns[col] = strings.Join(parts, " ")
		}
	}

	return frame.Frame{
		Columns: columns,
		Rows: lo.Map(grid[headerRows:], func(row []string, _ int) []string {
			return pad(row)
		}),
	}
}

// textOf returns text of every text node under <n>, skipping nested tables, scripts and styles
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
			return
		case isElem(n, atom.Table), isElem(n, atom.Script), isElem(n, atom.Style):
			return
		case isElem(n, atom.Br):
			sb.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// spanAttr returns value of span attribute <key> of <n> between 1 and <max>. Missing or bad values mean 1.
func spanAttr(n *html.Node, key string, max int) int {
	for _, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		span, err := strconv.Atoi(strings.TrimSpace(attr.Val))
		if err != nil || span < 1 {
			return 1
		}
		return min(span, max)
	}
	return 1
}

// isElem returns true if <n> is element <a>
func isElem(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}
