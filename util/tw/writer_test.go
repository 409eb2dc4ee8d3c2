package tw

import (
	"bytes"
	"strings"
	"testing"

	"ds_helper/frame"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/zenizh/go-capturer"
)

func TestNew(t *testing.T) {
	out := capturer.CaptureStderr(func() {
		w := New()
		w.AppendRow(table.Row{"Test"})
		w.Render()
	})
	assert.Contains(t, out, "Test")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.AppendHeader(table.Row{"Column 1"})
	w.AppendRow(table.Row{"Data 1"})
	w.AppendFooter(table.Row{"Footer 1"})
	w.Render()

	w.AppendHeader(table.Row{"Column 2"})
	w.AppendRow(table.Row{"Data 2"})
	w.Render()

	out := buf.String()
	assert.Contains(t, out, strings.ToUpper("Column 1"))
	assert.Contains(t, out, "Data 1")
	assert.Contains(t, out, strings.ToUpper("Footer 1"))
	assert.Contains(t, out, strings.ToUpper("Column 2"))
	assert.Contains(t, out, "Data 2")
	assert.Exactly(t, 1, strings.Count(out, "Data 1"), "should reset rows after render")
}

func TestRenderFrame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	f := frame.Frame{
		Columns: []string{"Raw name", "Stripped name"},
		Rows:    [][]string{{"Acme Corp", "Acme"}, {"Globex Inc", "Globex"}, {"Initech LLC", "Initech"}},
	}
	w.RenderFrame(f, 2)

	out := buf.String()
	assert.Contains(t, out, "RAW NAME", "should render header")
	assert.Contains(t, out, "Acme Corp", "should render rows within limit")
	assert.Contains(t, out, "Globex", "should render rows within limit")
	assert.NotContains(t, out, "Initech", "should not render rows over limit")
	assert.Contains(t, out, "TOTAL ROWS", "should render footer if rows were left out")

	buf.Reset()
	w.RenderFrame(f, 0)
	assert.Contains(t, buf.String(), "Initech", "should render every row without limit")
	assert.NotContains(t, buf.String(), "TOTAL ROWS", "should not render footer")
}

func TestRenderFrameWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	long := strings.Repeat("x", cellWidthMax*2)
	f := frame.Frame{
		Columns: []string{"raw", "normalized"},
		Rows:    [][]string{{long, "Acme"}},
	}
	w.RenderFrame(f, 0)

	out := buf.String()
	assert.NotContains(t, out, strings.Repeat("x", cellWidthMax+1), "should wrap long cells of any column")
	assert.Contains(t, out, strings.Repeat("x", cellWidthMax), "should fill column up to the limit")
	assert.Contains(t, out, "Acme", "should render short cells")
}
