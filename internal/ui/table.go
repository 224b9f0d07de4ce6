// ABOUTME: Column-aligned table rendering for package listings
// ABOUTME: Widths are measured in terminal cells so wide names stay aligned

package ui

import (
	"fmt"
	"io"
	"strings"
)

const columnGap = 2

// Table is a simple left-aligned text table.
type Table struct {
	Headers []string
	Rows    [][]string
	// MaxWidth truncates the last column so rows fit; 0 means no limit.
	MaxWidth int
}

// Render writes the table to w, styling the header row with st.Header.
func (t Table) Render(w io.Writer, st Styles) error {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return nil
	}

	if len(t.Headers) > 0 {
		cells := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			cells[i] = st.Header.Render(h)
		}
		if _, err := fmt.Fprintln(w, t.line(cells, widths)); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, t.line(t.fit(row, widths), widths)); err != nil {
			return err
		}
	}
	return nil
}

func (t Table) columnWidths() []int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range t.Headers {
		widths[i] = VisibleWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], VisibleWidth(cell))
		}
	}
	return widths
}

// fit truncates the last cell of row when the table is wider than MaxWidth.
func (t Table) fit(row []string, widths []int) []string {
	if t.MaxWidth <= 0 || len(row) == 0 {
		return row
	}
	used := 0
	for i := 0; i < len(row)-1; i++ {
		used += widths[i] + columnGap
	}
	last := len(row) - 1
	if room := t.MaxWidth - used; VisibleWidth(row[last]) > room {
		out := append([]string(nil), row...)
		out[last] = Truncate(row[last], room)
		return out
	}
	return row
}

func (t Table) line(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(PadRight(cell, widths[i]+columnGap))
	}
	return strings.TrimRight(b.String(), " ")
}
