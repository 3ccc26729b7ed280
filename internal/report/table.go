// Package report holds the tabular structures the recap tables are
// rendered from: ordered rows with named columns, no markup.
package report

import (
	"fmt"
	"strings"
)

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func New(title string, columns ...string) *Table {
	return &Table{Title: title, Columns: columns}
}

func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render formats the table as fixed-width text, column widths sized to
// the longest cell.
func (t *Table) Render() string {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		// Cells beyond the header columns have no width and are dropped.
		if len(cells) > len(widths) {
			cells = cells[:len(widths)]
		}
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
	}

	writeRow(t.Columns)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return sb.String()
}
