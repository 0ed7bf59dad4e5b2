package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is a table column. A zero Width fits the widest cell.
type Column struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// Table renders rows of text under a header line.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given headers, all right aligned except
// the first.
func NewTable(headers ...string) *Table {
	t := &Table{}
	for i, h := range headers {
		align := lipgloss.Right
		if i == 0 {
			align = lipgloss.Left
		}
		t.columns = append(t.columns, Column{Header: h, Align: align})
	}
	return t
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// View renders the table.
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}
	t.fitWidths()

	var b strings.Builder
	for i, col := range t.columns {
		b.WriteString(renderCell(col.Header, col, headerStyle))
		if i < len(t.columns)-1 {
			b.WriteString("│")
		}
	}
	b.WriteString("\n")
	for i, col := range t.columns {
		b.WriteString(strings.Repeat("─", col.Width+2))
		if i < len(t.columns)-1 {
			b.WriteString("┼")
		}
	}
	for _, row := range t.rows {
		b.WriteString("\n")
		for i, col := range t.columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(renderCell(cell, col, cellStyle))
			if i < len(t.columns)-1 {
				b.WriteString("│")
			}
		}
	}
	return b.String()
}

// renderCell pads content to the column width. Padding adds one space on
// each side.
func renderCell(content string, col Column, style lipgloss.Style) string {
	return style.Width(col.Width + 2).Align(col.Align).Render(content)
}

func (t *Table) fitWidths() {
	for i := range t.columns {
		if t.columns[i].Width > 0 {
			continue
		}
		w := lipgloss.Width(t.columns[i].Header)
		for _, row := range t.rows {
			if i < len(row) {
				w = max(w, lipgloss.Width(row[i]))
			}
		}
		t.columns[i].Width = w
	}
}
