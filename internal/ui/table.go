package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows in aligned, borderless columns with a bold header.
type Table struct {
	out  io.Writer
	t    *table.Table
	rows int
}

// NewTable creates a table writing to out with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	r := lipgloss.NewRenderer(out)
	header := r.NewStyle().Bold(true).PaddingRight(2)
	cell := r.NewStyle().PaddingRight(2)

	t := table.New().
		Headers(headers...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return &Table{out: out, t: t}
}

// Row appends a row of values.
func (t *Table) Row(values ...any) {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	t.t.Row(cells...)
	t.rows++
}

// Len returns the number of rows added.
func (t *Table) Len() int { return t.rows }

// Flush writes the rendered table.
func (t *Table) Flush() error {
	_, err := fmt.Fprintln(t.out, t.t.Render())
	return err
}
