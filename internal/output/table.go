package output

import (
	"fmt"
	"io"

	"github.com/dedene/termtable/internal/table"
)

// Table collects rows and renders them through the table engine.
type Table struct {
	w    io.Writer
	opts table.Options
	rows [][]any
}

// NewTable creates a new table with the given headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		w:    w,
		opts: table.Options{Head: headers},
		rows: make([][]any, 0),
	}
}

// AddRow adds a row to the table. Cells may be any value the engine
// accepts, including table.Rich.
func (t *Table) AddRow(cells ...any) {
	t.rows = append(t.rows, cells)
}

// AddStrings adds a row of plain strings.
func (t *Table) AddStrings(cells ...string) {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	t.rows = append(t.rows, row)
}

// Options returns the render options so callers can adjust them in place.
func (t *Table) Options() *table.Options {
	return &t.opts
}

// String renders the table without writing it.
func (t *Table) String() (string, error) {
	return table.Render(t.rows, t.opts)
}

// Render writes the table and a trailing newline to the underlying writer.
func (t *Table) Render() error {
	out, err := t.String()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.w, out)
	return err
}

// RowCount returns the number of rows added.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// TableBuilder provides a fluent interface for building tables.
type TableBuilder struct {
	table *Table
}

// NewTableBuilder creates a new table builder.
func NewTableBuilder(w io.Writer) *TableBuilder {
	return &TableBuilder{table: NewTable(w)}
}

// Headers sets the table headers.
func (b *TableBuilder) Headers(headers ...string) *TableBuilder {
	b.table.opts.Head = headers
	return b
}

// Row adds a row to the table.
func (b *TableBuilder) Row(cells ...any) *TableBuilder {
	b.table.AddRow(cells...)
	return b
}

// Chars sets the border glyphs.
func (b *TableBuilder) Chars(c table.Chars) *TableBuilder {
	b.table.opts.Chars = c.Override()
	return b
}

// Align sets per-column alignment.
func (b *TableBuilder) Align(aligns ...table.Align) *TableBuilder {
	b.table.opts.ColAligns = aligns
	return b
}

// HeadColor colors header cells.
func (b *TableBuilder) HeadColor(tokens ...string) *TableBuilder {
	b.table.opts.Style.Head = tokens
	return b
}

// BorderColor colors border glyphs.
func (b *TableBuilder) BorderColor(tokens ...string) *TableBuilder {
	b.table.opts.Style.Border = tokens
	return b
}

// Compact removes cell padding.
func (b *TableBuilder) Compact() *TableBuilder {
	b.table.opts.Style.Compact = true
	return b
}

// Balance sizes columns so spanning cells fit their content.
func (b *TableBuilder) Balance() *TableBuilder {
	b.table.opts.BalanceSpans = true
	return b
}

// Build returns the configured table.
func (b *TableBuilder) Build() *Table {
	return b.table
}

// Render writes the table immediately.
func (b *TableBuilder) Render() error {
	return b.table.Render()
}
