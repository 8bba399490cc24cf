package table

import (
	"strings"

	"github.com/dedene/termtable/internal/color"
)

// renderer holds everything shared by the lines of one table.
type renderer struct {
	chars  Chars
	widths []int
	pad    int
	sep    int
	m      measurer
	opts   *Options
	head   *color.Style
	border *color.Style
}

// renderRow turns one row of placed cells into a line. covered lists the
// columns taken by row spans from earlier rows; they render blank across the
// covering cell's full width.
func (r *renderer) renderRow(cells []placed, covered map[int]int, isHeader bool) (string, error) {
	var sb strings.Builder

	left, err := r.paint(r.chars.Left)
	if err != nil {
		return "", err
	}
	middle, err := r.paint(r.chars.Middle)
	if err != nil {
		return "", err
	}
	right, err := r.paint(r.chars.Right)
	if err != nil {
		return "", err
	}

	sb.WriteString(left)
	numCols := len(r.widths)
	for col := 0; col < numCols; {
		if col > 0 {
			sb.WriteString(middle)
		}

		if cell, ok := anchoredAt(cells, col); ok {
			end := min(col+cell.colSpan, numCols)
			text, err := r.renderCell(cell, col, end, isHeader)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
			col = end
			continue
		}

		end := col + 1
		if span, ok := covered[col]; ok {
			end = min(col+span, numCols)
		}
		sb.WriteString(strings.Repeat(" ", spannedSlot(r.widths, col, end, r.pad, r.sep)))
		col = end
	}
	sb.WriteString(right)

	return sb.String(), nil
}

// renderCell pads and aligns a cell over columns [from, to) and applies its style.
func (r *renderer) renderCell(cell placed, from, to int, isHeader bool) (string, error) {
	slot := spannedSlot(r.widths, from, to, r.pad, r.sep)
	interior := max(slot-2*r.pad, 0)

	text := r.m.fit(cell.content, interior, r.opts.align(from))

	style := cell.style
	if style.IsZero() && isHeader {
		style = r.head
	}
	text, err := color.Apply(text, style)
	if err != nil {
		return "", err
	}

	padding := strings.Repeat(" ", r.pad)
	return padding + text + padding, nil
}

// paint colors a border glyph with the border style.
func (r *renderer) paint(glyph string) (string, error) {
	if glyph == "" {
		return "", nil
	}
	return color.Apply(glyph, r.border)
}
