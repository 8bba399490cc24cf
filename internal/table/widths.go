package table

import "sort"

// computeWidths returns one width per column, padding included. A cell
// spanning several columns is credited to its anchor column together with an
// estimate for every column it swallows: the caller's width for that column,
// or spanEstimate.
func computeWidths(g *grid, colWidths []int, m measurer) []int {
	numCols := g.numCols()
	widths := make([]int, numCols)

	for col := 0; col < numCols; col++ {
		longest := 0
		for _, row := range g.rows() {
			cell, ok := anchoredAt(row, col)
			if !ok {
				continue
			}
			w := m.width(cell.content)
			for sub := col + 1; sub < col+cell.colSpan; sub++ {
				if _, ok := anchoredAt(row, sub); ok {
					continue
				}
				if fw := fixedWidth(colWidths, sub); fw > 0 {
					w += fw
				} else {
					w += spanEstimate
				}
			}
			if w > longest {
				longest = w
			}
		}

		if fw := fixedWidth(colWidths, col); fw > 0 {
			widths[col] = fw + cellPadding
		} else {
			widths[col] = longest + cellPadding
		}
	}
	return widths
}

// computeBalancedWidths sizes columns from single-column cells first, then
// widens the columns under each spanning cell (narrowest spans first) until
// its content fits. Caller-fixed columns never grow; when every column under
// a span is fixed the content is truncated on render.
func computeBalancedWidths(g *grid, colWidths []int, pad, sep int, m measurer) []int {
	numCols := g.numCols()
	widths := make([]int, numCols)

	var spanning []placed
	for _, row := range g.rows() {
		for _, p := range row {
			if p.colSpan > 1 {
				spanning = append(spanning, p)
				continue
			}
			if w := m.width(p.content); w > widths[p.col] {
				widths[p.col] = w
			}
		}
	}
	for col := range widths {
		if fw := fixedWidth(colWidths, col); fw > 0 {
			widths[col] = fw
		}
		widths[col] += cellPadding
	}

	sort.SliceStable(spanning, func(i, j int) bool {
		return spanning[i].colSpan < spanning[j].colSpan
	})

	for _, p := range spanning {
		end := min(p.col+p.colSpan, numCols)
		interior := spannedSlot(widths, p.col, end, pad, sep) - 2*pad
		deficit := m.width(p.content) - interior
		if deficit <= 0 {
			continue
		}

		var flexible []int
		for col := p.col; col < end; col++ {
			if fixedWidth(colWidths, col) == 0 {
				flexible = append(flexible, col)
			}
		}
		if len(flexible) == 0 {
			continue
		}

		share := deficit / len(flexible)
		for i, col := range flexible {
			widths[col] += share
			if i == len(flexible)-1 {
				widths[col] += deficit - share*len(flexible)
			}
		}
	}
	return widths
}

// slotWidth is the rendered width of one column between separators. Widths
// carry the default padding of one space per side; a different pad shifts it.
func slotWidth(width, pad int) int {
	return max(width-cellPadding+2*pad, 0)
}

// spannedSlot is the width of columns [from, to) rendered as one cell,
// including the separators the span absorbs.
func spannedSlot(widths []int, from, to, pad, sep int) int {
	total := 0
	for col := from; col < to; col++ {
		total += slotWidth(widths[col], pad)
	}
	if to > from {
		total += (to - from - 1) * sep
	}
	return total
}
