package table

// headerRow is the anchor row of header cells.
const headerRow = -1

// placed is a normalized cell anchored on the grid.
type placed struct {
	row int
	col int
	cellSpec
}

// covers reports whether the cell's span includes (row, col).
func (p placed) covers(row, col int) bool {
	return row >= p.row && row < p.row+p.rowSpan &&
		col >= p.col && col < p.col+p.colSpan
}

// occupancy records which columns of each row are taken. Rows are added as
// cells with row spans reach them.
type occupancy map[int]map[int]bool

func (o occupancy) occupied(row, col int) bool {
	return o[row][col]
}

func (o occupancy) mark(p placed) {
	for r := p.row; r < p.row+p.rowSpan; r++ {
		cols := o[r]
		if cols == nil {
			cols = make(map[int]bool)
			o[r] = cols
		}
		for c := p.col; c < p.col+p.colSpan; c++ {
			cols[c] = true
		}
	}
}

// placeRow lays out one row left to right. Columns already occupied by a
// row span from above are skipped before each cell is anchored, and every
// placed cell marks its whole span.
func placeRow(cells []any, row int, occ occupancy) []placed {
	out := make([]placed, 0, len(cells))
	col := 0
	for _, cell := range cells {
		for occ.occupied(row, col) {
			col++
		}

		spec, skip := normalize(cell)
		if skip {
			col++
			continue
		}

		p := placed{row: row, col: col, cellSpec: spec}
		occ.mark(p)
		out = append(out, p)
		col += spec.colSpan
	}
	return out
}

// grid is the laid-out table: an optional header row followed by the body.
type grid struct {
	header []placed
	body   [][]placed
}

func layoutGrid(head []string, rows [][]any) *grid {
	occ := make(occupancy)
	g := &grid{body: make([][]placed, len(rows))}

	if len(head) > 0 {
		cells := make([]any, len(head))
		for i, h := range head {
			cells[i] = h
		}
		g.header = placeRow(cells, headerRow, occ)
	}

	for i, row := range rows {
		g.body[i] = placeRow(row, i, occ)
	}
	return g
}

// rows returns the header (when present) followed by every body row.
func (g *grid) rows() [][]placed {
	all := make([][]placed, 0, len(g.body)+1)
	if g.header != nil {
		all = append(all, g.header)
	}
	return append(all, g.body...)
}

// numCols is the furthest column any cell reaches.
func (g *grid) numCols() int {
	n := 0
	for _, row := range g.rows() {
		for _, p := range row {
			if end := p.col + p.colSpan; end > n {
				n = end
			}
		}
	}
	return n
}

// covered maps, for body row r, the anchor column of every cell from an
// earlier row whose row span reaches r to that cell's column span.
func (g *grid) covered(r int) map[int]int {
	var out map[int]int
	for _, row := range g.rows() {
		for _, p := range row {
			if p.row < r && p.covers(r, p.col) {
				if out == nil {
					out = make(map[int]int)
				}
				out[p.col] = p.colSpan
			}
		}
	}
	return out
}

func anchoredAt(row []placed, col int) (placed, bool) {
	for _, p := range row {
		if p.col == col {
			return p, true
		}
	}
	return placed{}, false
}
