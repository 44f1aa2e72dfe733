package tetris

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Grid is the matrix of locked cells, indexed grid[row][col].
// It always holds exactly Rows rows of exactly Cols cells.
type Grid [][]Type

// NewGrid returns an empty grid.
func NewGrid() Grid {
	g := make(Grid, Rows)
	for r := range g {
		g[r] = emptyRow()
	}
	return g
}

func emptyRow() []Type {
	return make([]Type, Cols)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Type(nil), row...)
	}
	return out
}

// Collides reports whether shape placed with its top-left corner at (x, y)
// is invalid: an occupied sub-cell left of column 0, right of the last
// column, below the last row, or on a locked cell. Sub-cells above row 0
// are only checked against the walls.
func (g Grid) Collides(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, cell := range row {
			if cell == Empty {
				continue
			}
			nx, ny := x+c, y+r
			if nx < 0 || nx >= Cols || ny >= Rows {
				return true
			}
			if ny >= 0 && g[ny][nx] != Empty {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece's occupied sub-cells into the grid using the
// piece type as the cell value. Sub-cells above row 0 are dropped.
func (g Grid) Lock(p Piece) {
	for r, row := range p.Shape {
		for c, cell := range row {
			if cell == Empty {
				continue
			}
			nx, ny := p.X+c, p.Y+r
			if ny < 0 || ny >= Rows || nx < 0 || nx >= Cols {
				continue
			}
			g[ny][nx] = p.Type
		}
	}
}

// RowFull reports whether every cell in row r is occupied.
func (g Grid) RowFull(r int) bool {
	for _, cell := range g[r] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, inserting an empty row at the top for
// each one, and returns how many rows were removed. Rows are scanned from
// the bottom; after a removal the same index is checked again because the
// row above has shifted into it.
func (g Grid) ClearLines() int {
	cleared := 0
	for r := Rows - 1; r >= 0; {
		if !g.RowFull(r) {
			r--
			continue
		}
		copy(g[1:r+1], g[:r])
		g[0] = emptyRow()
		cleared++
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (g Grid) Filled() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}
