package bombtris

import "fmt"

// Grid is the matrix of settled blocks. A cell holds 0 when empty, otherwise the
// PieceType that settled there.
type Grid struct {
	rows, cols int
	cells      [][]int
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]int, rows),
	}
	for y := 0; y < rows; y++ {
		g.cells[y] = make([]int, cols)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) At(row, col int) int {
	return g.cells[row][col]
}

// Set writes a cell value. It is meant for building scenarios; the game itself only
// writes through Settle, Detonate and RemoveRows.
func (g *Grid) Set(row, col, value int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = value
	return nil
}

func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.rows, g.cols)
	for y := 0; y < g.rows; y++ {
		copy(clone.cells[y], g.cells[y])
	}
	return clone
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// IsValidMove reports whether shape fits with its top-left corner at (x, y).
//
// Cells above the board (negative row) only have to be inside the walls; this lets a
// piece spawn partly hidden, and Settle drops those cells so an overflowing stack ends
// the game instead of writing out of range.
func (g *Grid) IsValidMove(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, value := range row {
			if value == 0 {
				continue
			}
			col, line := x+c, y+r
			if col < 0 || col >= g.cols || line >= g.rows {
				return false
			}
			if line >= 0 && g.cells[line][col] != 0 {
				return false
			}
		}
	}
	return true
}

// Settle writes the piece into the grid. Cells still above row 0 are discarded.
func (g *Grid) Settle(p Piece) {
	for r, row := range p.Shape {
		for c, value := range row {
			if value == 0 || p.Y+r < 0 {
				continue
			}
			g.cells[p.Y+r][p.X+c] = value
		}
	}
}

// Detonate empties the 3x3 block centred on (x, y), skipping cells off the board.
func (g *Grid) Detonate(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			col, row := x+dx, y+dy
			if col >= 0 && col < g.cols && row >= 0 && row < g.rows {
				g.cells[row][col] = 0
			}
		}
	}
}
