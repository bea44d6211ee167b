package bombtris

// FlashThreshold is the smallest clear that plays the flash before rows are removed.
const FlashThreshold = 3

// FullRows returns the indexes of completely filled rows, bottom row first.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := g.rows - 1; y >= 0; y-- {
		if g.isRowCompleted(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

func (g *Grid) isRowCompleted(row int) bool {
	for x := 0; x < g.cols; x++ {
		if g.cells[row][x] == 0 {
			return false
		}
	}
	return true
}

// RemoveRows drops the given rows and pads the top with as many empty rows. The
// remaining rows keep their relative order.
func (g *Grid) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < g.rows {
			remove[y] = true
		}
	}

	kept := make([][]int, 0, g.rows)
	for y := 0; y < g.rows; y++ {
		if !remove[y] {
			kept = append(kept, g.cells[y])
		}
	}

	cells := make([][]int, 0, g.rows)
	for i := 0; i < g.rows-len(kept); i++ {
		cells = append(cells, make([]int, g.cols))
	}
	g.cells = append(cells, kept...)
}

// LineClearScore is the reward for clearing n rows at once.
func LineClearScore(n int) int {
	return 100 * n * n
}
