package tetris

import (
	"cmp"
	"slices"
)

// ClearRows removes every full row and drops the rows above it. Each
// surviving cell moves down by the number of cleared rows beneath it, so
// split clears compact correctly. It returns the number of rows cleared.
func ClearRows(board *Board) int {
	view := board.RenderView()
	full := make([]bool, board.Height)

	cleared := 0
	for y := board.Height - 1; y >= 0; y-- {
		if !rowFull(view[y]) {
			continue
		}

		full[y] = true
		cleared++
		for x := 0; x < board.Width; x++ {
			board.remove(x, y)
		}
	}

	if cleared == 0 {
		return 0
	}

	// below[y] counts full rows strictly below y.
	below := make([]int, board.Height)
	count := 0
	for y := board.Height - 1; y >= 0; y-- {
		below[y] = count
		if full[y] {
			count++
		}
	}

	survivors := make([]Cell, 0, board.LockedCount())
	for cell := range board.Cells() {
		if board.InBounds(cell.X, cell.Y) && below[cell.Y] > 0 {
			survivors = append(survivors, cell)
		}
	}

	// Bottom rows first so a destination is never a cell that still has to move.
	slices.SortFunc(survivors, func(a, b Cell) int {
		return cmp.Compare(b.Y, a.Y)
	})

	for _, cell := range survivors {
		c, ok := board.Locked(cell.X, cell.Y)
		if !ok {
			continue
		}
		board.remove(cell.X, cell.Y)
		board.set(cell.X, cell.Y+below[cell.Y], c)
	}

	return cleared
}

func rowFull(row []Color) bool {
	for _, c := range row {
		if c == Background {
			return false
		}
	}
	return true
}
