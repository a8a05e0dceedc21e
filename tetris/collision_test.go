package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPosition(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	lockCells(board, red, tetris.Cell{X: 5, Y: 10})

	tests := []struct {
		name  string
		kind  tetris.ShapeKind
		x, y  int
		valid bool
	}{
		{"spawn position", tetris.ShapeO, 3, 0, true},
		{"left edge", tetris.ShapeO, 0, 5, true},
		{"past left edge", tetris.ShapeO, -1, 5, false},
		{"right edge", tetris.ShapeO, 8, 5, true},
		{"past right edge", tetris.ShapeO, 9, 5, false},
		{"on the floor", tetris.ShapeO, 4, 18, true},
		{"through the floor", tetris.ShapeO, 4, 19, false},
		{"above the grid", tetris.ShapeI, 2, -3, true},
		{"above the grid past the edge", tetris.ShapeI, 7, -3, false},
		{"onto a locked cell", tetris.ShapeO, 4, 9, false},
		{"next to a locked cell", tetris.ShapeO, 6, 9, true},
		{"empty corner of pattern over locked cell", tetris.ShapeT, 5, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece := tetris.NewPiece(tt.x, tt.y, tt.kind, tetris.Shape(tt.kind), blue)
			assert.Equal(t, tt.valid, tetris.IsValidPosition(piece, board))
		})
	}
}

func TestIsValidPositionIsPure(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	piece := tetris.NewPiece(9, 0, tetris.ShapeO, tetris.Shape(tetris.ShapeO), blue)

	assert.False(t, tetris.IsValidPosition(piece, board))
	assert.Equal(t, 9, piece.X)
	assert.Equal(t, 0, piece.Y)
	assert.Equal(t, 0, board.LockedCount())
}

func TestLockPieceWritesColor(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	piece := tetris.NewPiece(3, 17, tetris.ShapeT, tetris.Shape(tetris.ShapeT), green)

	tetris.LockPiece(piece, board)

	view := board.RenderView()
	count := 0
	for cell := range piece.Cells() {
		assert.Equal(t, green, view[cell.Y][cell.X])
		count++
	}
	assert.Equal(t, 4, count)
	assert.Equal(t, 4, board.LockedCount())
	assert.Equal(t, tetris.Background, view[17][3], "empty pattern cell stays background")
}

func TestLockPieceDropsCellsAboveGrid(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	piece := tetris.NewPiece(0, -1, tetris.ShapeJ, tetris.Shape(tetris.ShapeJ), red)

	tetris.LockPiece(piece, board)

	assert.Equal(t, 3, board.LockedCount())
	for cell := range board.Cells() {
		assert.Equal(t, 0, cell.Y)
	}
}

func TestCheckLoss(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		assert.False(t, tetris.CheckLoss(tetris.NewBoard(10, 20)))
	})

	t.Run("second row", func(t *testing.T) {
		board := tetris.NewBoard(10, 20)
		lockCells(board, red, tetris.Cell{X: 4, Y: 1}, tetris.Cell{X: 0, Y: 19})
		assert.False(t, tetris.CheckLoss(board))
	})

	t.Run("top row", func(t *testing.T) {
		board := tetris.NewBoard(10, 20)
		lockCells(board, red, tetris.Cell{X: 4, Y: 1}, tetris.Cell{X: 9, Y: 0})
		assert.True(t, tetris.CheckLoss(board))
	})
}
