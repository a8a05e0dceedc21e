package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	board := tetris.NewBoard(tetris.DefaultWidth, tetris.DefaultHeight)

	assert.Equal(t, 10, board.Width)
	assert.Equal(t, 20, board.Height)
	assert.Equal(t, 0, board.LockedCount())

	view := board.RenderView()
	require.Len(t, view, 20)
	for y, row := range view {
		require.Len(t, row, 10, "row %d", y)
		for x, c := range row {
			assert.Equal(t, tetris.Background, c, "cell (%d,%d)", x, y)
		}
	}
}

func TestBoardForResolution(t *testing.T) {
	board := tetris.BoardForResolution(tetris.ScreenWidth, tetris.ScreenHeight, tetris.CellSize)
	assert.Equal(t, tetris.DefaultWidth, board.Width)
	assert.Equal(t, tetris.DefaultHeight, board.Height)

	board = tetris.BoardForResolution(310, 620, 30)
	assert.Equal(t, 10, board.Width)
	assert.Equal(t, 20, board.Height)
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	assert.Panics(t, func() { tetris.NewBoard(0, 20) })
	assert.Panics(t, func() { tetris.NewBoard(10, -1) })
	assert.Panics(t, func() { tetris.BoardForResolution(300, 600, 0) })
}

func TestBoardsDoNotShareLockedCells(t *testing.T) {
	a := tetris.NewBoard(10, 20)
	b := tetris.NewBoard(10, 20)

	lockCells(a, red, tetris.Cell{X: 1, Y: 1})

	assert.Equal(t, 1, a.LockedCount())
	assert.Equal(t, 0, b.LockedCount())
}

func TestCellIsEmpty(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	lockCells(board, red, tetris.Cell{X: 0, Y: 0}, tetris.Cell{X: 4, Y: 7})

	tests := []struct {
		name  string
		x, y  int
		empty bool
	}{
		{"free cell", 5, 5, true},
		{"locked origin", 0, 0, false},
		{"locked interior", 4, 7, false},
		{"left of grid", -1, 5, false},
		{"right of grid", 10, 5, false},
		{"below grid", 3, 20, false},
		{"above grid", 3, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, board.CellIsEmpty(tt.x, tt.y))
		})
	}
}

func TestLockedAndCells(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	lockCells(board, blue, tetris.Cell{X: 2, Y: 3})
	lockCells(board, green, tetris.Cell{X: 9, Y: 19})

	c, ok := board.Locked(2, 3)
	require.True(t, ok)
	assert.Equal(t, blue, c)

	_, ok = board.Locked(3, 2)
	assert.False(t, ok)

	seen := map[tetris.Cell]tetris.Color{}
	for cell, c := range board.Cells() {
		seen[cell] = c
	}
	assert.Equal(t, map[tetris.Cell]tetris.Color{
		{X: 2, Y: 3}:  blue,
		{X: 9, Y: 19}: green,
	}, seen)
}

func TestRenderViewIsASnapshot(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	lockCells(board, red, tetris.Cell{X: 0, Y: 0})

	view := board.RenderView()
	assert.Equal(t, red, view[0][0])

	view[0][0] = tetris.Background
	view[5][5] = blue

	c, ok := board.Locked(0, 0)
	assert.True(t, ok)
	assert.Equal(t, red, c)
	assert.True(t, board.CellIsEmpty(5, 5))
}

func TestBoardReset(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	fillRow(board, 19, red)
	require.Equal(t, 10, board.LockedCount())

	board.Reset()

	assert.Equal(t, 0, board.LockedCount())
	assert.True(t, board.CellIsEmpty(0, 19))
}

func TestColorToRGBA(t *testing.T) {
	rgba := tetris.Color{1, 2, 3}.ToRGBA()
	assert.Equal(t, uint8(1), rgba.R)
	assert.Equal(t, uint8(2), rgba.G)
	assert.Equal(t, uint8(3), rgba.B)
	assert.Equal(t, uint8(255), rgba.A)
}
