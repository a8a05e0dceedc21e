// Package tetris implements the game-state core of a falling-block puzzle:
// the board and its locked cells, pieces and the shape catalog, collision
// checks, locking, line clearing and the per-session movement rules.
//
// Nothing in this package is safe for concurrent use. Drivers call into a
// Session from a single goroutine.
package tetris

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	ScreenWidth  = 300
	ScreenHeight = 600
	CellSize     = 30

	DefaultWidth  = ScreenWidth / CellSize
	DefaultHeight = ScreenHeight / CellSize
)

// Cell is a grid coordinate. X is the column, Y the row, origin top-left.
type Cell struct {
	X, Y int
}

// cellKey packs a Cell into a single integer so it can key an intmap.
type cellKey int64

func keyOf(x, y int) cellKey {
	return cellKey(int64(int32(y))<<32 | int64(uint32(x)))
}

func (k cellKey) cell() Cell {
	return Cell{X: int(int32(uint32(k))), Y: int(int32(k >> 32))}
}

// Board owns the grid dimensions and the colors of locked cells.
// Cells absent from the locked mapping are empty.
type Board struct {
	Width  int
	Height int

	locked *intmap.Map[cellKey, Color]
}

// NewBoard creates an empty board. Every board gets its own locked mapping.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}

	return &Board{
		Width:  width,
		Height: height,
		locked: intmap.New[cellKey, Color](width * height),
	}
}

// BoardForResolution derives the grid size from a pixel resolution and cell size.
func BoardForResolution(pixelWidth, pixelHeight, cellSize int) *Board {
	if cellSize <= 0 {
		panic("cell size must be positive")
	}
	return NewBoard(pixelWidth/cellSize, pixelHeight/cellSize)
}

// InBounds reports whether (x, y) lies on the visible grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Locked returns the color of a locked cell.
func (b *Board) Locked(x, y int) (Color, bool) {
	return b.locked.Get(keyOf(x, y))
}

// CellIsEmpty is true iff (x, y) is in bounds and not locked.
func (b *Board) CellIsEmpty(x, y int) bool {
	return b.InBounds(x, y) && !b.locked.Has(keyOf(x, y))
}

// LockedCount returns the number of locked cells.
func (b *Board) LockedCount() int {
	return b.locked.Len()
}

// Cells iterates over locked cells in no particular order.
func (b *Board) Cells() iter.Seq2[Cell, Color] {
	return func(yield func(Cell, Color) bool) {
		for key, c := range b.locked.All() {
			if !yield(key.cell(), c) {
				return
			}
		}
	}
}

// RenderView returns a dense [y][x] grid of colors with Background where
// no cell is locked. The board is not modified.
func (b *Board) RenderView() [][]Color {
	view := make([][]Color, b.Height)
	for y := range view {
		row := make([]Color, b.Width)
		for x := range row {
			row[x] = Background
		}
		view[y] = row
	}

	for cell, c := range b.Cells() {
		if b.InBounds(cell.X, cell.Y) {
			view[cell.Y][cell.X] = c
		}
	}

	return view
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.locked.Clear()
}

func (b *Board) set(x, y int, c Color) {
	b.locked.Put(keyOf(x, y), c)
}

// remove deletes a locked cell and reports whether it was present.
func (b *Board) remove(x, y int) bool {
	return b.locked.Del(keyOf(x, y))
}
