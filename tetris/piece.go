package tetris

import "iter"

// Piece is the currently falling shape. X and Y are the board coordinates
// of the top-left corner of its pattern.
type Piece struct {
	X, Y  int
	Kind  ShapeKind
	Shape [][]bool
	Color Color

	// Rotation is carried for future use; no move transforms the pattern.
	Rotation int
}

// NewPiece creates a piece with a private copy of shape.
func NewPiece(x, y int, kind ShapeKind, shape [][]bool, c Color) *Piece {
	return &Piece{
		X:     x,
		Y:     y,
		Kind:  kind,
		Shape: copyShape(shape),
		Color: c,
	}
}

// Cells iterates over the absolute board coordinates of occupied cells.
func (p *Piece) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, row := range p.Shape {
			for j, filled := range row {
				if !filled {
					continue
				}
				if !yield(Cell{X: p.X + j, Y: p.Y + i}) {
					return
				}
			}
		}
	}
}

// Width returns the number of pattern columns.
func (p *Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the number of pattern rows.
func (p *Piece) Height() int {
	return len(p.Shape)
}

func copyShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i := range shape {
		out[i] = make([]bool, len(shape[i]))
		copy(out[i], shape[i])
	}
	return out
}
