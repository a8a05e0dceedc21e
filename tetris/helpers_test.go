package tetris_test

import "github.com/plus3/blockfall/tetris"

var (
	red   = tetris.Color{255, 0, 0}
	blue  = tetris.Color{0, 0, 255}
	green = tetris.Color{0, 255, 0}
)

// sequence is a RandomSource that replays fixed values, cycling when exhausted.
type sequence struct {
	values []int
	next   int
}

func newSequence(values ...int) *sequence {
	return &sequence{values: values}
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// catalogOf returns a catalog that always spawns kind painted with palette[colorIndex].
func catalogOf(kind tetris.ShapeKind, colorIndex int) *tetris.Catalog {
	return tetris.NewCatalog(newSequence(int(kind), colorIndex))
}

// lockCells locks single cells of color c.
func lockCells(board *tetris.Board, c tetris.Color, cells ...tetris.Cell) {
	for _, cell := range cells {
		dot := tetris.NewPiece(cell.X, cell.Y, tetris.ShapeO, [][]bool{{true}}, c)
		tetris.LockPiece(dot, board)
	}
}

// fillRow locks every cell of row y except the listed columns.
func fillRow(board *tetris.Board, y int, c tetris.Color, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < board.Width; x++ {
		if !skip[x] {
			lockCells(board, c, tetris.Cell{X: x, Y: y})
		}
	}
}
