package game_test

import "github.com/plus3/blockfall/tetris"

// sequence is a RandomSource that replays fixed values, cycling when exhausted.
type sequence struct {
	values []int
	next   int
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func sessionOf(board *tetris.Board, kind tetris.ShapeKind) *tetris.Session {
	return tetris.NewSession(board, tetris.NewCatalog(&sequence{values: []int{int(kind), 0}}))
}

func lock(board *tetris.Board, cells ...tetris.Cell) {
	for _, cell := range cells {
		dot := tetris.NewPiece(cell.X, cell.Y, tetris.ShapeO, [][]bool{{true}}, tetris.Palette()[0])
		tetris.LockPiece(dot, board)
	}
}
