package tetris

// IsValidPosition reports whether every occupied cell of piece is inside the
// board columns, above the floor and not locked. Rows above the grid (y < 0)
// are allowed so a piece can overlap the spawn area before it is visible.
func IsValidPosition(piece *Piece, board *Board) bool {
	for cell := range piece.Cells() {
		if cell.X < 0 || cell.X >= board.Width || cell.Y >= board.Height {
			return false
		}
		if _, locked := board.Locked(cell.X, cell.Y); locked {
			return false
		}
	}
	return true
}

// LockPiece copies the occupied cells of piece into the board with the
// piece's color. The caller has already decided the piece cannot move down.
// Cells above the grid are dropped.
func LockPiece(piece *Piece, board *Board) {
	for cell := range piece.Cells() {
		if !board.InBounds(cell.X, cell.Y) {
			continue
		}
		board.set(cell.X, cell.Y, piece.Color)
	}
}

// CheckLoss reports whether any locked cell sits in the top row.
func CheckLoss(board *Board) bool {
	for cell := range board.Cells() {
		if cell.Y < 1 {
			return true
		}
	}
	return false
}
