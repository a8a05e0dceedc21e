package tetris

// FallInterval is the number of seconds between gravity steps.
const FallInterval = 0.3

// Move is a discrete player intent.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveDown
	MoveRotate
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case MoveRotate:
		return "rotate"
	}
	return "unknown"
}

// TickResult describes what a gravity step did.
type TickResult struct {
	Moved    bool
	Locked   bool
	Cleared  int
	GameOver bool
}

// Frame is a render snapshot: the board view with the active piece drawn in.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Color
	Over   bool
}

// Session is the state of one game: the board, the active piece and the
// catalog that supplies the next one.
type Session struct {
	Board   *Board
	Active  *Piece
	Catalog *Catalog

	// FallInterval overrides the package default when positive.
	FallInterval float64

	fallTime float64
	over     bool
}

// NewSession starts a game on board and spawns the first piece.
func NewSession(board *Board, catalog *Catalog) *Session {
	s := &Session{
		Board:        board,
		Catalog:      catalog,
		FallInterval: FallInterval,
	}
	s.spawn()
	return s
}

// Over reports whether the game has been lost.
func (s *Session) Over() bool {
	return s.over
}

// MoveLeft shifts the active piece one column left if the result is valid.
func (s *Session) MoveLeft() bool {
	return s.shift(-1, 0)
}

// MoveRight shifts the active piece one column right if the result is valid.
func (s *Session) MoveRight() bool {
	return s.shift(1, 0)
}

// SoftDrop moves the active piece one row down if the result is valid.
// It never locks the piece.
func (s *Session) SoftDrop() bool {
	return s.shift(0, 1)
}

// Rotate is accepted and ignored; pieces keep their spawn orientation.
func (s *Session) Rotate() bool {
	return false
}

// Apply dispatches a discrete move and reports whether the piece changed.
func (s *Session) Apply(m Move) bool {
	switch m {
	case MoveLeft:
		return s.MoveLeft()
	case MoveRight:
		return s.MoveRight()
	case MoveDown:
		return s.SoftDrop()
	case MoveRotate:
		return s.Rotate()
	}
	return false
}

// GravityTick moves the active piece down one row. When that is blocked
// the piece locks at its last valid position, full rows are cleared and
// the next piece spawns. The lock only happens if the attempted row is
// below the top of the grid; a piece still above it stays where it is.
func (s *Session) GravityTick() TickResult {
	if s.over {
		return TickResult{GameOver: true}
	}

	p := s.Active
	p.Y++
	if IsValidPosition(p, s.Board) {
		return TickResult{Moved: true}
	}

	descended := p.Y > 0
	p.Y--
	if !descended {
		return TickResult{}
	}

	LockPiece(p, s.Board)
	cleared := ClearRows(s.Board)
	s.spawn()
	if CheckLoss(s.Board) {
		s.over = true
	}

	return TickResult{
		Locked:   true,
		Cleared:  cleared,
		GameOver: s.over,
	}
}

// Advance accumulates dt seconds of elapsed time and runs one gravity step
// once the fall interval is reached. It reports whether a step ran.
func (s *Session) Advance(dt float64) (TickResult, bool) {
	if s.over {
		return TickResult{GameOver: true}, false
	}

	interval := s.FallInterval
	if interval <= 0 {
		interval = FallInterval
	}

	s.fallTime += dt
	if s.fallTime < interval {
		return TickResult{}, false
	}

	s.fallTime = 0
	return s.GravityTick(), true
}

// Restart clears the board and begins a new game with a fresh piece.
func (s *Session) Restart() {
	s.Board.Reset()
	s.fallTime = 0
	s.over = false
	s.spawn()
}

// Frame renders the board with the active piece overlaid.
func (s *Session) Frame() Frame {
	cells := s.Board.RenderView()
	if s.Active != nil {
		for cell := range s.Active.Cells() {
			if s.Board.InBounds(cell.X, cell.Y) {
				cells[cell.Y][cell.X] = s.Active.Color
			}
		}
	}

	return Frame{
		Width:  s.Board.Width,
		Height: s.Board.Height,
		Cells:  cells,
		Over:   s.over,
	}
}

func (s *Session) spawn() {
	s.Active = s.Catalog.Spawn(s.Board)
	if !IsValidPosition(s.Active, s.Board) {
		s.over = true
	}
}

func (s *Session) shift(dx, dy int) bool {
	if s.over {
		return false
	}

	p := s.Active
	p.X += dx
	p.Y += dy
	if !IsValidPosition(p, s.Board) {
		p.X -= dx
		p.Y -= dy
		return false
	}
	return true
}
