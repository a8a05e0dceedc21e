// Package game runs a tetris.Session inside the ECS scheduler. Each frame
// applies gravity, then queued player moves, then records game-over state.
package game

import "github.com/plus3/blockfall/tetris"

// Play holds the running session.
type Play struct {
	Session *tetris.Session
}

// Intents collects player input between frames.
type Intents struct {
	Moves   []tetris.Move
	Restart bool
}

// Push queues a move for the next frame.
func (i *Intents) Push(m tetris.Move) {
	i.Moves = append(i.Moves, m)
}

// Stats accumulates counters across every game of the process.
type Stats struct {
	PiecesLocked  int
	RowsCleared   int
	GravitySteps  int
	MovesApplied  int
	MovesRejected int
	GamesFinished int
	LastClear     int
	BestClear     int
}

// Status mirrors the session's game-over flag for display.
type Status struct {
	Frame         int64
	Over          bool
	GameOverFrame int64
}
