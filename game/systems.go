package game

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// GravitySystem advances the fall timer and records lock and clear results.
type GravitySystem struct {
	Play  ecs.Singleton[Play]
	Stats ecs.Singleton[Stats]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Play.Get().Session
	if session == nil {
		return
	}

	res, stepped := session.Advance(frame.DeltaTime)
	if !stepped {
		return
	}

	stats := s.Stats.Get()
	stats.GravitySteps++
	if !res.Locked {
		return
	}

	stats.PiecesLocked++
	stats.RowsCleared += res.Cleared
	if res.Cleared > 0 {
		stats.LastClear = res.Cleared
		stats.BestClear = max(stats.BestClear, res.Cleared)
	}
}

// InputSystem applies queued moves in order. A restart request is honored
// only once the session is over, and runs after the frame's systems.
type InputSystem struct {
	Play    ecs.Singleton[Play]
	Intents ecs.Singleton[Intents]
	Stats   ecs.Singleton[Stats]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	intents := s.Intents.Get()
	session := s.Play.Get().Session
	if session == nil {
		intents.Moves = intents.Moves[:0]
		intents.Restart = false
		return
	}

	stats := s.Stats.Get()
	for _, m := range intents.Moves {
		if session.Apply(m) {
			stats.MovesApplied++
		} else {
			stats.MovesRejected++
		}
	}
	intents.Moves = intents.Moves[:0]

	if intents.Restart {
		intents.Restart = false
		if session.Over() {
			frame.Commands.Defer(session.Restart)
		}
	}
}

// LossSystem copies the session's game-over flag into Status and counts
// each finished game once.
type LossSystem struct {
	Play   ecs.Singleton[Play]
	Status ecs.Singleton[Status]
	Stats  ecs.Singleton[Stats]
}

func (s *LossSystem) Execute(frame *ecs.UpdateFrame) {
	status := s.Status.Get()
	status.Frame++

	session := s.Play.Get().Session
	over := session != nil && session.Over()
	if over && !status.Over {
		s.Stats.Get().GamesFinished++
		status.GameOverFrame = status.Frame
	}
	status.Over = over
}

// AutoplaySystem queues a random move every Interval seconds and asks for
// a restart once the game is over.
type AutoplaySystem struct {
	Play    ecs.Singleton[Play]
	Intents ecs.Singleton[Intents]

	source   tetris.RandomSource
	interval float64
	elapsed  float64
}

var autoplayMoves = []tetris.Move{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.MoveDown,
	tetris.MoveRotate,
}

// NewAutoplaySystem creates an autoplayer drawing moves from source.
func NewAutoplaySystem(source tetris.RandomSource, interval float64) *AutoplaySystem {
	return &AutoplaySystem{source: source, interval: interval}
}

func (s *AutoplaySystem) Execute(frame *ecs.UpdateFrame) {
	intents := s.Intents.Get()
	if session := s.Play.Get().Session; session != nil && session.Over() {
		intents.Restart = true
		return
	}

	s.elapsed += frame.DeltaTime
	for s.interval > 0 && s.elapsed >= s.interval {
		s.elapsed -= s.interval
		intents.Push(autoplayMoves[s.source.IntN(len(autoplayMoves))])
	}
}
