package game

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// Runtime owns the storage and scheduler for one session.
type Runtime struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	play    *ecs.Singleton[Play]
	intents *ecs.Singleton[Intents]
	stats   *ecs.Singleton[Stats]
	status  *ecs.Singleton[Status]
}

// New installs the game singletons for session and registers the game
// systems in order: gravity, input, loss.
func New(session *tetris.Session) *Runtime {
	storage := ecs.NewStorage()
	r := &Runtime{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		play:      ecs.NewSingleton[Play](storage, Play{Session: session}),
		intents:   ecs.NewSingleton[Intents](storage),
		stats:     ecs.NewSingleton[Stats](storage),
		status:    ecs.NewSingleton[Status](storage),
	}

	r.scheduler.Register(&GravitySystem{})
	r.scheduler.Register(&InputSystem{})
	r.scheduler.Register(&LossSystem{})
	return r
}

// Storage returns the backing storage.
func (r *Runtime) Storage() *ecs.Storage {
	return r.storage
}

// Scheduler returns the scheduler, for registering extra systems.
func (r *Runtime) Scheduler() *ecs.Scheduler {
	return r.scheduler
}

// Session returns the running session.
func (r *Runtime) Session() *tetris.Session {
	return r.play.Get().Session
}

// Autoplay registers an AutoplaySystem. Its moves are applied on the
// following frame.
func (r *Runtime) Autoplay(source tetris.RandomSource, interval float64) {
	r.scheduler.Register(NewAutoplaySystem(source, interval))
}

// Push queues a move for the next Step.
func (r *Runtime) Push(m tetris.Move) {
	r.intents.Get().Push(m)
}

// RequestRestart asks for a new game. It has no effect while the current
// game is still running.
func (r *Runtime) RequestRestart() {
	r.intents.Get().Restart = true
}

// Step runs one frame covering dt seconds.
func (r *Runtime) Step(dt float64) {
	r.scheduler.Once(dt)
}

// Frame returns the current render snapshot.
func (r *Runtime) Frame() tetris.Frame {
	return r.Session().Frame()
}

// Stats returns a copy of the accumulated counters.
func (r *Runtime) Stats() Stats {
	return *r.stats.Get()
}

// Status returns a copy of the displayed status.
func (r *Runtime) Status() Status {
	return *r.status.Get()
}

// Over reports whether the session has been lost.
func (r *Runtime) Over() bool {
	return r.Session().Over()
}
