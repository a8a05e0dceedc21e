package ecs

// Commands buffers work that must not happen while systems are running.
// The Scheduler flushes it once every system has executed for the frame.
type Commands struct {
	sets   []any
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function to run at flush time.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// SetSingleton queues a replacement of the singleton of component's type.
func (c *Commands) SetSingleton(component any) {
	c.sets = append(c.sets, component)
}

// Flush applies queued singleton writes, then runs deferred functions in
// the order they were queued, and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, component := range c.sets {
		storage.AddSingleton(component)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.sets = c.sets[:0]
	c.defers = c.defers[:0]
}
