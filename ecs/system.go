package ecs

// System is one step of a frame. Systems declare Singleton fields for the
// state they need; those fields are wired by Scheduler.Register. Other
// fields are private state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
