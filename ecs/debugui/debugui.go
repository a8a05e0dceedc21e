// Package debugui renders Dear ImGui debug windows from inside an ECS
// scheduler pass. Windows are registered on the ImguiWindows singleton and
// drawn after every system has run for the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// ImguiItem is one window or widget group rendered every frame.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiWindows is the singleton list of items the ImguiSystem draws.
type ImguiWindows struct {
	Items []ImguiItem
}

// Add appends an item. Items render in the order they were added.
func (w *ImguiWindows) Add(name string, render func()) {
	w.Items = append(w.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState records whether ImGui wants the mouse or keyboard this
// frame. Game input handling should skip events ImGui has captured.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every registered render
// function until the frame's commands are flushed.
type ImguiSystem struct {
	Windows    ecs.Singleton[ImguiWindows]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	windows := i.Windows.Get()
	if windows == nil {
		return
	}
	for _, item := range windows.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the debugui singletons to storage and registers the
// ImguiSystem. Call it after the game systems so windows show the state
// those systems produced.
func Install(storage *ecs.Storage, scheduler *ecs.Scheduler) *ImguiWindows {
	windows := ecs.NewSingleton[ImguiWindows](storage)
	ecs.NewSingleton[ImguiInputState](storage)
	scheduler.Register(&ImguiSystem{})
	return windows.Get()
}
