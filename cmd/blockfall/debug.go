package main

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

const fillHistorySize = 240

// fillChart keeps a ring of locked-cell counts for plotting.
type fillChart struct {
	samples []float32
	offset  int
}

func (c *fillChart) record(v int) {
	c.samples[c.offset] = float32(v)
	c.offset = (c.offset + 1) % len(c.samples)
}

// ordered returns the samples oldest first.
func (c *fillChart) ordered() []float32 {
	out := make([]float32, len(c.samples))
	n := copy(out, c.samples[c.offset:])
	copy(out[n:], c.samples[:c.offset])
	return out
}

func installDebugWindows(runtime *game.Runtime, panelX int) {
	implot.CreateContext()

	storage := runtime.Storage()
	windows := debugui.Install(storage, runtime.Scheduler())

	chart := &fillChart{samples: make([]float32, fillHistorySize)}
	x := float32(panelX + 10)

	windows.Add("session", func() {
		session := runtime.Session()
		stats := runtime.Stats()
		status := runtime.Status()
		chart.record(session.Board.LockedCount())

		imgui.SetNextWindowPosV(imgui.NewVec2(x, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(400, 320), imgui.CondOnce)
		if imgui.BeginV("Session", nil, 0) {
			if session.Active != nil {
				imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", session.Active.Kind, session.Active.X, session.Active.Y))
			}
			imgui.Text(fmt.Sprintf("Locked cells: %d", session.Board.LockedCount()))
			imgui.Text(fmt.Sprintf("Fall interval: %.2fs", session.FallInterval))
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Pieces locked: %d", stats.PiecesLocked))
			imgui.Text(fmt.Sprintf("Rows cleared: %d (last %d, best %d)", stats.RowsCleared, stats.LastClear, stats.BestClear))
			imgui.Text(fmt.Sprintf("Moves: %d applied, %d rejected", stats.MovesApplied, stats.MovesRejected))
			imgui.Text(fmt.Sprintf("Games finished: %d", stats.GamesFinished))
			if status.Over {
				imgui.Text(fmt.Sprintf("Game over since frame %d", status.GameOverFrame))
			}

			samples := chart.ordered()
			if implot.BeginPlotV("Board fill", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Cells", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("locked", &samples[0], int32(len(samples)))
				implot.EndPlot()
			}
		}
		imgui.End()
	})

	perf := debugui.NewPerformanceStats(storage, runtime.Scheduler(), 120)
	windows.Add("performance", func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(x, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(400, 260), imgui.CondOnce)
		perf.Render()
	})

	inspector := debugui.NewSingletonInspector(storage,
		reflect.TypeFor[debugui.ImguiWindows](),
		reflect.TypeFor[debugui_ebiten.ImguiBackend](),
	)
	windows.Add("singletons", inspector.Render)
}
