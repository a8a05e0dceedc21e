package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// RenderSystem draws the frame produced by the game systems.
type RenderSystem struct {
	Play   ecs.Singleton[game.Play]
	Stats  ecs.Singleton[game.Stats]
	Status ecs.Singleton[game.Status]
}

func toRaylib(c tetris.Color) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], 255)
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	view := s.Play.Get().Session.Frame()
	cell := int32(tetris.CellSize)
	grid := toRaylib(tetris.GridLine)

	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(tetris.Background))

	for y, row := range view.Cells {
		for x, c := range row {
			px, py := int32(x)*cell, int32(y)*cell
			if c != tetris.Background {
				rl.DrawRectangle(px, py, cell, cell, toRaylib(c))
			}
			rl.DrawRectangleLines(px, py, cell, cell, grid)
		}
	}

	stats := s.Stats.Get()
	textX := int32(view.Width)*cell + 20
	rl.DrawText("PIECES", textX, 20, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", stats.PiecesLocked), textX, 45, 20, rl.White)
	rl.DrawText("LINES", textX, 80, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", stats.RowsCleared), textX, 105, 20, rl.White)
	rl.DrawText("GAMES", textX, 140, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", stats.GamesFinished), textX, 165, 20, rl.White)

	if s.Status.Get().Over {
		mid := int32(view.Height) * cell / 2
		rl.DrawText("GAME OVER", 20, mid-10, 30, rl.Red)
		rl.DrawText("Press R to restart", 10, mid+30, 20, rl.White)
	}

	rl.EndDrawing()
}
