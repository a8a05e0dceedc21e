package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

type boardView struct {
	cell float32
}

func (v boardView) draw(dst *ebiten.Image, frame tetris.Frame) {
	dst.Fill(tetris.Background.ToRGBA())

	for y, row := range frame.Cells {
		for x, c := range row {
			if c == tetris.Background {
				continue
			}
			vector.DrawFilledRect(dst, float32(x)*v.cell, float32(y)*v.cell, v.cell, v.cell, c.ToRGBA(), false)
		}
	}

	w := float32(frame.Width) * v.cell
	h := float32(frame.Height) * v.cell
	grid := tetris.GridLine.ToRGBA()
	for x := 0; x <= frame.Width; x++ {
		fx := float32(x) * v.cell
		vector.StrokeLine(dst, fx, 0, fx, h, 1, grid, false)
	}
	for y := 0; y <= frame.Height; y++ {
		fy := float32(y) * v.cell
		vector.StrokeLine(dst, 0, fy, w, fy, 1, grid, false)
	}

	if frame.Over {
		ebitenutil.DebugPrintAt(dst, "GAME OVER\nR to restart, Q to quit", 8, int(h/2))
	}
}

func logGameOver(stats game.Stats) {
	log.Printf("Game over: %d pieces locked, %d rows cleared so far\n", stats.PiecesLocked, stats.RowsCleared)
}
