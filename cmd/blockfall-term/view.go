package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const (
	originX   = 1
	originY   = 1
	cellWidth = 2
)

var (
	borderStyle = tcell.StyleDefault.Foreground(toTcell(tetris.GridLine))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func toTcell(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

func draw(screen tcell.Screen, frame tetris.Frame, stats game.Stats) {
	screen.Clear()

	right := originX + frame.Width*cellWidth
	bottom := originY + frame.Height
	for y := originY - 1; y <= bottom; y++ {
		screen.SetContent(originX-1, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX - 1; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for y, row := range frame.Cells {
		for x, c := range row {
			sx := originX + x*cellWidth
			sy := originY + y
			if c == tetris.Background {
				screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault)
				screen.SetContent(sx+1, sy, '·', nil, borderStyle)
				continue
			}
			style := tcell.StyleDefault.Background(toTcell(c))
			screen.SetContent(sx, sy, ' ', nil, style)
			screen.SetContent(sx+1, sy, ' ', nil, style)
		}
	}

	panelX := right + 3
	drawText(screen, panelX, originY, textStyle, fmt.Sprintf("Pieces %d", stats.PiecesLocked))
	drawText(screen, panelX, originY+1, textStyle, fmt.Sprintf("Lines  %d", stats.RowsCleared))
	drawText(screen, panelX, originY+2, textStyle, fmt.Sprintf("Games  %d", stats.GamesFinished))
	drawText(screen, panelX, originY+4, textStyle, "←/→/↓ or h/l/j move")
	drawText(screen, panelX, originY+5, textStyle, "r restart, q quit")

	if frame.Over {
		drawText(screen, panelX, originY+7, alertStyle, "GAME OVER")
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
