package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

var keyMoves = map[tcell.Key]tetris.Move{
	tcell.KeyLeft:  tetris.MoveLeft,
	tcell.KeyRight: tetris.MoveRight,
	tcell.KeyDown:  tetris.MoveDown,
	tcell.KeyUp:    tetris.MoveRotate,
}

var runeMoves = map[rune]tetris.Move{
	'h': tetris.MoveLeft,
	'l': tetris.MoveRight,
	'j': tetris.MoveDown,
	'k': tetris.MoveRotate,
}

// handleKey queues the intent for ev and reports whether to keep running.
func handleKey(ev *tcell.EventKey, runtime *game.Runtime) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'r':
			runtime.RequestRestart()
		default:
			if m, ok := runeMoves[r]; ok {
				runtime.Push(m)
			}
		}
	default:
		if m, ok := keyMoves[ev.Key()]; ok {
			runtime.Push(m)
		}
	}
	return true
}
