package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game around a game.Runtime.
type Game struct {
	runtime *game.Runtime
	view    boardView
	imgui   *ecs.Singleton[debugui_ebiten.ImguiBackend]

	width   int
	height  int
	wasOver bool
}

var moveKeys = map[ebiten.Key]tetris.Move{
	ebiten.KeyLeft:  tetris.MoveLeft,
	ebiten.KeyRight: tetris.MoveRight,
	ebiten.KeyDown:  tetris.MoveDown,
	ebiten.KeyUp:    tetris.MoveRotate,
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.imgui == nil {
		g.readInput()
		g.runtime.Step(1.0 / float64(ebiten.TPS()))
	} else {
		g.imgui.Get().Frame(func() {
			if !g.keyboardCaptured() {
				g.readInput()
			}
			g.runtime.Step(1.0 / float64(ebiten.TPS()))
		})
	}

	over := g.runtime.Over()
	if over && !g.wasOver {
		stats := g.runtime.Stats()
		logGameOver(stats)
	}
	g.wasOver = over
	return nil
}

func (g *Game) readInput() {
	for key, move := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.runtime.Push(move)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runtime.RequestRestart()
	}
}

func (g *Game) keyboardCaptured() bool {
	state := ecs.GetSingleton[debugui.ImguiInputState](g.runtime.Storage())
	return state != nil && state.WantCaptureKeyboard
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.runtime.Frame()
	g.view.draw(screen, frame)

	if g.imgui != nil {
		g.imgui.Get().Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Get().Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}
