// Command blockfall plays the game in an Ebiten window. Pass -debug for a
// Dear ImGui overlay with session and scheduler stats.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/ecs"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const debugPanelWidth = 420

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence; 0 picks one at random.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	scale := flag.Int("scale", 1, "Window scale factor.")
	flag.Parse()

	if *scale < 1 {
		log.Fatalf("invalid -scale %d: must be at least 1", *scale)
	}

	board := tetris.BoardForResolution(tetris.ScreenWidth, tetris.ScreenHeight, tetris.CellSize)
	catalog := tetris.NewCatalog(nil)
	if *seed != 0 {
		catalog = tetris.NewSeededCatalog(*seed)
	}
	runtime := game.New(tetris.NewSession(board, catalog))

	cell := tetris.CellSize * *scale
	width, height := board.Width*cell, board.Height*cell

	g := &Game{
		runtime: runtime,
		view:    boardView{cell: float32(cell)},
		width:   width,
		height:  height,
	}

	if *debug {
		width += debugPanelWidth
		backend := debugui_ebiten.NewImguiBackend("Blockfall", width, height)
		g.imgui = ecs.NewSingleton[debugui_ebiten.ImguiBackend](runtime.Storage(), backend)
		installDebugWindows(runtime, board.Width*cell)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	log.Printf("Starting blockfall: %dx%d board, cell %dpx, debug=%t\n", board.Width, board.Height, cell, *debug)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("game exited: %v", err)
	}

	stats := runtime.Stats()
	log.Printf("Exiting: %d games finished, %d pieces locked, %d rows cleared\n",
		stats.GamesFinished, stats.PiecesLocked, stats.RowsCleared)
}
