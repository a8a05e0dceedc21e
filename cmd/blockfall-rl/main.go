// Command blockfall-rl plays the game in a raylib window.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const sidePanelWidth = 200

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence; 0 picks one at random.")
	fps := flag.Int("fps", 60, "Target frames per second.")
	flag.Parse()

	if *fps < 1 {
		log.Fatalf("invalid -fps %d: must be at least 1", *fps)
	}

	board := tetris.BoardForResolution(tetris.ScreenWidth, tetris.ScreenHeight, tetris.CellSize)
	catalog := tetris.NewCatalog(nil)
	if *seed != 0 {
		catalog = tetris.NewSeededCatalog(*seed)
	}
	runtime := game.New(tetris.NewSession(board, catalog))
	runtime.Scheduler().Register(&RenderSystem{})

	rl.InitWindow(int32(tetris.ScreenWidth+sidePanelWidth), int32(tetris.ScreenHeight), "Blockfall")
	rl.SetTargetFPS(int32(*fps))
	defer rl.CloseWindow()

	log.Printf("Starting blockfall-rl at %d fps\n", *fps)

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		readInput(runtime)
		runtime.Step(deltaTime)
	}

	stats := runtime.Stats()
	log.Printf("Exiting: %d games finished, %d pieces locked, %d rows cleared\n",
		stats.GamesFinished, stats.PiecesLocked, stats.RowsCleared)
}

var moveKeys = []struct {
	key  int32
	move tetris.Move
}{
	{rl.KeyLeft, tetris.MoveLeft},
	{rl.KeyRight, tetris.MoveRight},
	{rl.KeyDown, tetris.MoveDown},
	{rl.KeyUp, tetris.MoveRotate},
}

func readInput(runtime *game.Runtime) {
	for _, mk := range moveKeys {
		if rl.IsKeyPressed(mk.key) {
			runtime.Push(mk.move)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		runtime.RequestRestart()
	}
}
