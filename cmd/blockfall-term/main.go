// Command blockfall-term plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence; 0 picks one at random.")
	fps := flag.Int("fps", 60, "Frames per second.")
	logPath := flag.String("log", "", "Write log output to this file while the game runs.")
	flag.Parse()

	if *fps < 1 {
		fmt.Fprintf(os.Stderr, "invalid -fps %d: must be at least 1\n", *fps)
		os.Exit(2)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	board := tetris.NewBoard(tetris.DefaultWidth, tetris.DefaultHeight)
	catalog := tetris.NewCatalog(nil)
	if *seed != 0 {
		catalog = tetris.NewSeededCatalog(*seed)
	}
	runtime := game.New(tetris.NewSession(board, catalog))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting blockfall-term at %d fps\n", *fps)
	run(ctx, screen, runtime, time.Second/time.Duration(*fps))
	screen.Fini()

	stats := runtime.Stats()
	log.SetOutput(os.Stderr)
	log.Printf("Exiting: %d games finished, %d pieces locked, %d rows cleared\n",
		stats.GamesFinished, stats.PiecesLocked, stats.RowsCleared)
}

func run(ctx context.Context, screen tcell.Screen, runtime *game.Runtime, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	wasOver := false

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, runtime) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			runtime.Step(now.Sub(lastTime).Seconds())
			lastTime = now

			over := runtime.Over()
			if over && !wasOver {
				stats := runtime.Stats()
				log.Printf("Game over: %d pieces locked, %d rows cleared so far\n", stats.PiecesLocked, stats.RowsCleared)
			}
			wasOver = over

			draw(screen, runtime.Frame(), runtime.Stats())
		}
	}
}
