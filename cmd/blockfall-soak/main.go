// Command blockfall-soak plays random games as fast as possible and prints
// a timing and memory report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const (
	frameStep    = 1.0 / 60.0
	moveInterval = 0.05
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration of the run.")
	seed := flag.Uint64("seed", 0, "Seed for pieces and moves; 0 picks one at random.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Printf("Starting soak run with seed %d...\n", *seed)

	board := tetris.NewBoard(tetris.DefaultWidth, tetris.DefaultHeight)
	session := tetris.NewSession(board, tetris.NewSeededCatalog(*seed))
	r := game.New(session)
	r.Autoplay(rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)), moveInterval)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Width:          board.Width,
		Height:         board.Height,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			r.Step(frameStep)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(float64(totalUpdates) * frameStep * float64(time.Second))
	report.UpdateTime.Finalize()
	report.Game = r.Stats()
	report.Systems = r.Scheduler().GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Printf("Run finished: %d games, %d pieces locked, %d rows cleared\n",
		report.Game.GamesFinished, report.Game.PiecesLocked, report.Game.RowsCleared)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
