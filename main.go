package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"cobra-chase/autopilot"
	"cobra-chase/game"
	"cobra-chase/game/manager"
	"cobra-chase/game/types"
	"cobra-chase/session"
	"cobra-chase/stats"
)

func main() {
	games := flag.Int("games", 5, "Number of autopilot games to play")
	width := flag.Int("width", types.DefaultWidth, "Grid width in cells, border included")
	height := flag.Int("height", types.DefaultHeight, "Grid height in cells, border included")
	canvas := flag.Int("canvas", 600, "Virtual board width in pixels")
	speed := flag.Int("speed", 1, "Tick speed multiplier (higher = faster)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Food placement seed")
	statsFile := flag.String("stats", "data/stats.json", "Score history file (empty disables)")
	flag.Parse()

	if *speed < 1 {
		*speed = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	history := stats.NewGameStats()
	if *statsFile != "" {
		if err := history.Load(*statsFile); err != nil {
			log.Printf("Could not load stats, starting fresh: %v", err)
		}
	}

	grid := types.Grid{Width: *width, Height: *height}
	if !grid.HasInterior() {
		log.Fatalf("Grid %dx%d has no cells inside the wall; width and height must be at least 3", grid.Width, grid.Height)
	}
	g := game.NewGame(grid, manager.NewRandSource(*seed))
	pilot := autopilot.New(*canvas)
	logger := log.New(os.Stderr, "cobra ", log.LstdFlags)

	for i := 0; i < *games && ctx.Err() == nil; i++ {
		score, err := play(ctx, g, pilot, history, logger, *speed)
		if err != nil && ctx.Err() == nil {
			log.Printf("Game %d aborted: %v", i+1, err)
			continue
		}
		log.Printf("Game %d/%d finished with score %d", i+1, *games, score)
	}

	if *statsFile != "" {
		if err := history.Save(*statsFile); err != nil {
			log.Printf("Error saving stats: %v", err)
		}
	}
	log.Printf("Played %d games: best %d, average %.2f, median %.1f",
		history.GamesPlayed(), history.MaxScore(), history.AverageScore(), history.MedianScore())
}

// play runs one session to game over, steering with the autopilot
func play(ctx context.Context, g *game.Game, pilot *autopilot.Pilot, rec session.Recorder, logger *log.Logger, speed int) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan game.State, 1)
	sess := session.New(g,
		session.WithRecorder(rec),
		session.WithLogger(logger),
		session.WithDelay(func(length int) time.Duration {
			return game.TickDelay(length) / time.Duration(speed)
		}),
		session.WithRender(func(st game.State) {
			// keep only the latest frame
			select {
			case frames <- st:
			default:
				select {
				case <-frames:
				default:
				}
				frames <- st
			}
		}),
	)

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(ctx) }()

	if err := sess.Send(ctx, game.StartGame{}); err != nil {
		return 0, err
	}

	for {
		select {
		case err := <-errc:
			return sess.Snapshot().Score(), err
		case st := <-frames:
			if st.Over {
				cancel()
				<-errc
				return st.Score(), nil
			}
			if tap, ok := pilot.Decide(st); ok {
				ev := game.UpdateDirection{Tap: tap, CanvasWidth: pilot.CanvasWidth()}
				if err := sess.Send(ctx, ev); err != nil {
					return st.Score(), err
				}
			}
		}
	}
}
