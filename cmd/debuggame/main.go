// Command debuggame plays one episode and prints the board after every turn,
// with the length of the route the strategy chose.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/brensch/pathsnake/config"
	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/logging"
	"github.com/brensch/pathsnake/selfplay"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.MaxTurns == 0 {
		// Keep the printed trace bounded.
		cfg.MaxTurns = 10 * cfg.Width * cfg.Height
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	logger := logging.New(os.Stderr, cfg.LogFormat, level)

	seed := cfg.ResolveSeed()
	eng, rng, err := selfplay.NewEpisode(cfg, seed, logger)
	if err != nil {
		log.Fatalf("Failed to start episode: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Printf("Tracing %dx%d episode, strategy %s, seed %d", cfg.Width, cfg.Height, cfg.Strategy, seed)
	start := eng.Frame()
	fmt.Printf("Turn %3d | start\n%s\n", start.Turn, game.Render(start))

	prevScore := 0
	onFrame := func(f *game.Frame) {
		note := ""
		if f.Score > prevScore {
			note = " | ate"
			prevScore = f.Score
		}
		fmt.Printf("Turn %3d | %-5s | score %d | len %d | plan %d steps%s\n%s\n",
			f.Turn, eng.Heading(), f.Score, len(f.Body), f.PlanSteps, note, game.Render(f))
	}

	res, err := selfplay.PlayEpisode(ctx, eng, rng, selfplay.Config{MaxTurns: cfg.MaxTurns}, onFrame)
	if err != nil {
		log.Fatalf("Episode aborted: %v", err)
	}

	line := strings.Repeat("=", 2*cfg.Width+16)
	fmt.Println(line)
	fmt.Printf("  %s\n", res)
	fmt.Printf("  took %s\n", res.Duration.Round(time.Microsecond))
	fmt.Println(line)
}
