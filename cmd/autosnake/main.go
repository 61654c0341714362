// Command autosnake watches a snake steer itself to targets with a path
// search, either in the terminal or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/pathsnake/config"
	"github.com/brensch/pathsnake/feed"
	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/logging"
	"github.com/brensch/pathsnake/selfplay"
)

const defaultTUILog = "autosnake.log"

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publish := func(*game.Frame) {}
	if cfg.FeedAddr != "" {
		hub := feed.NewHub(logger)
		shutdown := serveFeed(cfg.FeedAddr, hub, logger)
		defer shutdown()
		publish = func(f *game.Frame) {
			if err := hub.Publish(f); err != nil {
				logger.Warn("publish failed", "error", err)
			}
		}
	}

	seed := cfg.ResolveSeed()
	logger.Info("starting",
		"board", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"length", cfg.InitialLength,
		"strategy", cfg.Strategy,
		"seed", seed,
		"headless", cfg.Headless,
	)

	if cfg.Headless {
		runHeadless(ctx, cfg, seed, logger, publish)
		return
	}

	p := tea.NewProgram(initialModel(cfg, seed, logger, publish), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Fatalf("terminal view: %v", err)
	}
}

// openLogger writes to LogPath when set. The terminal view owns stdout, so
// without a path it logs to a default file; headless runs log to stderr.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogPath
	if path == "" && !cfg.Headless {
		path = defaultTUILog
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	return logging.New(w, cfg.LogFormat, level), closeFn, nil
}

func serveFeed(addr string, hub *feed.Hub, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/feed", hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		logger.Info("feed listening", "addr", addr, "path", "/feed")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("feed server stopped", "error", err)
		}
	}()

	return func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("feed shutdown", "error", err)
		}
	}
}

// runHeadless plays cfg.Episodes episodes back to back, seeds counting up
// from seed. Steps are only paced when a feed is watching.
func runHeadless(ctx context.Context, cfg config.Config, seed int64, logger *slog.Logger, publish func(*game.Frame)) {
	paced := cfg.FeedAddr != ""
	var ticker *time.Ticker
	if paced {
		ticker = time.NewTicker(cfg.TickInterval())
		defer ticker.Stop()
	}

	onFrame := func(f *game.Frame) {
		publish(f)
		if !paced {
			return
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
		}
	}

	best, total := 0, 0
	for i := 0; i < cfg.Episodes; i++ {
		s := seed + int64(i)
		eng, rng, err := selfplay.NewEpisode(cfg, s, logger)
		if err != nil {
			log.Fatalf("episode %d: %v", i, err)
		}
		publish(eng.Frame())

		res, err := selfplay.PlayEpisode(ctx, eng, rng, selfplay.Config{MaxTurns: cfg.MaxTurns}, onFrame)
		if err != nil {
			logger.Info("shutdown requested", "episode", i, "turns", res.Turns, "score", res.Score)
			return
		}

		logger.Info("episode finished",
			"episode", i,
			"seed", s,
			"status", res.Status.String(),
			"score", res.Score,
			"turns", res.Turns,
			"cause", string(res.Cause),
			"truncated", res.Truncated,
			"duration", res.Duration,
		)
		fmt.Printf("episode %d seed %d: %s\n", i, s, res)
		total += res.Score
		if res.Score > best {
			best = res.Score
		}
	}
	fmt.Printf("%d episodes, best score %d, mean score %.2f\n", cfg.Episodes, best, float64(total)/float64(cfg.Episodes))
}
