package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"yeast-sim/audio"
	"yeast-sim/game"
	"yeast-sim/game/manager"
	"yeast-sim/ui"
)

// frontend is a game.Frontend that owns a display resource.
type frontend interface {
	game.Frontend
	Close() error
}

func main() {
	start := time.Now()

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	} else if cfg.Renderer == RendererTerminal {
		// Keep stderr quiet while tcell owns the terminal.
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	code := run(cfg, log)
	fmt.Printf("lifespan: %v\n", time.Since(start))
	os.Exit(code)
}

func run(cfg Config, log *slog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(cfg.Yeast, cfg.Glucose, cfg.Other, game.Options{
		Seed:   cfg.Seed,
		Logger: log,
	})
	if err != nil {
		log.Error("build arena", "err", err)
		return 1
	}

	if cfg.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the run continues silently.
			log.Warn("audio unavailable", "err", err)
		} else {
			defer player.Close()
			g.Reactions.OnReaction(func(manager.Reaction) { player.Play() })
		}
	}

	f, err := newFrontend(cfg.Renderer, g.Logger())
	if err != nil {
		log.Error("open frontend", "renderer", cfg.Renderer, "err", err)
		return 1
	}
	defer f.Close()

	g.Run(ctx, f)
	return 0
}

func newFrontend(name string, log *slog.Logger) (frontend, error) {
	switch name {
	case RendererTerminal:
		return ui.NewTerminal()
	case RendererHeadless:
		return ui.NewHeadless(true, log), nil
	default:
		return ui.NewRenderer(), nil
	}
}
