package ui

import (
	"log/slog"
	"yeast-sim/game"
	"yeast-sim/game/types"
)

// headlessReportEvery is the number of frames between census log lines.
const headlessReportEvery = types.TargetFPS * 5

// Headless runs a game without drawing. It never asks to quit; stop it
// by cancelling the run context.
type Headless struct {
	clock  *FrameClock
	log    *slog.Logger
	frames int
}

// NewHeadless returns a headless frontend. With realtime set it paces
// frames like the interactive frontends; otherwise it runs flat out.
func NewHeadless(realtime bool, log *slog.Logger) *Headless {
	h := &Headless{log: log}
	if realtime {
		h.clock = NewFrameClock(types.TargetFPS)
	}
	return h
}

func (h *Headless) Quit() bool { return false }

func (h *Headless) BeginFrame(*game.Game) {}

func (h *Headless) EndFrame(g *game.Game) {
	h.frames++
	if h.log != nil && h.frames%headlessReportEvery == 0 {
		c := g.Census()
		h.log.Info("census",
			"step", g.Steps,
			"yeast", c.Yeast,
			"glucose", c.Glucose,
			"other", c.Other)
	}
	if h.clock != nil {
		h.clock.Wait()
	}
}

func (h *Headless) Frames() int {
	return h.frames
}

func (h *Headless) Close() error {
	if h.clock != nil {
		h.clock.Stop()
	}
	return nil
}
